// Package wizard is the interactive form used to enter an approximate date.
package wizard

import (
	"errors"
	"fmt"

	"github.com/benbjohnson/clock"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mrsinham/approxdate/internal/approxdate"
)

// ErrCancelled is returned when the user leaves the form.
var ErrCancelled = errors.New("wizard cancelled")

// Run shows the form, pre-filled from initial when non-nil, and returns the
// date entered.
func Run(initial *approxdate.Date, clk clock.Clock, opts ...approxdate.Option) (*approxdate.Date, error) {
	screen := NewDateScreen(FromDate(initial))
	p := tea.NewProgram(screen, tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("running wizard: %w", err)
	}
	s, ok := finalModel.(*DateScreen)
	if !ok || s.Cancelled() || !s.Done() {
		return nil, ErrCancelled
	}
	return ToDate(s.State(), clk, opts...)
}
