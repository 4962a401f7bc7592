package wizard

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mrsinham/approxdate/internal/approxdate"
)

func TestNewDateScreen_DefaultsMode(t *testing.T) {
	s := NewDateScreen(&DateState{})
	if s.State().Mode != ModeCalendar {
		t.Errorf("Mode = %q, want calendar", s.State().Mode)
	}
	if s.Done() || s.Cancelled() {
		t.Error("a new screen should be neither done nor cancelled")
	}
}

func TestDateScreen_Escape(t *testing.T) {
	s := NewDateScreen(&DateState{})
	s.Init()
	model, cmd := s.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Error("escape should quit")
	}
	if !model.(*DateScreen).Cancelled() {
		t.Error("escape should cancel the screen")
	}
	if model.View() != "Cancelled.\n" {
		t.Errorf("View() = %q", model.View())
	}
}

func TestSummary(t *testing.T) {
	d := approxdate.New()
	d.SetYearApprox(approxdate.Known(1950), true)
	out := Summary(d)
	if !strings.Contains(out, "~1950-??-??") {
		t.Errorf("Summary should show the date, got %q", out)
	}
	if !strings.Contains(out, "year") {
		t.Errorf("Summary should list the flags, got %q", out)
	}
}
