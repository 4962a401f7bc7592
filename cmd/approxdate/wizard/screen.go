package wizard

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/mrsinham/approxdate/cmd/approxdate/wizard/components"
	"github.com/mrsinham/approxdate/internal/approxdate"
)

// DateScreen is the form used to enter one approximate date
type DateScreen struct {
	form      *huh.Form
	helpPanel *components.HelpPanel
	state     *DateState
	done      bool
	cancelled bool
}

// NewDateScreen creates the form, pre-filled from state
func NewDateScreen(state *DateState) *DateScreen {
	if state.Mode == "" {
		state.Mode = ModeCalendar
	}
	s := &DateScreen{
		helpPanel: components.NewHelpPanel(),
		state:     state,
	}

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[Mode]().
				Key("mode").
				Title("Entry mode").
				Options(
					huh.NewOption("Calendar date", ModeCalendar),
					huh.NewOption("Age", ModeAge),
				).
				Value(&state.Mode),
		),
		huh.NewGroup(
			huh.NewInput().
				Key("year").
				Title("Year").
				Description("Empty if unknown").
				Value(&state.Year).
				Validate(validateYear),

			huh.NewInput().
				Key("month").
				Title("Month").
				Description("1-12, empty if unknown").
				Value(&state.Month).
				Validate(validateMonth),

			huh.NewInput().
				Key("day").
				Title("Day").
				Description("1-31, empty if unknown").
				Value(&state.Day).
				Validate(validateDay),

			huh.NewMultiSelect[approxdate.Flags]().
				Key("approx").
				Title("Approximated components").
				Options(
					huh.NewOption("Year", approxdate.ApproximateYear),
					huh.NewOption("Month", approxdate.ApproximateMonth),
					huh.NewOption("Day", approxdate.ApproximateDay),
					huh.NewOption("Week", approxdate.ApproximateWeek),
					huh.NewOption("Derived from age", approxdate.ApproximateAge),
				).
				Value(&state.Approx),
		).WithHideFunc(func() bool { return state.Mode != ModeCalendar }),
		huh.NewGroup(
			huh.NewInput().
				Key("age").
				Title("Age (years)").
				Value(&state.Age).
				Validate(validateAge),
		).WithHideFunc(func() bool { return state.Mode != ModeAge }),
	).WithShowHelp(false).WithShowErrors(true)

	return s
}

// Init implements tea.Model
func (s *DateScreen) Init() tea.Cmd {
	return s.form.Init()
}

// Update implements tea.Model
func (s *DateScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			s.cancelled = true
			return s, tea.Quit
		}
	case tea.WindowSizeMsg:
		s.helpPanel.SetWidth(msg.Width / 2)
	}

	form, cmd := s.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		s.form = f
	}

	if focused := s.form.GetFocusedField(); focused != nil {
		s.helpPanel.SetField(focused.GetKey())
	}

	if s.form.State == huh.StateCompleted {
		s.done = true
		return s, tea.Quit
	}
	return s, cmd
}

// View implements tea.Model
func (s *DateScreen) View() string {
	if s.cancelled {
		return "Cancelled.\n"
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		components.TitleStyle.Render("APPROXIMATE DATE"),
		components.SubtitleStyle.Render("Leave components empty when they are unknown"),
		s.form.View(),
		"",
		s.helpPanel.View(),
		"",
		"Tab: Next field | Enter: Submit | Esc: Cancel",
	)
}

// Done returns true if the form was completed
func (s *DateScreen) Done() bool { return s.done }

// Cancelled returns true if the user cancelled
func (s *DateScreen) Cancelled() bool { return s.cancelled }

// State returns the entered values
func (s *DateScreen) State() *DateState { return s.state }

// Summary renders the date built from the entered values.
func Summary(d *approxdate.Date) string {
	m, _ := d.Metadata()
	return fmt.Sprintf("%s\n%s", components.ResultStyle.Render(d.String()), components.SubtitleStyle.Render("flags: "+m.String()))
}
