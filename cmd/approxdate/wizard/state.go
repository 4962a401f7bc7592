package wizard

import "github.com/mrsinham/approxdate/internal/approxdate"

// Mode selects how the date is entered.
type Mode string

const (
	ModeCalendar Mode = "calendar"
	ModeAge      Mode = "age"
)

// DateState holds the raw form values. Empty component strings mean the
// component is unknown.
type DateState struct {
	Mode   Mode
	Year   string
	Month  string
	Day    string
	Approx []approxdate.Flags
	Age    string // years, fractional allowed
}
