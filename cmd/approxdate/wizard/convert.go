package wizard

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/benbjohnson/clock"
	"github.com/mrsinham/approxdate/internal/approxdate"
)

// ToDate builds the date described by s. In age mode the birth date is
// computed from the age at the clock's current date.
func ToDate(s *DateState, clk clock.Clock, opts ...approxdate.Option) (*approxdate.Date, error) {
	d := approxdate.New(opts...)
	if s.Mode == ModeAge {
		age, err := parseAge(s.Age)
		if err != nil {
			return nil, err
		}
		d.SetDateFromAge(age, clk)
		return d, nil
	}

	year, err := parseComponent(s.Year, validateYear)
	if err != nil {
		return nil, fmt.Errorf("year: %w", err)
	}
	month, err := parseComponent(s.Month, validateMonth)
	if err != nil {
		return nil, fmt.Errorf("month: %w", err)
	}
	day, err := parseComponent(s.Day, validateDay)
	if err != nil {
		return nil, fmt.Errorf("day: %w", err)
	}

	var flags approxdate.Flags
	for _, f := range s.Approx {
		flags |= f
	}
	d.SetYearApprox(year, flags&approxdate.ApproximateYear != 0)
	d.SetMonthApprox(month, flags&approxdate.ApproximateMonth != 0)
	d.SetDayApprox(day, flags&approxdate.ApproximateDay != 0)
	if extra := flags & (approxdate.ApproximateWeek | approxdate.ApproximateAge); extra != 0 {
		d.SetFlag(extra, true)
	}
	return d, nil
}

// FromDate returns form values pre-filled from d.
func FromDate(d *approxdate.Date) *DateState {
	s := &DateState{Mode: ModeCalendar}
	if d == nil {
		return s
	}
	s.Year = componentString(d.Year())
	s.Month = componentString(d.Month())
	s.Day = componentString(d.Day())
	for _, f := range []approxdate.Flags{
		approxdate.ApproximateYear,
		approxdate.ApproximateMonth,
		approxdate.ApproximateDay,
		approxdate.ApproximateWeek,
		approxdate.ApproximateAge,
	} {
		if d.IsFlag(f) {
			s.Approx = append(s.Approx, f)
		}
	}
	return s
}

func componentString(c approxdate.Component) string {
	if v, ok := c.Get(); ok {
		return strconv.Itoa(v)
	}
	return ""
}

func parseComponent(s string, validate func(string) error) (approxdate.Component, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return approxdate.Absent, nil
	}
	if err := validate(s); err != nil {
		return approxdate.Absent, err
	}
	v, _ := strconv.Atoi(s)
	return approxdate.Known(v), nil
}

func parseAge(s string) (float64, error) {
	if err := validateAge(s); err != nil {
		return 0, err
	}
	age, _ := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return age, nil
}

func validateYear(s string) error  { return validateRange(s, 1, 9999) }
func validateMonth(s string) error { return validateRange(s, 1, 12) }
func validateDay(s string) error   { return validateRange(s, 1, 31) }

// validateRange accepts an empty value (unknown) or an integer in [lo, hi].
func validateRange(s string, lo, hi int) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("%q is not a number", s)
	}
	if v < lo || v > hi {
		return fmt.Errorf("must be between %d and %d", lo, hi)
	}
	return nil
}

func validateAge(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return fmt.Errorf("age is required")
	}
	age, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("%q is not a number", s)
	}
	if age < 0 || age > 150 {
		return fmt.Errorf("age must be between 0 and 150")
	}
	return nil
}
