package dicom

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/mrsinham/approxdate/internal/approxdate"
)

// ErrInvalidAS is returned for values that are not DICOM age strings.
var ErrInvalidAS = errors.New("invalid AS value")

// AgeUnit is the unit letter of a DICOM age string.
type AgeUnit byte

const (
	Days   AgeUnit = 'D'
	Weeks  AgeUnit = 'W'
	Months AgeUnit = 'M'
	Years  AgeUnit = 'Y'
)

const daysPerYear = 365.25

// Age is a DICOM age string such as 030Y.
type Age struct {
	Value int
	Unit  AgeUnit
}

// ParseAS parses an age string of three digits and a unit letter.
func ParseAS(s string) (Age, error) {
	v := strings.TrimSpace(strings.TrimRight(s, "\x00"))
	if len(v) != 4 || !isDigits(v[:3]) {
		return Age{}, fmt.Errorf("%w: %q", ErrInvalidAS, s)
	}
	n, _ := strconv.Atoi(v[:3])
	unit := AgeUnit(v[3])
	switch unit {
	case Days, Weeks, Months, Years:
	default:
		return Age{}, fmt.Errorf("%w: unknown unit %q in %q", ErrInvalidAS, v[3], s)
	}
	return Age{Value: n, Unit: unit}, nil
}

// String renders the age as a DICOM AS value.
func (a Age) String() string {
	return fmt.Sprintf("%03d%c", a.Value, a.Unit)
}

// Years converts the age to fractional years.
func (a Age) Years() float64 {
	switch a.Unit {
	case Days:
		return float64(a.Value) / daysPerYear
	case Weeks:
		return float64(a.Value*7) / daysPerYear
	case Months:
		return float64(a.Value) / 12
	default:
		return float64(a.Value)
	}
}

// approximation is the flag matching the age's granularity.
func (a Age) approximation() approxdate.Flags {
	switch a.Unit {
	case Days:
		return approxdate.ApproximateDay
	case Weeks:
		return approxdate.ApproximateWeek
	case Months:
		return approxdate.ApproximateMonth
	default:
		return approxdate.ApproximateYear
	}
}

// ApplyAge sets d to the birth date implied by age at ref. Besides the age
// flag, the approximation flag of the age's unit is set.
func ApplyAge(d *approxdate.Date, age Age, ref time.Time) {
	d.SetDateFromAgeAt(age.Years(), ref)
	d.SetFlag(age.approximation(), true)
}

// AgeAt returns the DICOM age of someone born on d at ref: days under a
// month, months under two years, years otherwise. Unknown components of d are
// materialized with clk.
func AgeAt(d *approxdate.Date, ref time.Time, clk clock.Clock) (Age, error) {
	birth := d.Time(clk)
	ref = time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, time.UTC)
	if ref.Before(birth) {
		return Age{}, fmt.Errorf("reference date %s is before birth date %s",
			ref.Format(time.DateOnly), birth.Format(time.DateOnly))
	}

	months := (ref.Year()-birth.Year())*12 + int(ref.Month()) - int(birth.Month())
	if ref.Day() < birth.Day() {
		months--
	}
	switch {
	case months < 1:
		return Age{Value: int(ref.Sub(birth).Hours() / 24), Unit: Days}, nil
	case months < 24:
		return Age{Value: months, Unit: Months}, nil
	default:
		return Age{Value: min(months/12, 999), Unit: Years}, nil
	}
}
