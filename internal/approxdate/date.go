// Package approxdate models partial and approximate calendar dates as they
// appear in clinical records: a year, month and day that may each be unknown,
// with flags recording which known parts are estimates and whether the date
// was derived from a reported age.
//
// A Date is a mutable value and is not safe for concurrent use.
package approxdate

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/benbjohnson/clock"
)

// daysPerYear converts fractional ages into day offsets.
const daysPerYear = 365.25

// Date is a calendar date whose components may be unknown or approximated.
// The zero value is an empty date with no metadata.
type Date struct {
	year  Component
	month Component
	day   Component

	meta    metadata
	metaSet bool

	checks   UnknownChecks
	ordering OrderingKey
}

// New returns an empty date.
func New(opts ...Option) *Date {
	d := &Date{}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// FromTime returns an exact date holding the calendar fields of t.
func FromTime(t time.Time, opts ...Option) *Date {
	d := New(opts...)
	d.SetTime(&t)
	return d
}

// FromTimeWithMetadata returns the date of t with m imposed on it. Components
// that m marks unknown are cleared.
func FromTimeWithMetadata(t time.Time, m Flags, opts ...Option) *Date {
	d := FromTime(t, opts...)
	d.SetMetadata(m)
	return d
}

// Year returns the year component.
func (d *Date) Year() Component { return d.year }

// Month returns the 1-based month component.
func (d *Date) Month() Component { return d.month }

// Day returns the day-of-month component.
func (d *Date) Day() Component { return d.day }

// Metadata returns the encoded flags and whether any metadata was recorded.
func (d *Date) Metadata() (Flags, bool) {
	if !d.metaSet {
		return NotApproximated, false
	}
	return d.meta.encode(), true
}

// Approximation returns the decoded approximation flags.
func (d *Date) Approximation() Approximation { return d.meta.approx }

// Unknowns returns the decoded unknown flags as stored.
func (d *Date) Unknowns() Unknowns { return d.meta.unknown }

// UnknownChecks returns the unknown-query variant in use.
func (d *Date) UnknownChecks() UnknownChecks { return d.checks }

// OrderingKey returns the comparison key variant in use.
func (d *Date) OrderingKey() OrderingKey { return d.ordering }

// IsFlag reports whether every bit of f is set. It is false when no metadata
// has been recorded.
func (d *Date) IsFlag(f Flags) bool {
	if !d.metaSet {
		return false
	}
	return d.meta.encode()&f == f
}

// SetFlag sets or clears exactly the bits of f.
func (d *Date) SetFlag(f Flags, value bool) {
	enc := NotApproximated
	if d.metaSet {
		enc = d.meta.encode()
	}
	if value {
		enc |= f
	} else {
		enc &^= f
	}
	d.meta = decodeFlags(enc)
	d.metaSet = true
}

// SetMetadata replaces the metadata and clears every component it marks
// unknown.
func (d *Date) SetMetadata(m Flags) {
	d.meta = decodeFlags(m)
	d.metaSet = true
	if d.dayUnknown() {
		d.SetDay(Absent)
	}
	if d.monthUnknown() {
		d.SetMonth(Absent)
	}
	if d.yearUnknown() {
		d.SetYear(Absent)
	}
}

// ResetMetadata forgets all recorded metadata. Components are untouched.
func (d *Date) ResetMetadata() {
	d.meta = metadata{}
	d.metaSet = false
}

// SetApproximated overwrites the metadata with exactly f. Unlike SetMetadata
// it leaves the components alone.
func (d *Date) SetApproximated(f Flags) {
	d.meta = decodeFlags(f)
	d.metaSet = true
}

// IsApproximated reports whether any flag is set.
func (d *Date) IsApproximated() bool {
	m, ok := d.Metadata()
	return ok && m > NotApproximated
}

// IsApproximatedTo reports whether every bit of f is set.
func (d *Date) IsApproximatedTo(f Flags) bool { return d.IsFlag(f) }

func (d *Date) IsYearApproximated() bool  { return d.IsFlag(ApproximateYear) }
func (d *Date) IsMonthApproximated() bool { return d.IsFlag(ApproximateMonth) }
func (d *Date) IsDayApproximated() bool   { return d.IsFlag(ApproximateDay) }
func (d *Date) IsWeekApproximated() bool  { return d.IsFlag(ApproximateWeek) }

// IsAgeApproximated reports whether the date was derived from an age.
func (d *Date) IsAgeApproximated() bool { return d.IsFlag(ApproximateAge) }

func (d *Date) yearUnknown() bool {
	if d.checks == LegacyUnknownChecks {
		return d.IsFlag(UnknownMonth)
	}
	return d.IsFlag(UnknownYear)
}

func (d *Date) monthUnknown() bool {
	return d.IsFlag(UnknownMonth)
}

func (d *Date) dayUnknown() bool {
	if d.checks == LegacyUnknownChecks {
		return d.IsFlag(UnknownMonth)
	}
	return d.IsFlag(UnknownDay)
}

// SetYear stores the year and marks it unknown when absent.
func (d *Date) SetYear(c Component) {
	d.year = c
	d.SetFlag(UnknownYear, !c.Valid())
}

// SetMonth stores the month and marks it unknown when absent.
func (d *Date) SetMonth(c Component) {
	d.month = c
	d.SetFlag(UnknownMonth, !c.Valid())
}

// SetDay stores the day and marks it unknown when absent.
func (d *Date) SetDay(c Component) {
	d.day = c
	d.SetFlag(UnknownDay, !c.Valid())
}

func (d *Date) SetYearApprox(c Component, approximate bool) {
	d.SetYear(c)
	d.SetFlag(ApproximateYear, approximate)
}

func (d *Date) SetMonthApprox(c Component, approximate bool) {
	d.SetMonth(c)
	d.SetFlag(ApproximateMonth, approximate)
}

func (d *Date) SetDayApprox(c Component, approximate bool) {
	d.SetDay(c)
	d.SetFlag(ApproximateDay, approximate)
}

// SetDate sets all three components and their approximation flags.
func (d *Date) SetDate(year, month, day int, yearApprox, monthApprox, dayApprox bool) {
	d.SetYearApprox(Known(year), yearApprox)
	d.SetMonthApprox(Known(month), monthApprox)
	d.SetDayApprox(Known(day), dayApprox)
}

// SetCalendarDate sets the components from the calendar fields of t with no
// approximation.
func (d *Date) SetCalendarDate(t time.Time) {
	y, m, day := t.Date()
	d.SetDate(y, int(m), day, false, false, false)
}

// SetTime assigns the calendar fields of t. A nil t clears all three
// components. Components the existing metadata marks unknown stay unknown.
func (d *Date) SetTime(t *time.Time) {
	if t == nil {
		d.SetYear(Absent)
		d.SetMonth(Absent)
		d.SetDay(Absent)
		return
	}
	had := d.metaSet
	yearUnknown, monthUnknown, dayUnknown := d.yearUnknown(), d.monthUnknown(), d.dayUnknown()

	y, m, day := t.Date()
	d.SetYear(Known(y))
	d.SetMonth(Known(int(m)))
	d.SetDay(Known(day))
	if !had {
		return
	}
	if yearUnknown {
		d.SetYear(Absent)
	}
	if monthUnknown {
		d.SetMonth(Absent)
	}
	if dayUnknown {
		d.SetDay(Absent)
	}
}

// SetExactTime assigns t and clears every flag, so the date is fully known and
// exact. A nil t leaves all components absent with no flags.
func (d *Date) SetExactTime(t *time.Time) {
	if t != nil {
		d.ResetMetadata()
	}
	d.SetTime(t)
	d.SetMetadata(NotApproximated)
}

// SetDateFromAge sets the date to age years before the clock's current time.
func (d *Date) SetDateFromAge(age float64, clk clock.Clock) {
	d.SetDateFromAgeAt(age, now(clk))
}

// SetDateFromAgeAt sets the date to age years before ref and flags it as
// derived from an age. Years are 365.25 days long and the day count is rounded
// half up.
func (d *Date) SetDateFromAgeAt(age float64, ref time.Time) {
	days := int(math.Floor(age*daysPerYear + 0.5))
	d.SetCalendarDate(ref.AddDate(0, 0, -days))
	d.SetFlag(ApproximateAge, true)
}

// String renders the date as YYYY-MM-DD with question marks for absent
// components and a leading ~ when any component is approximated.
func (d *Date) String() string {
	var b strings.Builder
	if d.meta.approx != (Approximation{}) {
		b.WriteByte('~')
	}
	part := func(c Component, width int) string {
		if v, ok := c.Get(); ok {
			return fmt.Sprintf("%0*d", width, v)
		}
		return strings.Repeat("?", width)
	}
	b.WriteString(part(d.year, 4))
	b.WriteByte('-')
	b.WriteString(part(d.month, 2))
	b.WriteByte('-')
	b.WriteString(part(d.day, 2))
	return b.String()
}

func now(clk clock.Clock) time.Time {
	if clk == nil {
		clk = clock.New()
	}
	return clk.Now()
}
