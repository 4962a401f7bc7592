package approxdate

import (
	"cmp"
	"slices"
	"time"

	"github.com/benbjohnson/clock"
)

const (
	defaultMonth = 7
	defaultDay   = 15
	// firstDay replaces defaultDay when neither month nor day is known.
	firstDay = 1
)

// Time materializes the date as UTC midnight. Unknown or absent components
// default to the clock's current year, July and the 15th; a date with neither
// month nor day known becomes July 1st. A nil clock reads the wall clock.
func (d *Date) Time(clk clock.Clock) time.Time {
	monthUnknown := d.IsFlag(UnknownMonth)
	dayUnknown := d.IsFlag(UnknownDay)

	year, ok := d.year.Get()
	if d.IsFlag(UnknownYear) || !ok {
		year = now(clk).UTC().Year()
	}
	month, ok := d.month.Get()
	if monthUnknown || !ok {
		month = defaultMonth
	}
	day, ok := d.day.Get()
	if dayUnknown || !ok {
		day = defaultDay
	}

	bothAbsent := !d.month.Valid() && !d.day.Valid()
	if (monthUnknown || bothAbsent) && (dayUnknown || bothAbsent) {
		month, day = defaultMonth, firstDay
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// SortByTime orders dates by their materialized time, oldest first. Dates
// that materialize to the same day keep their relative order.
func SortByTime(dates []*Date, clk clock.Clock) {
	if clk == nil {
		clk = clock.New()
	}
	slices.SortStableFunc(dates, func(a, b *Date) int {
		return cmp.Compare(a.Time(clk).Unix(), b.Time(clk).Unix())
	})
}
