// Package dicom converts approximate dates to and from DICOM date (DA) and
// age string (AS) values, and reads and writes them in DICOM files.
package dicom

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/mrsinham/approxdate/internal/approxdate"
)

// ErrInvalidDA is returned for values that are not DICOM dates.
var ErrInvalidDA = errors.New("invalid DA value")

// ParseDA parses a DICOM date. Besides YYYYMMDD it accepts the ACR-NEMA form
// YYYY.MM.DD and the partial forms YYYYMM and YYYY, in which case the missing
// components are unknown. An empty value leaves every component unknown.
func ParseDA(s string, opts ...approxdate.Option) (*approxdate.Date, error) {
	v := strings.TrimSpace(strings.TrimRight(s, "\x00"))
	d := approxdate.New(opts...)
	if v == "" {
		d.SetTime(nil)
		return d, nil
	}

	// ACR-NEMA 2.0 dates use dots between the components
	if len(v) == 10 && v[4] == '.' && v[7] == '.' {
		v = v[:4] + v[5:7] + v[8:]
	}
	if !isDigits(v) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDA, s)
	}

	year, _ := strconv.Atoi(v[:4])
	switch len(v) {
	case 4:
		d.SetYear(approxdate.Known(year))
		d.SetMonth(approxdate.Absent)
		d.SetDay(approxdate.Absent)
	case 6:
		month, _ := strconv.Atoi(v[4:6])
		if month < 1 || month > 12 {
			return nil, fmt.Errorf("%w: month %d out of range in %q", ErrInvalidDA, month, s)
		}
		d.SetYear(approxdate.Known(year))
		d.SetMonth(approxdate.Known(month))
		d.SetDay(approxdate.Absent)
	case 8:
		month, _ := strconv.Atoi(v[4:6])
		day, _ := strconv.Atoi(v[6:8])
		t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
		if int(t.Month()) != month || t.Day() != day {
			return nil, fmt.Errorf("%w: no such date %q", ErrInvalidDA, s)
		}
		d.SetCalendarDate(t)
	default:
		return nil, fmt.Errorf("%w: %q has %d digits", ErrInvalidDA, s, len(v))
	}
	return d, nil
}

// FormatDA renders the known leading components of d: YYYYMMDD, YYYYMM or
// YYYY. It returns an empty string when the year is not known.
func FormatDA(d *approxdate.Date) string {
	year, ok := d.Year().Get()
	if !ok {
		return ""
	}
	out := fmt.Sprintf("%04d", year)
	month, ok := d.Month().Get()
	if !ok {
		return out
	}
	out += fmt.Sprintf("%02d", month)
	if day, ok := d.Day().Get(); ok {
		out += fmt.Sprintf("%02d", day)
	}
	return out
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
