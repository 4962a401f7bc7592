package approxdate

import "fmt"

// Flags is the legacy integer encoding of a date's metadata. The low bits
// record which components were approximated, the high bits record which
// components are unknown.
type Flags int

const (
	NotApproximated Flags = 0

	ApproximateYear  Flags = 1
	ApproximateMonth Flags = 2
	ApproximateDay   Flags = 4
	ApproximateWeek  Flags = 8
	ApproximateAge   Flags = 16

	UnknownYear  Flags = 256
	UnknownMonth Flags = 512
	UnknownDay   Flags = 1024
)

// Approximation records which parts of a date are estimates.
type Approximation struct {
	Year  bool
	Month bool
	Day   bool
	Week  bool
	Age   bool
}

// Unknowns records which components have no value at all.
type Unknowns struct {
	Year  bool
	Month bool
	Day   bool
}

// namedFlags covers every bit with a meaning.
const namedFlags = ApproximateYear | ApproximateMonth | ApproximateDay | ApproximateWeek |
	ApproximateAge | UnknownYear | UnknownMonth | UnknownDay

// metadata is the decoded form of Flags. Bits without a name are carried in
// extra so stored values survive a round trip.
type metadata struct {
	approx  Approximation
	unknown Unknowns
	extra   Flags
}

func decodeFlags(f Flags) metadata {
	return metadata{
		approx: Approximation{
			Year:  f&ApproximateYear != 0,
			Month: f&ApproximateMonth != 0,
			Day:   f&ApproximateDay != 0,
			Week:  f&ApproximateWeek != 0,
			Age:   f&ApproximateAge != 0,
		},
		unknown: Unknowns{
			Year:  f&UnknownYear != 0,
			Month: f&UnknownMonth != 0,
			Day:   f&UnknownDay != 0,
		},
		extra: f &^ namedFlags,
	}
}

func (m metadata) encode() Flags {
	f := m.extra
	set := func(on bool, bit Flags) {
		if on {
			f |= bit
		}
	}
	set(m.approx.Year, ApproximateYear)
	set(m.approx.Month, ApproximateMonth)
	set(m.approx.Day, ApproximateDay)
	set(m.approx.Week, ApproximateWeek)
	set(m.approx.Age, ApproximateAge)
	set(m.unknown.Year, UnknownYear)
	set(m.unknown.Month, UnknownMonth)
	set(m.unknown.Day, UnknownDay)
	return f
}

// String lists the names of the set flags, e.g. "year|age|unknown-day".
func (f Flags) String() string {
	if f == NotApproximated {
		return "none"
	}
	names := []struct {
		bit  Flags
		name string
	}{
		{ApproximateYear, "year"},
		{ApproximateMonth, "month"},
		{ApproximateDay, "day"},
		{ApproximateWeek, "week"},
		{ApproximateAge, "age"},
		{UnknownYear, "unknown-year"},
		{UnknownMonth, "unknown-month"},
		{UnknownDay, "unknown-day"},
	}
	out := ""
	for _, n := range names {
		if f&n.bit == 0 {
			continue
		}
		if out != "" {
			out += "|"
		}
		out += n.name
	}
	if extra := f &^ namedFlags; extra != 0 {
		if out != "" {
			out += "|"
		}
		out += fmt.Sprintf("0x%x", int(extra))
	}
	return out
}
