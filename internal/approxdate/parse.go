package approxdate

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidFormat is returned by Parse for malformed input.
var ErrInvalidFormat = errors.New("approxdate: invalid date format")

// Parse reads a date written as YYYY, YYYY-MM or YYYY-MM-DD. Any component
// made only of question marks, and any omitted trailing component, is
// recorded as unknown. Parse never sets approximation flags; a leading ~ is
// rejected.
func Parse(s string, opts ...Option) (*Date, error) {
	s = strings.TrimSpace(s)
	parts := strings.Split(s, "-")
	if s == "" || len(parts) > 3 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
	widths := [3]int{4, 2, 2}
	var comps [3]Component
	for i := range comps {
		comps[i] = Absent
		if i >= len(parts) {
			continue
		}
		p := parts[i]
		if len(p) != widths[i] {
			return nil, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
		}
		if strings.Trim(p, "?") == "" {
			continue
		}
		v, err := strconv.Atoi(p)
		if err != nil || v < 0 {
			return nil, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
		}
		comps[i] = Known(v)
	}

	d := New(opts...)
	d.SetYear(comps[0])
	d.SetMonth(comps[1])
	d.SetDay(comps[2])
	return d, nil
}
