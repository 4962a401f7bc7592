package approxdate

import (
	"cmp"
	"errors"
	"fmt"
	"strings"
)

// ErrIncomparableFields is returned by Compare when the two dates do not know
// the same set of components.
var ErrIncomparableFields = errors.New("approxdate: incomparable fields")

type field int

const (
	fieldYear field = iota
	fieldMonth
	fieldDay
	numFields
)

var fieldNames = [numFields]string{"year", "month", "day"}

// orderingKey holds the known components of a date.
type orderingKey struct {
	values  [numFields]int
	present [numFields]bool
}

func (k *orderingKey) with(f field, c Component) {
	if v, ok := c.Get(); ok {
		k.values[f] = v
		k.present[f] = true
	}
}

func (k orderingKey) fields() string {
	var names []string
	for f := range numFields {
		if k.present[f] {
			names = append(names, fieldNames[f])
		}
	}
	return "[" + strings.Join(names, ",") + "]"
}

// keyFor builds the comparison key of d. The component values are d's own;
// which components count as known follows d's unknown queries.
func keyFor(d *Date, mode OrderingKey) orderingKey {
	var k orderingKey
	if !d.yearUnknown() {
		k.with(fieldYear, d.year)
	}
	if !d.monthUnknown() {
		k.with(fieldMonth, d.month)
	}
	if !d.dayUnknown() {
		if mode == LegacyOrderingKey {
			k.with(fieldMonth, d.day)
		} else {
			k.with(fieldDay, d.day)
		}
	}
	return k
}

// Compare orders d against other using only their known components. It
// returns -1, 0 or 1, or ErrIncomparableFields when the two dates know
// different components. Approximation flags are ignored. The receiver's
// ordering key variant applies to both sides. A nil other cannot be compared.
func (d *Date) Compare(other *Date) (int, error) {
	if other == nil {
		return 0, fmt.Errorf("%w: nil date", ErrIncomparableFields)
	}
	a := keyFor(d, d.ordering)
	b := keyFor(other, d.ordering)
	if a.present != b.present {
		return 0, fmt.Errorf("%w: %s vs %s", ErrIncomparableFields, a.fields(), b.fields())
	}
	for f := range numFields {
		if !a.present[f] {
			continue
		}
		if c := cmp.Compare(a.values[f], b.values[f]); c != 0 {
			return c, nil
		}
	}
	return 0, nil
}
