package approxdate

import "strconv"

// Component is an optional year, month or day value. The zero value is absent.
type Component struct {
	value int
	valid bool
}

// Known returns a present component holding v.
func Known(v int) Component {
	return Component{value: v, valid: true}
}

// Absent is the component with no value.
var Absent = Component{}

// FromPtr converts a nullable integer, as stored by persistence layers.
func FromPtr(v *int) Component {
	if v == nil {
		return Absent
	}
	return Known(*v)
}

// Get returns the value and whether it is present.
func (c Component) Get() (int, bool) {
	return c.value, c.valid
}

// Valid reports whether the component has a value.
func (c Component) Valid() bool {
	return c.valid
}

// Ptr returns a pointer to the value or nil when absent.
func (c Component) Ptr() *int {
	if !c.valid {
		return nil
	}
	v := c.value
	return &v
}

func (c Component) String() string {
	if !c.valid {
		return "absent"
	}
	return strconv.Itoa(c.value)
}
