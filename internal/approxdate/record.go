package approxdate

import "gopkg.in/yaml.v3"

// Record is the storage form of a Date: the three nullable components and the
// legacy integer metadata.
type Record struct {
	Year     *int `yaml:"year,omitempty"`
	Month    *int `yaml:"month,omitempty"`
	Day      *int `yaml:"day,omitempty"`
	Metadata *int `yaml:"metadata,omitempty"`
}

// Record returns the storage form of d.
func (d *Date) Record() Record {
	r := Record{
		Year:  d.year.Ptr(),
		Month: d.month.Ptr(),
		Day:   d.day.Ptr(),
	}
	if m, ok := d.Metadata(); ok {
		v := int(m)
		r.Metadata = &v
	}
	return r
}

// FromRecord restores a date exactly as stored, without re-applying the
// unknown-implies-absent rule.
func FromRecord(r Record, opts ...Option) *Date {
	d := New(opts...)
	d.load(r)
	return d
}

func (d *Date) load(r Record) {
	d.year = FromPtr(r.Year)
	d.month = FromPtr(r.Month)
	d.day = FromPtr(r.Day)
	if r.Metadata == nil {
		d.ResetMetadata()
		return
	}
	d.meta = decodeFlags(Flags(*r.Metadata))
	d.metaSet = true
}

// MarshalYAML implements yaml.Marshaler.
func (d *Date) MarshalYAML() (interface{}, error) {
	return d.Record(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler. Variant options already set on
// d are kept.
func (d *Date) UnmarshalYAML(value *yaml.Node) error {
	var r Record
	if err := value.Decode(&r); err != nil {
		return err
	}
	d.load(r)
	return nil
}
