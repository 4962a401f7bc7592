package approxdate

// UnknownChecks selects how the unknown-component queries read the metadata.
type UnknownChecks int

const (
	// OwnBitChecks tests each component against its own unknown bit.
	OwnBitChecks UnknownChecks = iota
	// LegacyUnknownChecks reproduces records written by the older
	// implementation, where the year and day queries test the month bit.
	LegacyUnknownChecks
)

func (u UnknownChecks) String() string {
	switch u {
	case LegacyUnknownChecks:
		return "legacy"
	default:
		return "own-bit"
	}
}

// OrderingKey selects how Compare builds its comparison key.
type OrderingKey int

const (
	// FieldOrderingKey keys year, month and day under their own fields.
	FieldOrderingKey OrderingKey = iota
	// LegacyOrderingKey stores the day value in the month slot, matching the
	// ordering of the older implementation.
	LegacyOrderingKey
)

func (o OrderingKey) String() string {
	switch o {
	case LegacyOrderingKey:
		return "legacy"
	default:
		return "field"
	}
}

// Option configures a Date.
type Option func(*Date)

// WithUnknownChecks sets the unknown-query variant.
func WithUnknownChecks(u UnknownChecks) Option {
	return func(d *Date) { d.checks = u }
}

// WithLegacyUnknownChecks is shorthand for WithUnknownChecks(LegacyUnknownChecks).
func WithLegacyUnknownChecks() Option {
	return WithUnknownChecks(LegacyUnknownChecks)
}

// WithOrderingKey sets the comparison key variant.
func WithOrderingKey(o OrderingKey) Option {
	return func(d *Date) { d.ordering = o }
}

// WithLegacyOrderingKey is shorthand for WithOrderingKey(LegacyOrderingKey).
func WithLegacyOrderingKey() Option {
	return WithOrderingKey(LegacyOrderingKey)
}
