package help

// HelpText contains information about a field
type HelpText struct {
	Title       string
	Description string
	Details     string
}

// Texts contains help information for all wizard fields
var Texts = map[string]HelpText{
	"mode": {
		Title:       "ENTRY MODE",
		Description: "Enter a calendar date, or an age the date is derived from.",
		Details:     "Age mode computes a birth date from today's date and flags it as age derived.",
	},
	"year": {
		Title:       "YEAR",
		Description: "Four digit year.",
		Details:     "Leave empty when the year is unknown.",
	},
	"month": {
		Title:       "MONTH",
		Description: "Month number, 1-12.",
		Details:     "Leave empty when the month is unknown. An unknown month materializes as July.",
	},
	"day": {
		Title:       "DAY",
		Description: "Day of the month.",
		Details:     "Leave empty when the day is unknown. An unknown day materializes as the 15th, or July 1st when the month is unknown too.",
	},
	"approx": {
		Title:       "APPROXIMATION",
		Description: "Components that are estimates rather than exact values.",
		Details:     "Approximation is kept as metadata and does not change comparisons.",
	},
	"age": {
		Title:       "AGE",
		Description: "Age in years, fractions allowed (e.g. 0.5).",
		Details:     "A year counts 365.25 days.",
	},
}
