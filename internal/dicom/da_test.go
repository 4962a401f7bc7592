package dicom

import (
	"errors"
	"testing"

	"github.com/mrsinham/approxdate/internal/approxdate"
)

func TestParseDA(t *testing.T) {
	tests := []struct {
		input  string
		want   string // approxdate.Date String()
		format string // FormatDA of the parsed value
	}{
		{input: "19800115", want: "1980-01-15", format: "19800115"},
		{input: "1980.01.15", want: "1980-01-15", format: "19800115"},
		{input: "198001", want: "1980-01-??", format: "198001"},
		{input: "1980", want: "1980-??-??", format: "1980"},
		{input: "1980 ", want: "1980-??-??", format: "1980"},
		{input: "", want: "????-??-??", format: ""},
		{input: "20000229", want: "2000-02-29", format: "20000229"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			d, err := ParseDA(tt.input)
			if err != nil {
				t.Fatalf("ParseDA(%q) failed: %v", tt.input, err)
			}
			if got := d.String(); got != tt.want {
				t.Errorf("ParseDA(%q) = %s, want %s", tt.input, got, tt.want)
			}
			if got := FormatDA(d); got != tt.format {
				t.Errorf("FormatDA = %q, want %q", got, tt.format)
			}
		})
	}
}

func TestParseDA_MarksMissingComponentsUnknown(t *testing.T) {
	d, err := ParseDA("1975")
	if err != nil {
		t.Fatal(err)
	}
	u := d.Unknowns()
	if u.Year || !u.Month || !u.Day {
		t.Errorf("unknowns = %+v, want month and day unknown", u)
	}
	if d.IsApproximatedTo(approxdate.ApproximateYear) {
		t.Errorf("a partial DA is not an approximation")
	}
}

func TestParseDA_Invalid(t *testing.T) {
	for _, input := range []string{"19801", "1980-01-15", "abcd", "19801301", "19800230", "198013"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseDA(input)
			if !errors.Is(err, ErrInvalidDA) {
				t.Errorf("ParseDA(%q) error = %v, want ErrInvalidDA", input, err)
			}
		})
	}
}

func TestFormatDA_SkipsDayWithoutMonth(t *testing.T) {
	d := approxdate.New()
	d.SetYear(approxdate.Known(1990))
	d.SetMonth(approxdate.Absent)
	d.SetDay(approxdate.Known(12))
	if got := FormatDA(d); got != "1990" {
		t.Errorf("FormatDA = %q, want 1990", got)
	}
}
