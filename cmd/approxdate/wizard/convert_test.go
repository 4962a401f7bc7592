package wizard

import (
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/mrsinham/approxdate/internal/approxdate"
)

func TestToDate_Calendar(t *testing.T) {
	tests := []struct {
		name  string
		state DateState
		want  string
		flags approxdate.Flags
	}{
		{
			name:  "exact",
			state: DateState{Mode: ModeCalendar, Year: "1980", Month: "1", Day: "15"},
			want:  "1980-01-15",
			flags: approxdate.NotApproximated,
		},
		{
			name:  "year only",
			state: DateState{Mode: ModeCalendar, Year: "1975"},
			want:  "1975-??-??",
			flags: approxdate.UnknownMonth | approxdate.UnknownDay,
		},
		{
			name:  "approximate year",
			state: DateState{Mode: ModeCalendar, Year: " 1950 ", Month: "6", Day: "", Approx: []approxdate.Flags{approxdate.ApproximateYear}},
			want:  "~1950-06-??",
			flags: approxdate.ApproximateYear | approxdate.UnknownDay,
		},
		{
			name:  "week",
			state: DateState{Mode: ModeCalendar, Year: "2001", Month: "2", Day: "3", Approx: []approxdate.Flags{approxdate.ApproximateWeek}},
			want:  "2001-02-03",
			flags: approxdate.ApproximateWeek,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := ToDate(&tt.state, nil)
			if err != nil {
				t.Fatalf("ToDate failed: %v", err)
			}
			if d.String() != tt.want {
				t.Errorf("ToDate = %s, want %s", d, tt.want)
			}
			if m, _ := d.Metadata(); m != tt.flags {
				t.Errorf("flags = %s, want %s", m, tt.flags)
			}
		})
	}
}

func TestToDate_Age(t *testing.T) {
	clk := clock.NewMock()
	clk.Set(time.Date(2020, 1, 1, 12, 0, 0, 0, time.UTC))

	d, err := ToDate(&DateState{Mode: ModeAge, Age: "30"}, clk)
	if err != nil {
		t.Fatalf("ToDate failed: %v", err)
	}
	if d.String() != "1989-12-31" {
		t.Errorf("ToDate = %s, want 1989-12-31", d)
	}
	if !d.IsAgeApproximated() {
		t.Error("age mode should flag the date as age derived")
	}
}

func TestToDate_Invalid(t *testing.T) {
	for _, s := range []DateState{
		{Mode: ModeCalendar, Year: "19x0"},
		{Mode: ModeCalendar, Year: "1980", Month: "13"},
		{Mode: ModeCalendar, Year: "1980", Month: "1", Day: "0"},
		{Mode: ModeAge, Age: ""},
		{Mode: ModeAge, Age: "-1"},
	} {
		if _, err := ToDate(&s, nil); err == nil {
			t.Errorf("ToDate(%+v) should fail", s)
		}
	}
}

func TestFromDate(t *testing.T) {
	d := approxdate.New()
	d.SetDate(1950, 6, 1, true, false, false)
	d.SetDay(approxdate.Absent)

	s := FromDate(d)
	if s.Mode != ModeCalendar || s.Year != "1950" || s.Month != "6" || s.Day != "" {
		t.Errorf("FromDate = %+v", s)
	}
	if len(s.Approx) != 1 || s.Approx[0] != approxdate.ApproximateYear {
		t.Errorf("Approx = %v, want [year]", s.Approx)
	}

	back, err := ToDate(s, nil)
	if err != nil {
		t.Fatal(err)
	}
	if back.String() != d.String() {
		t.Errorf("round trip = %s, want %s", back, d)
	}

	if got := FromDate(nil); got.Mode != ModeCalendar || got.Year != "" {
		t.Errorf("FromDate(nil) = %+v", got)
	}
}

func TestFromDate_KeepsAgeFlag(t *testing.T) {
	d := approxdate.New()
	d.SetDateFromAgeAt(30, time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC))

	s := FromDate(d)
	if len(s.Approx) != 1 || s.Approx[0] != approxdate.ApproximateAge {
		t.Fatalf("Approx = %v, want [age]", s.Approx)
	}

	back, err := ToDate(s, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !back.IsAgeApproximated() {
		t.Error("the age flag should survive editing")
	}
	if back.String() != "~1989-12-31" {
		t.Errorf("round trip = %s, want ~1989-12-31", back)
	}
}

func TestValidateRange(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"", false},
		{"  ", false},
		{"6", false},
		{"12", false},
		{"13", true},
		{"0", true},
		{"six", true},
	}
	for _, tt := range tests {
		if err := validateMonth(tt.input); (err != nil) != tt.wantErr {
			t.Errorf("validateMonth(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
	}
}
