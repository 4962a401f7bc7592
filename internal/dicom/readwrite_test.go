package dicom

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/mrsinham/approxdate/internal/approxdate"
	"github.com/mrsinham/approxdate/internal/logger"
)

func mustParseDA(t *testing.T, s string) *approxdate.Date {
	t.Helper()
	d, err := ParseDA(s)
	if err != nil {
		t.Fatalf("ParseDA(%q): %v", s, err)
	}
	return d
}

func TestWriteAndReadPatientDates(t *testing.T) {
	clk := clock.NewMock()
	clk.Set(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))

	tests := []struct {
		name      string
		birth     string
		study     string
		wantBirth string
		wantAge   string
	}{
		{name: "full dates", birth: "19800115", study: "20240301", wantBirth: "19800115", wantAge: "044Y"},
		{name: "year only", birth: "1975", study: "20200101", wantBirth: "1975", wantAge: "044Y"},
		{name: "year and month", birth: "202306", study: "20240301", wantBirth: "202306", wantAge: "008M"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "IMG0001.dcm")
			pd := PatientDates{BirthDate: mustParseDA(t, tt.birth), StudyDate: mustParseDA(t, tt.study)}
			if err := WritePatientDates(path, pd, clk); err != nil {
				t.Fatalf("WritePatientDates failed: %v", err)
			}

			got, err := ReadPatientDates(path, ReadOptions{})
			if err != nil {
				t.Fatalf("ReadPatientDates failed: %v", err)
			}
			if FormatDA(got.BirthDate) != tt.wantBirth {
				t.Errorf("birth date = %q, want %q", FormatDA(got.BirthDate), tt.wantBirth)
			}
			if FormatDA(got.StudyDate) != tt.study {
				t.Errorf("study date = %q, want %q", FormatDA(got.StudyDate), tt.study)
			}
			if got.Age == nil || got.Age.String() != tt.wantAge {
				t.Errorf("age = %v, want %s", got.Age, tt.wantAge)
			}
			if got.BirthDate.IsAgeApproximated() {
				t.Errorf("a stored birth date should not be flagged as age derived")
			}
		})
	}
}

func TestReadPatientDates_DerivesBirthDateFromAge(t *testing.T) {
	path := filepath.Join(t.TempDir(), "IMG0001.dcm")
	age := Age{Value: 30, Unit: Years}
	pd := PatientDates{StudyDate: mustParseDA(t, "20200101"), Age: &age}
	if err := WritePatientDates(path, pd, nil); err != nil {
		t.Fatalf("WritePatientDates failed: %v", err)
	}

	var logs bytes.Buffer
	got, err := ReadPatientDates(path, ReadOptions{
		Logger: logger.New(logger.Config{Level: "debug", Output: &logs}),
	})
	if err != nil {
		t.Fatalf("ReadPatientDates failed: %v", err)
	}
	if FormatDA(got.BirthDate) != "19891231" {
		t.Errorf("birth date = %q, want 19891231", FormatDA(got.BirthDate))
	}
	if !got.BirthDate.IsAgeApproximated() || !got.BirthDate.IsYearApproximated() {
		m, _ := got.BirthDate.Metadata()
		t.Errorf("flags = %s, want age and year", m)
	}
	if !strings.Contains(logs.String(), "derived birth date from patient age") {
		t.Errorf("expected a debug log for the derivation, got: %s", logs.String())
	}
}

func TestReadDate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "IMG0001.dcm")
	pd := PatientDates{BirthDate: mustParseDA(t, "1960"), StudyDate: mustParseDA(t, "20010911")}
	if err := WritePatientDates(path, pd, nil); err != nil {
		t.Fatal(err)
	}

	study, err := ReadDate(path, "studydate", ReadOptions{})
	if err != nil {
		t.Fatalf("ReadDate failed: %v", err)
	}
	if study.String() != "2001-09-11" {
		t.Errorf("study date = %s", study)
	}

	// absent tags read as fully unknown dates
	acq, err := ReadDate(path, "AcquisitionDate", ReadOptions{})
	if err != nil {
		t.Fatalf("ReadDate failed: %v", err)
	}
	if acq.Year().Valid() {
		t.Errorf("expected an unknown date, got %s", acq)
	}

	if _, err := ReadDate(path, "PatientAge", ReadOptions{}); err == nil {
		t.Error("expected an error for a non-DA tag")
	}
}

func TestReadPatientDates_MissingFile(t *testing.T) {
	_, err := ReadPatientDates(filepath.Join(t.TempDir(), "missing.dcm"), ReadOptions{})
	if err == nil {
		t.Error("expected an error for a missing file")
	}
}
