package edgecases

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/mrsinham/approxdate/internal/dicom"
)

func TestGenerateOldBirthDate(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 42))
	date := GenerateOldBirthDate(rng)
	da := dicom.FormatDA(date)
	if len(da) != 8 {
		t.Errorf("Date should be YYYYMMDD format, got %s", da)
	}
	if y, _ := date.Year().Get(); y > 1950 {
		t.Errorf("Old birth date should be <= 1950, got %d", y)
	}
	if date.IsApproximated() {
		t.Errorf("Old birth date should be exact, got %s", date)
	}
}

func TestGeneratePartialDate(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 42))
	for i := 0; i < 10; i++ {
		date := GeneratePartialDate(rng)
		da := dicom.FormatDA(date)
		if len(da) != 4 && len(da) != 6 {
			t.Errorf("Partial date should be YYYY or YYYYMM, got %s (len=%d)", da, len(da))
		}
		if date.Day().Valid() || !date.Unknowns().Day {
			t.Errorf("Partial date should have an unknown day, got %s", date)
		}
	}
}

func TestGenerateApproximateDate(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 42))
	for i := 0; i < 10; i++ {
		date := GenerateApproximateDate(rng)
		if !date.IsApproximated() {
			t.Errorf("Expected an approximated date, got %s", date)
		}
		if len(dicom.FormatDA(date)) != 8 {
			t.Errorf("Approximate date should still be complete, got %s", date)
		}
	}
}

func TestGenerateAge(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 42))
	for i := 0; i < 50; i++ {
		age := GenerateAge(rng)
		parsed, err := dicom.ParseAS(age.String())
		if err != nil {
			t.Fatalf("GenerateAge produced invalid AS %q: %v", age, err)
		}
		if parsed != age {
			t.Errorf("ParseAS(%q) = %+v", age, parsed)
		}
	}
}

func TestGenerateFutureStudyDate(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 42))
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	date := GenerateFutureStudyDate(rng, now)
	if y, _ := date.Year().Get(); y <= now.Year() {
		t.Errorf("Future date should be > current year, got %d", y)
	}
}
