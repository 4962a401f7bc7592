package edgecases

import (
	"math/rand/v2"
	"time"

	"github.com/mrsinham/approxdate/internal/approxdate"
	"github.com/mrsinham/approxdate/internal/dicom"
)

// GenerateBirthDate generates an ordinary exact birth date (1950-2009).
func GenerateBirthDate(rng *rand.Rand) *approxdate.Date {
	return exact(1950+rng.IntN(60), 1+rng.IntN(12), 1+rng.IntN(28))
}

// GenerateOldBirthDate generates a very old birth date (1900-1950)
func GenerateOldBirthDate(rng *rand.Rand) *approxdate.Date {
	return exact(1900+rng.IntN(51), 1+rng.IntN(12), 1+rng.IntN(28))
}

// GeneratePartialDate generates a birth date with only the year, or the year
// and month, known.
func GeneratePartialDate(rng *rand.Rand) *approxdate.Date {
	d := approxdate.New()
	d.SetYear(approxdate.Known(1950 + rng.IntN(50)))
	if rng.IntN(2) == 0 {
		d.SetMonth(approxdate.Absent)
	} else {
		d.SetMonth(approxdate.Known(1 + rng.IntN(12)))
	}
	d.SetDay(approxdate.Absent)
	return d
}

// GenerateApproximateDate generates a full date where the year, month or day
// is only an estimate.
func GenerateApproximateDate(rng *rand.Rand) *approxdate.Date {
	d := approxdate.New()
	which := rng.IntN(3)
	d.SetDate(1930+rng.IntN(80), 1+rng.IntN(12), 1+rng.IntN(28), which == 0, which == 1, which == 2)
	return d
}

// GenerateAge generates a patient age string, mostly in years.
func GenerateAge(rng *rand.Rand) dicom.Age {
	switch rng.IntN(10) {
	case 0:
		return dicom.Age{Value: 1 + rng.IntN(6), Unit: dicom.Days}
	case 1:
		return dicom.Age{Value: 1 + rng.IntN(4), Unit: dicom.Weeks}
	case 2:
		return dicom.Age{Value: 1 + rng.IntN(23), Unit: dicom.Months}
	default:
		return dicom.Age{Value: 2 + rng.IntN(95), Unit: dicom.Years}
	}
}

// GenerateFutureStudyDate generates a study date 1-5 years after now.
func GenerateFutureStudyDate(rng *rand.Rand, now time.Time) *approxdate.Date {
	return exact(now.Year()+1+rng.IntN(5), 1+rng.IntN(12), 1+rng.IntN(28))
}

func exact(year, month, day int) *approxdate.Date {
	d := approxdate.New()
	d.SetDate(year, month, day, false, false, false)
	return d
}
