package edgecases

import (
	"math/rand/v2"

	"github.com/benbjohnson/clock"
	"github.com/mrsinham/approxdate/internal/dicom"
)

// Applicator applies edge cases to generated patient dates
type Applicator struct {
	config Config
	rng    *rand.Rand
	clk    clock.Clock
}

// NewApplicator creates a new edge case applicator. A nil clk uses the wall
// clock.
func NewApplicator(config Config, rng *rand.Rand, clk clock.Clock) *Applicator {
	if clk == nil {
		clk = clock.New()
	}
	return &Applicator{config: config, rng: rng, clk: clk}
}

// ShouldApply returns true if edge cases should apply to this sample
func (a *Applicator) ShouldApply() bool {
	return a.rng.IntN(100) < a.config.Percentage
}

// SelectEdgeCaseType randomly selects which edge case type to apply
func (a *Applicator) SelectEdgeCaseType() EdgeCaseType {
	return a.config.Types[a.rng.IntN(len(a.config.Types))]
}

// Sample generates the dates of one patient. The study date is in the past
// unless the future-study edge case is picked; the birth date is exact unless
// another edge case is picked.
func (a *Applicator) Sample() dicom.PatientDates {
	now := a.clk.Now()
	study := exact(now.Year()-a.rng.IntN(10), 1+a.rng.IntN(12), 1+a.rng.IntN(28))
	if study.Time(a.clk).After(now) {
		study = exact(now.Year()-1, 1+a.rng.IntN(12), 1+a.rng.IntN(28))
	}
	pd := dicom.PatientDates{BirthDate: GenerateBirthDate(a.rng), StudyDate: study}
	if !a.config.IsEnabled() || !a.ShouldApply() {
		return pd
	}

	switch a.SelectEdgeCaseType() {
	case PartialDates:
		pd.BirthDate = GeneratePartialDate(a.rng)
	case OldDates:
		pd.BirthDate = GenerateOldBirthDate(a.rng)
	case Approximate:
		pd.BirthDate = GenerateApproximateDate(a.rng)
	case AgeOnly:
		age := GenerateAge(a.rng)
		pd.Age = &age
		pd.BirthDate = nil
	case FutureStudy:
		pd.StudyDate = GenerateFutureStudyDate(a.rng, now)
	}
	return pd
}
