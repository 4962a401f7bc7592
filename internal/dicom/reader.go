package dicom

import (
	"fmt"
	"strings"

	"github.com/mrsinham/approxdate/internal/approxdate"
	"github.com/rs/zerolog"
	"github.com/suyashkumar/dicom"
	"github.com/suyashkumar/dicom/pkg/tag"
)

// PatientDates are the date attributes of one DICOM instance.
type PatientDates struct {
	BirthDate *approxdate.Date
	StudyDate *approxdate.Date
	Age       *Age // nil when PatientAge is absent or empty
}

// ReadOptions configures how dates are read from a file.
type ReadOptions struct {
	BirthDateTag string // defaults to PatientBirthDate
	StudyDateTag string // defaults to StudyDate
	DateOptions  []approxdate.Option
	Logger       zerolog.Logger
}

func (o ReadOptions) withDefaults() ReadOptions {
	if o.BirthDateTag == "" {
		o.BirthDateTag = "PatientBirthDate"
	}
	if o.StudyDateTag == "" {
		o.StudyDateTag = "StudyDate"
	}
	return o
}

// ReadPatientDates reads the birth date, study date and patient age of a
// DICOM file. When the birth date is empty but the age and a complete study
// date are present, the birth date is derived from the age.
func ReadPatientDates(path string, opts ReadOptions) (PatientDates, error) {
	opts = opts.withDefaults()
	birthTag, err := LookupDateTag(opts.BirthDateTag)
	if err != nil {
		return PatientDates{}, err
	}
	studyTag, err := LookupDateTag(opts.StudyDateTag)
	if err != nil {
		return PatientDates{}, err
	}

	ds, err := parseFile(path)
	if err != nil {
		return PatientDates{}, err
	}
	log := opts.Logger.With().Str("file", path).Logger()

	var pd PatientDates
	if pd.BirthDate, err = readDA(ds, birthTag, opts.DateOptions); err != nil {
		return PatientDates{}, err
	}
	if pd.StudyDate, err = readDA(ds, studyTag, opts.DateOptions); err != nil {
		return PatientDates{}, err
	}
	if raw, ok := getStringValue(ds, tag.PatientAge); ok && raw != "" {
		age, err := ParseAS(raw)
		if err != nil {
			return PatientDates{}, fmt.Errorf("%s: %w", path, err)
		}
		pd.Age = &age
	}

	if FormatDA(pd.BirthDate) == "" && pd.Age != nil && isComplete(pd.StudyDate) {
		ApplyAge(pd.BirthDate, *pd.Age, pd.StudyDate.Time(nil))
		log.Debug().
			Str("age", pd.Age.String()).
			Str("study_date", FormatDA(pd.StudyDate)).
			Str("birth_date", pd.BirthDate.String()).
			Msg("derived birth date from patient age")
	}

	log.Debug().
		Str("birth_date", pd.BirthDate.String()).
		Str("study_date", pd.StudyDate.String()).
		Msg("read patient dates")
	return pd, nil
}

// ReadDate reads a single registered DA tag.
func ReadDate(path, tagName string, opts ReadOptions) (*approxdate.Date, error) {
	info, err := LookupDateTag(tagName)
	if err != nil {
		return nil, err
	}
	ds, err := parseFile(path)
	if err != nil {
		return nil, err
	}
	return readDA(ds, info, opts.DateOptions)
}

func parseFile(path string) (dicom.Dataset, error) {
	ds, err := dicom.ParseFile(path, nil, dicom.SkipPixelData())
	if err != nil {
		return dicom.Dataset{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return ds, nil
}

func readDA(ds dicom.Dataset, info TagInfo, opts []approxdate.Option) (*approxdate.Date, error) {
	raw, _ := getStringValue(ds, info.Tag)
	d, err := ParseDA(raw, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", info.Name, err)
	}
	return d, nil
}

// getStringValue safely extracts a string value from a dataset
func getStringValue(ds dicom.Dataset, t tag.Tag) (string, bool) {
	elem, err := ds.FindElementByTag(t)
	if err != nil || elem == nil {
		return "", false
	}
	return strings.Trim(elem.Value.String(), " []"), true
}

func isComplete(d *approxdate.Date) bool {
	return d.Year().Valid() && d.Month().Valid() && d.Day().Valid()
}
