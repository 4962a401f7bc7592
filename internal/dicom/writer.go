package dicom

import (
	"fmt"
	"hash/fnv"
	"os"

	"github.com/benbjohnson/clock"
	"github.com/suyashkumar/dicom"
	"github.com/suyashkumar/dicom/pkg/tag"
)

const (
	explicitVRLittleEndian = "1.2.840.10008.1.2.1"
	secondaryCaptureSOP    = "1.2.840.10008.5.1.4.1.1.7"
	uidRoot                = "1.2.826.0.1.3680043.8.498"
)

// WritePatientDates writes a minimal DICOM file holding the patient's birth
// date, study date and age. When pd.Age is nil and both dates are set, the age
// is computed from them.
func WritePatientDates(path string, pd PatientDates, clk clock.Clock) error {
	birth, study := "", ""
	if pd.BirthDate != nil {
		birth = FormatDA(pd.BirthDate)
	}
	if pd.StudyDate != nil {
		study = FormatDA(pd.StudyDate)
	}

	age := ""
	switch {
	case pd.Age != nil:
		age = pd.Age.String()
	case birth != "" && study != "":
		a, err := AgeAt(pd.BirthDate, pd.StudyDate.Time(clk), clk)
		if err != nil {
			return fmt.Errorf("compute patient age: %w", err)
		}
		age = a.String()
	}

	sopInstanceUID := deterministicUID(path)
	elements := []*dicom.Element{
		mustNewElement(tag.TransferSyntaxUID, []string{explicitVRLittleEndian}),
		mustNewElement(tag.MediaStorageSOPClassUID, []string{secondaryCaptureSOP}),
		mustNewElement(tag.MediaStorageSOPInstanceUID, []string{sopInstanceUID}),
		mustNewElement(tag.ImplementationClassUID, []string{uidRoot}),
		mustNewElement(tag.SOPClassUID, []string{secondaryCaptureSOP}),
		mustNewElement(tag.SOPInstanceUID, []string{sopInstanceUID}),
		mustNewElement(tag.PatientBirthDate, []string{birth}),
		mustNewElement(tag.PatientAge, []string{age}),
		mustNewElement(tag.StudyDate, []string{study}),
	}

	if err := writeDatasetToFile(path, dicom.Dataset{Elements: elements}); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// writeDatasetToFile writes a DICOM dataset to a file
func writeDatasetToFile(filename string, ds dicom.Dataset, opts ...dicom.WriteOption) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	return dicom.Write(f, ds, opts...)
}

func mustNewElement(t tag.Tag, value interface{}) *dicom.Element {
	elem, err := dicom.NewElement(t, value)
	if err != nil {
		panic(fmt.Sprintf("failed to create element %v: %v", t, err))
	}
	return elem
}

// deterministicUID derives a stable UID under uidRoot from seed.
func deterministicUID(seed string) string {
	h := fnv.New64a()
	_, _ = h.Write([]byte(seed))
	return fmt.Sprintf("%s.%d", uidRoot, h.Sum64())
}
