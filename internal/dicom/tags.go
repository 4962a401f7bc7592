package dicom

import (
	"fmt"
	"strings"

	"github.com/suyashkumar/dicom/pkg/tag"
)

// VR is the value representation of a registered tag.
type VR string

const (
	VRDate VR = "DA"
	VRAge  VR = "AS"
)

// TagInfo describes a date-bearing DICOM tag.
type TagInfo struct {
	Name string
	Tag  tag.Tag
	VR   VR
}

// tagRegistry maps lowercase tag names to their TagInfo.
var tagRegistry = map[string]TagInfo{
	// Patient level
	"patientbirthdate": {Name: "PatientBirthDate", Tag: tag.PatientBirthDate, VR: VRDate},
	"patientage":       {Name: "PatientAge", Tag: tag.PatientAge, VR: VRAge},

	// Study and series level
	"studydate":       {Name: "StudyDate", Tag: tag.StudyDate, VR: VRDate},
	"seriesdate":      {Name: "SeriesDate", Tag: tag.SeriesDate, VR: VRDate},
	"acquisitiondate": {Name: "AcquisitionDate", Tag: tag.AcquisitionDate, VR: VRDate},
	"contentdate":     {Name: "ContentDate", Tag: tag.ContentDate, VR: VRDate},
}

// LookupTag returns TagInfo for a given tag name.
// The lookup is case-insensitive. If the tag is not found, an error is returned
// with a suggestion for the closest matching tag name (using Levenshtein distance).
func LookupTag(name string) (TagInfo, error) {
	normalizedName := strings.ToLower(strings.TrimSpace(name))

	if info, ok := tagRegistry[normalizedName]; ok {
		return info, nil
	}

	suggestion := findClosestTagName(normalizedName)
	if suggestion != "" {
		return TagInfo{}, fmt.Errorf("unknown date tag %q, did you mean %q?", name, suggestion)
	}
	return TagInfo{}, fmt.Errorf("unknown date tag %q", name)
}

// LookupDateTag is LookupTag restricted to DA tags.
func LookupDateTag(name string) (TagInfo, error) {
	info, err := LookupTag(name)
	if err != nil {
		return TagInfo{}, err
	}
	if info.VR != VRDate {
		return TagInfo{}, fmt.Errorf("tag %s has VR %s, not %s", info.Name, info.VR, VRDate)
	}
	return info, nil
}

// findClosestTagName finds the closest matching tag name.
// Returns empty string if no close match is found (distance > 5).
func findClosestTagName(input string) string {
	const maxDistance = 5
	bestDistance := maxDistance + 1
	var bestMatch string

	for key, info := range tagRegistry {
		distance := levenshteinDistance(input, key)
		if distance < bestDistance || (distance == bestDistance && info.Name < bestMatch) {
			bestDistance = distance
			bestMatch = info.Name
		}
	}

	if bestDistance <= maxDistance {
		return bestMatch
	}
	return ""
}

// levenshteinDistance is the minimum number of single-character edits
// required to change one string into the other.
func levenshteinDistance(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 0
			if a[i-1] != b[j-1] {
				cost = 1
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}
