// Package activity provides the canonical constants and pure validation rules
// for Work & Activities entries: experience-type enumerations per application
// system, scoring weight tables, and date-range plausibility checks.
package activity

import (
	"fmt"
	"time"

	"github.com/jonathan/activity-planner/internal/types"
)

// MaxActivities is the number of entry slots an application allows
const MaxActivities = 15

// MMELimit is the character limit for a Most Meaningful Experience essay
const MMELimit = 1325

// DescriptionLimit returns the narrative character limit for the given system
func DescriptionLimit(app types.ApplicationType) int {
	if app == types.AACOMAS {
		return 600
	}
	return 700
}

// Months enumerates the valid month names for date ranges, January first
var Months = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// AMCASExperienceTypes enumerates the AMCAS experience categories
var AMCASExperienceTypes = []string{
	"Artistic Endeavors",
	"Community Service/Volunteer - Medical/Clinical",
	"Community Service/Volunteer - Not Medical/Clinical",
	"Conferences Attended",
	"Extracurricular Activities",
	"Hobbies",
	"Honors/Awards/Recognitions",
	"Intercollegiate Athletics",
	"Leadership - Not Listed Elsewhere",
	"Military Service",
	"Other",
	"Paid Employment - Medical/Clinical",
	"Paid Employment - Not Medical/Clinical",
	"Physician Shadowing/Clinical Observation",
	"Presentations/Posters",
	"Publications",
	"Research/Lab",
	"Teaching/Tutoring/Teaching Assistant",
}

// AACOMASExperienceTypes enumerates the AACOMAS experience categories
var AACOMASExperienceTypes = []string{
	"Non-Healthcare Employment",
	"Non-Healthcare Volunteer",
	"Healthcare Experience",
	"Research",
	"Extracurricular Activities",
	"Leadership Experience",
	"Teaching Experience",
	"Achievements",
}

// ExperienceTypes returns the category enumeration for the given system
func ExperienceTypes(app types.ApplicationType) []string {
	if app == types.AACOMAS {
		return AACOMASExperienceTypes
	}
	return AMCASExperienceTypes
}

// ActivityWeights maps each experience category to its readiness-score weight.
// Clinical and medical categories carry the highest weights; an unknown
// category contributes zero.
var ActivityWeights = map[string]float64{
	"Community Service/Volunteer - Medical/Clinical":     3,
	"Community Service/Volunteer - Not Medical/Clinical": 3,
	"Physician Shadowing/Clinical Observation":           3,
	"Leadership - Not Listed Elsewhere":                  3,
	"Paid Employment - Medical/Clinical":                 3,
	"Research/Lab":                                       2.5,
	"Military Service":                                   2.5,
	"Paid Employment - Not Medical/Clinical":             2.5,
	"Extracurricular Activities":                         2.5,
	"Artistic Endeavors":                                 2.5,
	"Hobbies":                                            2.5,
	"Other":                                              2.5,
	"Teaching/Tutoring/Teaching Assistant":               2,
	"Intercollegiate Athletics":                          2,
	"Honors/Awards/Recognitions":                         2,
	"Conferences Attended":                               2,
	"Presentations/Posters":                              2,
	"Publications":                                       2,
	"Healthcare Experience":                              3,
	"Non-Healthcare Volunteer":                           3,
	"Non-Healthcare Employment":                          2.5,
	"Research":                                           2.5,
	"Leadership Experience":                              3,
	"Teaching Experience":                                2,
	"Achievements":                                       2,
}

// AAMCCoreCompetencies enumerates the 15 AAMC core competencies
var AAMCCoreCompetencies = []string{
	"Service Orientation",
	"Social Skills",
	"Cultural Competence",
	"Teamwork",
	"Oral Communication",
	"Ethical Responsibility to Self and Others",
	"Reliability and Dependability",
	"Resilience and Adaptability",
	"Capacity for Improvement",
	"Critical Thinking",
	"Quantitative Reasoning",
	"Scientific Inquiry",
	"Written Communication",
	"Living Systems",
	"Human Behavior",
}

// IsCoreCompetency reports whether name is one of the AAMC core competencies
func IsCoreCompetency(name string) bool {
	for _, c := range AAMCCoreCompetencies {
		if c == name {
			return true
		}
	}
	return false
}

// Years returns the selectable year strings for date ranges, newest first:
// current year + 6 down to current year - 20.
func Years() []string {
	currentYear := time.Now().Year()
	years := make([]string, 0, 27)
	for y := currentYear + 6; y >= currentYear-20; y-- {
		years = append(years, fmt.Sprintf("%d", y))
	}
	return years
}

// NewRecordSet returns the 15 empty activity slots for a fresh application.
// IDs are slot ordinals; the date-range IDs embed the creation time so they
// stay unique as ranges are added and removed during editing.
func NewRecordSet() []types.Activity {
	now := time.Now().UnixMilli()
	records := make([]types.Activity, MaxActivities)
	for i := range records {
		records[i] = types.Activity{
			ID:     int64(i + 1),
			Status: types.StatusEmpty,
			DateRanges: []types.DateRange{
				{ID: fmt.Sprintf("dr-%d-%d", now, i)},
			},
			Competencies: []string{},
		}
	}
	return records
}
