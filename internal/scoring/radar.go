package scoring

import (
	"strings"

	"github.com/jonathan/activity-planner/internal/types"
)

// Radar dimension bounds. Every dimension starts at the floor so the chart
// is never degenerate, and is clamped at the ceiling after accumulation.
const (
	radarFloor   = 1
	radarCeiling = 10
)

// Radar holds the four archetype-alignment dimensions, each in [1, 10]
type Radar struct {
	Inquiry  int `json:"inquiry"`
	Service  int `json:"service"`
	Teamwork int `json:"teamwork"`
	Clinical int `json:"clinical"`
}

// CalculateRadar maps a record set to the four radar dimensions.
// Hours accrue per record against dimension-specific category substrings;
// narrative mentions of publications and most-meaningful service work add
// flat bonuses.
func CalculateRadar(records []types.Activity) Radar {
	inquiry, service, teamwork, clinical := radarFloor, radarFloor, radarFloor, radarFloor

	for i := range records {
		a := &records[i]
		hours := a.TotalHours()
		category := strings.ToLower(a.ExperienceType)
		narrative := strings.ToLower(a.Description)

		if strings.Contains(category, "research") || strings.Contains(category, "lab") {
			inquiry += hours / 100
		}
		if strings.Contains(narrative, "publication") ||
			strings.Contains(narrative, "published") ||
			strings.Contains(narrative, "poster") {
			inquiry += 2
		}

		if strings.Contains(category, "community service") || strings.Contains(category, "volunteer") {
			service += hours / 50
		}
		if a.MostMeaningful &&
			(strings.Contains(category, "service") || strings.Contains(category, "volunteer")) {
			service += 2
		}

		if strings.Contains(category, "leadership") ||
			strings.Contains(category, "military") ||
			strings.Contains(category, "athletics") ||
			strings.Contains(category, "sports") ||
			strings.Contains(category, "extracurricular") {
			teamwork += hours / 100
		}

		if strings.Contains(category, "shadowing") ||
			strings.Contains(category, "clinical") ||
			strings.Contains(category, "healthcare") ||
			strings.Contains(category, "scribe") {
			clinical += hours / 100
		}
	}

	return Radar{
		Inquiry:  clampDimension(inquiry),
		Service:  clampDimension(service),
		Teamwork: clampDimension(teamwork),
		Clinical: clampDimension(clinical),
	}
}

func clampDimension(v int) int {
	if v > radarCeiling {
		return radarCeiling
	}
	if v < radarFloor {
		return radarFloor
	}
	return v
}

// Total returns the sum of the four dimensions
func (r Radar) Total() int {
	return r.Inquiry + r.Service + r.Teamwork + r.Clinical
}
