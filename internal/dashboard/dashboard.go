// Package dashboard derives display views over the activity record set:
// filtered/search lists, the readiness summary, and school recommendations.
package dashboard

import (
	"sort"
	"strings"

	"github.com/jonathan/activity-planner/internal/scoring"
	"github.com/jonathan/activity-planner/internal/types"
)

// mostMeaningfulCap is the AMCAS limit on most-meaningful designations
const mostMeaningfulCap = 3

// Filters narrows the activity list. Zero values mean "no restriction".
type Filters struct {
	Query  string               // substring match on title or organization, case-insensitive
	Status types.ActivityStatus // exact status match
}

// Filter returns the activities matching the filters, preserving slot order
func Filter(records []types.Activity, f Filters) []types.Activity {
	query := strings.ToLower(strings.TrimSpace(f.Query))
	var out []types.Activity
	for i := range records {
		a := &records[i]
		if f.Status != "" && a.Status != f.Status {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(a.Title), query) &&
			!strings.Contains(strings.ToLower(a.Organization), query) {
			continue
		}
		out = append(out, *a)
	}
	return out
}

// Summary is the aggregate state shown at the top of the dashboard
type Summary struct {
	Filled         int               `json:"filled"`
	MostMeaningful int               `json:"most_meaningful"`
	Readiness      scoring.Readiness `json:"readiness"`
	Radar          scoring.Radar     `json:"radar"`
	BestArchetype  scoring.Archetype `json:"best_archetype"`
	Deficits       []scoring.Deficit `json:"deficits"`
	ArchetypeFits  map[string]int    `json:"archetype_fits"`
	Deadlines      []types.Activity  `json:"deadlines,omitempty"`
}

// Summarize runs the scoring and radar engines over the record set and
// packages the result for display.
func Summarize(records []types.Activity) Summary {
	radar := scoring.CalculateRadar(records)
	best, deficits := scoring.BestFit(radar)

	fits := make(map[string]int, len(scoring.Archetypes))
	for _, arch := range scoring.Archetypes {
		fits[arch.ID] = scoring.FitPercent(radar, arch)
	}

	return Summary{
		Filled:         countFilled(records),
		MostMeaningful: MostMeaningfulCount(records),
		Readiness:      scoring.CalculateReadiness(records),
		Radar:          radar,
		BestArchetype:  best,
		Deficits:       deficits,
		ArchetypeFits:  fits,
	}
}

// MostMeaningfulCount counts the records currently flagged most meaningful
func MostMeaningfulCount(records []types.Activity) int {
	n := 0
	for i := range records {
		if records[i].MostMeaningful {
			n++
		}
	}
	return n
}

// CanMarkMostMeaningful reports whether another most-meaningful designation
// is allowed: AMCAS caps the set at three, AACOMAS has no such designation.
func CanMarkMostMeaningful(records []types.Activity, app types.ApplicationType) bool {
	if app == types.AACOMAS {
		return false
	}
	return MostMeaningfulCount(records) < mostMeaningfulCap
}

// UpcomingDeadlines returns the filled activities that carry a due date,
// soonest first. The ISO YYYY-MM-DD format sorts lexicographically.
func UpcomingDeadlines(records []types.Activity) []types.Activity {
	var out []types.Activity
	for i := range records {
		a := &records[i]
		if a.Filled() && a.DueDate != "" {
			out = append(out, *a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DueDate < out[j].DueDate
	})
	return out
}

func countFilled(records []types.Activity) int {
	n := 0
	for i := range records {
		if records[i].Filled() {
			n++
		}
	}
	return n
}
