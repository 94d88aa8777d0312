package dashboard

import (
	"sort"

	"github.com/jonathan/activity-planner/internal/db"
	"github.com/jonathan/activity-planner/internal/scoring"
)

// SchoolMatch pairs a catalog school with its fit against the student radar
type SchoolMatch struct {
	School       db.MedicalSchool `json:"school"`
	MatchPercent int              `json:"match_percent"`
}

// RecommendSchools scores every school against the student's radar profile
// via its primary archetype and returns them best-fit first. Schools with an
// unrecognized archetype category score zero. The sort is stable, so equal
// scores keep catalog order.
func RecommendSchools(schools []db.MedicalSchool, radar scoring.Radar) []SchoolMatch {
	matches := make([]SchoolMatch, 0, len(schools))
	for _, s := range schools {
		percent := 0
		if arch, ok := scoring.ArchetypeByName(s.PrimaryCategory); ok {
			percent = scoring.FitPercent(radar, arch)
		}
		matches = append(matches, SchoolMatch{School: s, MatchPercent: percent})
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].MatchPercent > matches[j].MatchPercent
	})
	return matches
}
