package scoring

import "math"

// Archetype is a named school-profile target vector over the radar dimensions
type Archetype struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Targets     Radar  `json:"targets"`
}

// Archetypes enumerates the school profiles, in tie-break priority order:
// when two archetypes leave the same total deficit, the earlier one wins.
var Archetypes = []Archetype{
	{
		ID:          "investigator",
		Name:        "The Investigator",
		Description: "Top-tier academic centers valuing innovation, publications, and basic science.",
		Targets:     Radar{Inquiry: 10, Service: 5, Teamwork: 6, Clinical: 7},
	},
	{
		ID:          "advocate",
		Name:        "The Advocate",
		Description: "Social-justice focused schools valuing distance traveled, community service, and health equity.",
		Targets:     Radar{Inquiry: 4, Service: 10, Teamwork: 7, Clinical: 7},
	},
	{
		ID:          "practitioner",
		Name:        "The Practitioner",
		Description: "Primary care & regional focused; values hands-on clinical reliability.",
		Targets:     Radar{Inquiry: 3, Service: 8, Teamwork: 10, Clinical: 10},
	},
	{
		ID:          "innovator",
		Name:        "The Innovator",
		Description: "Programs at the intersection of medicine with engineering, technology, and systems of care.",
		Targets:     Radar{Inquiry: 8, Service: 4, Teamwork: 7, Clinical: 5},
	},
	{
		ID:          "leader",
		Name:        "The Leader",
		Description: "Schools that cultivate physician leaders; values initiative, teams, and service under pressure.",
		Targets:     Radar{Inquiry: 4, Service: 6, Teamwork: 10, Clinical: 6},
	},
}

// CompetitiveAverage is the benchmark vector shown on the dashboard hero chart
var CompetitiveAverage = Radar{Inquiry: 7, Service: 8, Teamwork: 7, Clinical: 8}

// Deficit is one dimension where the student falls short of an archetype
// target, with a fixed improvement suggestion for that dimension.
type Deficit struct {
	Dimension  string `json:"dimension"`
	Gap        int    `json:"gap"`
	Suggestion string `json:"suggestion"`
}

var deficitSuggestions = map[string]string{
	"Inquiry":  "Add research or lab hours, or surface posters and publications in your narratives.",
	"Service":  "Grow community service or volunteer hours, and mark your strongest service work as most meaningful.",
	"Teamwork": "Take on leadership roles, team athletics, or extracurricular commitments with sustained hours.",
	"Clinical": "Add shadowing, scribing, or other hands-on clinical and healthcare hours.",
}

// FitPercent computes the percentage fit of a student radar against one
// archetype: each dimension contributes at most its target value, and the
// capped sum is taken over the target total.
func FitPercent(student Radar, arch Archetype) int {
	target := arch.Targets
	maxPossible := target.Total()
	if maxPossible == 0 {
		return 0
	}
	actual := minInt(student.Inquiry, target.Inquiry) +
		minInt(student.Service, target.Service) +
		minInt(student.Teamwork, target.Teamwork) +
		minInt(student.Clinical, target.Clinical)
	return int(math.Round(float64(actual) / float64(maxPossible) * 100))
}

// BestFit selects the archetype with the smallest total positive deficit for
// the student (ties broken by declaration order) and returns the per-dimension
// deficits against it.
func BestFit(student Radar) (Archetype, []Deficit) {
	best := Archetypes[0]
	bestDeficit := totalDeficit(student, best)
	for _, arch := range Archetypes[1:] {
		if d := totalDeficit(student, arch); d < bestDeficit {
			best = arch
			bestDeficit = d
		}
	}
	return best, Deficits(student, best)
}

// Deficits lists the dimensions where the student falls short of the
// archetype's targets, in fixed dimension order.
func Deficits(student Radar, arch Archetype) []Deficit {
	var out []Deficit
	pairs := []struct {
		name            string
		student, target int
	}{
		{"Inquiry", student.Inquiry, arch.Targets.Inquiry},
		{"Service", student.Service, arch.Targets.Service},
		{"Teamwork", student.Teamwork, arch.Targets.Teamwork},
		{"Clinical", student.Clinical, arch.Targets.Clinical},
	}
	for _, p := range pairs {
		if p.student < p.target {
			out = append(out, Deficit{
				Dimension:  p.name,
				Gap:        p.target - p.student,
				Suggestion: deficitSuggestions[p.name],
			})
		}
	}
	return out
}

// ArchetypeByName returns the archetype whose name matches, or false
func ArchetypeByName(name string) (Archetype, bool) {
	for _, arch := range Archetypes {
		if arch.Name == name {
			return arch, true
		}
	}
	return Archetype{}, false
}

func totalDeficit(student Radar, arch Archetype) int {
	total := 0
	for _, pair := range [][2]int{
		{student.Inquiry, arch.Targets.Inquiry},
		{student.Service, arch.Targets.Service},
		{student.Teamwork, arch.Targets.Teamwork},
		{student.Clinical, arch.Targets.Clinical},
	} {
		if pair[1] > pair[0] {
			total += pair[1] - pair[0]
		}
	}
	return total
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
