// Package scoring computes the AdCom readiness score and the competency radar
// from a user's activity records. Both engines are pure functions of their
// input: they never fail and hold no state.
package scoring

import (
	"fmt"
	"math"
	"strings"

	"github.com/jonathan/activity-planner/internal/activity"
	"github.com/jonathan/activity-planner/internal/types"
)

// Readiness score calibration. MaxRawScore is the idealized maximum raw point
// total the weighted sum is normalized against; the hour targets are the
// benchmarks unmet gaps are reported for. These are editable heuristics, not
// validated admissions statistics.
const (
	MaxRawScore = 90

	mostMeaningfulBonus = 4
	polishBonus         = 2
	competencyBonusCap  = 15

	ClinicalTarget   = 150
	MedServiceTarget = 100
	NonMedTarget     = 100
	ShadowingTarget  = 100
	LeadershipTarget = 100
	ResearchTarget   = 100

	competencyBenchmark = 8
	mmeBenchmark        = 3
)

// Readiness tier names, from lowest to highest
const (
	LevelFoundation  = "Foundation"
	LevelBuilding    = "Building"
	LevelCompetitive = "Competitive"
	LevelExceptional = "Exceptional"
)

// Stat is one hour-pool (or count) summary with its benchmark target
type Stat struct {
	Value  int    `json:"value"`
	Target int    `json:"target"`
	Label  string `json:"label"`
}

// Stats collects the per-dimension summaries shown on the dashboard
type Stats struct {
	Clinical          Stat `json:"clinical"`
	MedicalService    Stat `json:"medical_service"`
	NonMedicalService Stat `json:"non_medical_service"`
	Shadowing         Stat `json:"shadowing"`
	Leadership        Stat `json:"leadership"`
	Research          Stat `json:"research"`
	Competencies      Stat `json:"competencies"`
}

// FeedbackItem is one unmet benchmark with a human-readable recommendation
type FeedbackItem struct {
	Category string `json:"category"`
	Text     string `json:"text"`
}

// Readiness is the full result of the readiness computation
type Readiness struct {
	Score           int            `json:"score"`
	Level           string         `json:"level"`
	Feedback        []FeedbackItem `json:"feedback"`
	Stats           Stats          `json:"stats"`
	CompetencyCount int            `json:"competency_count"`
}

// CalculateReadiness computes the 0-100 readiness score, tier, hour-pool
// stats, and gap feedback for a record set. Empty slots are ignored. The
// feedback list is generated in a fixed order (volume, clinical, medical
// service, non-medical service, shadowing, leadership, competencies, MME
// count) and is never reordered by severity.
func CalculateReadiness(records []types.Activity) Readiness {
	var raw float64
	var clinical, shadowing, research, medService, nonMedService, leadership int
	mmeCount := 0
	filled := 0
	unique := make(map[string]struct{})

	for i := range records {
		a := &records[i]
		if !a.Filled() {
			continue
		}
		filled++

		raw += activity.ActivityWeights[a.ExperienceType]
		if a.MostMeaningful {
			raw += mostMeaningfulBonus
			mmeCount++
		}
		if a.Status == types.StatusFinal || a.Status == types.StatusPolished {
			raw += polishBonus
		}

		hours := a.TotalHours()
		category := strings.ToLower(a.ExperienceType)

		// A record can feed several pools when its category text matches
		// more than one substring rule.
		if strings.Contains(category, "medical/clinical") || strings.Contains(category, "healthcare") {
			clinical += hours
		}
		if strings.Contains(category, "community service/volunteer - medical/clinical") {
			medService += hours
		}
		if strings.Contains(category, "community service/volunteer - not medical/clinical") {
			nonMedService += hours
		}
		if strings.Contains(category, "shadowing") {
			shadowing += hours
		}
		if strings.Contains(category, "research") {
			research += hours
		}
		if strings.Contains(category, "leadership") {
			leadership += hours
		}

		for _, c := range a.Competencies {
			unique[c] = struct{}{}
		}
	}

	// Volume bonus: one point per filled slot, implicitly capped at 15
	raw += float64(filled)

	// Competency saturation bonus
	saturation := len(unique)
	if saturation > competencyBonusCap {
		saturation = competencyBonusCap
	}
	raw += float64(saturation)

	score := int(math.Round(raw / MaxRawScore * 100))
	if score > 100 {
		score = 100
	}

	level := LevelFoundation
	switch {
	case score >= 90:
		level = LevelExceptional
	case score >= 70:
		level = LevelCompetitive
	case score >= 40:
		level = LevelBuilding
	}

	feedback := buildFeedback(gapInput{
		filled:        filled,
		clinical:      clinical,
		medService:    medService,
		nonMedService: nonMedService,
		shadowing:     shadowing,
		leadership:    leadership,
		competencies:  len(unique),
		mmeCount:      mmeCount,
	})

	return Readiness{
		Score:           score,
		Level:           level,
		Feedback:        feedback,
		CompetencyCount: len(unique),
		Stats: Stats{
			Clinical:          Stat{Value: clinical, Target: ClinicalTarget, Label: "Clinical (Total)"},
			MedicalService:    Stat{Value: medService, Target: MedServiceTarget, Label: "Medical Vol."},
			NonMedicalService: Stat{Value: nonMedService, Target: NonMedTarget, Label: "Non-Medical Vol."},
			Shadowing:         Stat{Value: shadowing, Target: ShadowingTarget, Label: "Physician Shadowing"},
			Leadership:        Stat{Value: leadership, Target: LeadershipTarget, Label: "Leadership"},
			Research:          Stat{Value: research, Target: ResearchTarget, Label: "Research"},
			Competencies:      Stat{Value: len(unique), Target: 15, Label: "Competency Depth"},
		},
	}
}

type gapInput struct {
	filled        int
	clinical      int
	medService    int
	nonMedService int
	shadowing     int
	leadership    int
	competencies  int
	mmeCount      int
}

func buildFeedback(in gapInput) []FeedbackItem {
	var items []FeedbackItem

	if in.filled < activity.MaxActivities {
		items = append(items, FeedbackItem{
			Category: "Volume",
			Text: fmt.Sprintf("Maximize your narrative real estate. You have filled %d/15 slots. "+
				"Aim to utilize all 15 spaces to show breadth.", in.filled),
		})
	}
	if in.clinical < ClinicalTarget {
		items = append(items, FeedbackItem{
			Category: "Clinical Gap",
			Text: fmt.Sprintf("Clinical hours are at %dh. Targeted goal is %dh+. "+
				"Consider scribing or patient intake volunteering.", in.clinical, ClinicalTarget),
		})
	}
	if in.medService < MedServiceTarget {
		items = append(items, FeedbackItem{
			Category: "Med. Service",
			Text: fmt.Sprintf("Medical Volunteering is a core pillar. You are at %dh. "+
				"Aim for %dh+ of altruistic clinical service.", in.medService, MedServiceTarget),
		})
	}
	if in.nonMedService < NonMedTarget {
		items = append(items, FeedbackItem{
			Category: "Non-Med Service",
			Text: fmt.Sprintf("Service beyond medicine is crucial. You have %dh. "+
				"Target %dh+ in non-clinical volunteering to show diverse altruism.", in.nonMedService, NonMedTarget),
		})
	}
	if in.shadowing < ShadowingTarget {
		items = append(items, FeedbackItem{
			Category: "Shadowing",
			Text: fmt.Sprintf("Shadowing is low (%dh). Reach out to specialists to hit the %dh benchmark.",
				in.shadowing, ShadowingTarget),
		})
	}
	if in.leadership < LeadershipTarget {
		items = append(items, FeedbackItem{
			Category: "Leadership",
			Text: fmt.Sprintf("Leadership demonstrates initiative. You currently have %dh. "+
				"Aim for %dh+ in leadership roles.", in.leadership, LeadershipTarget),
		})
	}
	if in.competencies < competencyBenchmark {
		items = append(items, FeedbackItem{
			Category: "Competencies",
			Text:     "Narrative is missing key AAMC pillars. Reflect on 'Teamwork' or 'Resilience' in your current drafts.",
		})
	}
	if in.mmeCount < mmeBenchmark && in.filled >= mmeBenchmark {
		items = append(items, FeedbackItem{
			Category: "Strategy",
			Text:     "Strategic Gap: You haven't designated 3 'Most Meaningful' experiences yet. This is critical for AMCAS.",
		})
	}

	return items
}
