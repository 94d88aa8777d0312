package types

// RewriteStyle selects the tone of AI rewrite suggestions
type RewriteStyle string

// Rewrite styles supported by the rewrite operation
const (
	RewriteConcise    RewriteStyle = "CONCISE"
	RewriteImpact     RewriteStyle = "IMPACT"
	RewriteReflection RewriteStyle = "REFLECTION"
)

// DraftAnalysis is the structured critique of one activity description
type DraftAnalysis struct {
	GeneralFeedback       string   `json:"general_feedback"`
	Keepers               []string `json:"keepers"`
	Trimmers              []string `json:"trimmers"`
	SuggestedCompetencies []string `json:"suggested_competencies"`
}

// CompetencyTheme maps one AAMC competency to the activities that demonstrate it
type CompetencyTheme struct {
	Competency         string  `json:"competency"`
	RelatedActivityIDs []int64 `json:"related_activity_ids"`
	Summary            string  `json:"summary"`
}

// ThemeAnalysis is the cross-activity competency coverage report
type ThemeAnalysis struct {
	OverallSummary string            `json:"overall_summary"`
	Analysis       []CompetencyTheme `json:"analysis"`
}

// ActivityDraft is a partial activity extracted from a resume. Contact
// fields are deliberately absent; the user supplies those during editing.
type ActivityDraft struct {
	Title          string `json:"title"`
	Organization   string `json:"organization"`
	ExperienceType string `json:"experience_type"`
	StartMonth     string `json:"start_date_month"`
	StartYear      string `json:"start_date_year"`
	EndMonth       string `json:"end_date_month"`
	EndYear        string `json:"end_date_year"`
	Description    string `json:"description"`
	Hours          string `json:"hours"`
}
