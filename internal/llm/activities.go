package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/activity-planner/internal/activity"
	"github.com/jonathan/activity-planner/internal/prompts"
	"github.com/jonathan/activity-planner/internal/schemas"
	"github.com/jonathan/activity-planner/internal/types"
)

// ErrNoActivities is returned by AnalyzeThemes when no record has a
// description to analyze.
var ErrNoActivities = errors.New("no activities with descriptions to analyze")

// ErrNoDrafts is returned by ParseResume when the model extracts no
// activity entries from the resume text.
var ErrNoDrafts = errors.New("no activities found in resume")

// Service exposes the activity AI operations over an LLM client
type Service struct {
	client Client
}

// NewService creates a Service backed by the given client
func NewService(client Client) *Service {
	return &Service{client: client}
}

// Critique returns structured feedback on a draft description without
// rewriting it. The limit is the character budget of the target
// application system.
func (s *Service) Critique(ctx context.Context, draft string, limit int) (*types.DraftAnalysis, error) {
	if strings.TrimSpace(draft) == "" {
		return nil, fmt.Errorf("draft is empty")
	}

	noteKey := "draft_analysis_within_limit"
	if len(draft) > limit {
		noteKey = "draft_analysis_over_limit"
	}
	note, err := prompts.Render(noteKey, map[string]string{
		"Length": strconv.Itoa(len(draft)),
		"Limit":  strconv.Itoa(limit),
	})
	if err != nil {
		return nil, err
	}

	prompt, err := prompts.Render("draft_analysis", map[string]string{
		"Draft":            draft,
		"LimitInstruction": note,
	})
	if err != nil {
		return nil, err
	}

	raw, err := s.client.GenerateJSON(ctx, prompt, TierStandard)
	if err != nil {
		return nil, fmt.Errorf("draft analysis failed: %w", err)
	}
	if err := schemas.Validate("draft_analysis", []byte(raw)); err != nil {
		return nil, err
	}

	var resp struct {
		GeneralFeedback       string   `json:"generalFeedback"`
		Keepers               []string `json:"keepers"`
		Trimmers              []string `json:"trimmers"`
		SuggestedCompetencies []string `json:"suggestedCompetencies"`
	}
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		return nil, fmt.Errorf("failed to parse draft analysis: %w", err)
	}

	return &types.DraftAnalysis{
		GeneralFeedback:       resp.GeneralFeedback,
		Keepers:               resp.Keepers,
		Trimmers:              resp.Trimmers,
		SuggestedCompetencies: filterCompetencies(resp.SuggestedCompetencies),
	}, nil
}

// Rewrite returns alternative phrasings for a highlighted sentence
func (s *Service) Rewrite(ctx context.Context, sentence string, style types.RewriteStyle) ([]string, error) {
	if strings.TrimSpace(sentence) == "" {
		return nil, fmt.Errorf("sentence is empty")
	}

	instructionKey := map[types.RewriteStyle]string{
		types.RewriteConcise:    "rewrite_concise",
		types.RewriteImpact:     "rewrite_impact",
		types.RewriteReflection: "rewrite_reflection",
	}[style]
	if instructionKey == "" {
		instructionKey = "rewrite_concise"
	}
	instruction, err := prompts.Get(instructionKey)
	if err != nil {
		return nil, err
	}

	prompt, err := prompts.Render("rewrite", map[string]string{
		"Instruction": instruction,
		"Sentence":    sentence,
	})
	if err != nil {
		return nil, err
	}

	raw, err := s.client.GenerateJSON(ctx, prompt, TierLite)
	if err != nil {
		return nil, fmt.Errorf("rewrite failed: %w", err)
	}
	if err := schemas.Validate("rewrite", []byte(raw)); err != nil {
		return nil, err
	}

	var resp struct {
		Suggestions []string `json:"suggestions"`
	}
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		return nil, fmt.Errorf("failed to parse rewrite suggestions: %w", err)
	}
	return resp.Suggestions, nil
}

// SynthesizeEssay combines the base description with the applicant's
// action and result notes into a STAR-framework essay under the most
// meaningful essay limit.
func (s *Service) SynthesizeEssay(ctx context.Context, description, action, result string) (string, error) {
	if strings.TrimSpace(description) == "" {
		return "", fmt.Errorf("base description is empty")
	}

	prompt, err := prompts.Render("mme_synthesis", map[string]string{
		"Limit":       strconv.Itoa(activity.MMELimit),
		"Description": description,
		"Action":      action,
		"Result":      result,
	})
	if err != nil {
		return "", err
	}

	essay, err := s.client.GenerateContent(ctx, prompt, TierAdvanced)
	if err != nil {
		return "", fmt.Errorf("essay synthesis failed: %w", err)
	}
	return strings.TrimSpace(essay), nil
}

// AnalyzeThemes reports which AAMC competencies the filled activities
// demonstrate most strongly across the whole set.
func (s *Service) AnalyzeThemes(ctx context.Context, records []types.Activity) (*types.ThemeAnalysis, error) {
	var lines []string
	for _, r := range records {
		if !r.Filled() || strings.TrimSpace(r.Description) == "" {
			continue
		}
		lines = append(lines, fmt.Sprintf("Activity ID %d: %s", r.ID, r.Description))
	}
	if len(lines) == 0 {
		return nil, ErrNoActivities
	}

	prompt, err := prompts.Render("theme_analysis", map[string]string{
		"Activities": strings.Join(lines, "\n\n"),
	})
	if err != nil {
		return nil, err
	}

	raw, err := s.client.GenerateJSON(ctx, prompt, TierAdvanced)
	if err != nil {
		return nil, fmt.Errorf("theme analysis failed: %w", err)
	}
	if err := schemas.Validate("theme_analysis", []byte(raw)); err != nil {
		return nil, err
	}

	var resp struct {
		OverallSummary string `json:"overallSummary"`
		Analysis       []struct {
			Competency         string  `json:"competency"`
			RelatedActivityIDs []int64 `json:"relatedActivityIds"`
			Summary            string  `json:"summary"`
		} `json:"analysis"`
	}
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		return nil, fmt.Errorf("failed to parse theme analysis: %w", err)
	}

	analysis := &types.ThemeAnalysis{OverallSummary: resp.OverallSummary}
	for _, theme := range resp.Analysis {
		analysis.Analysis = append(analysis.Analysis, types.CompetencyTheme{
			Competency:         theme.Competency,
			RelatedActivityIDs: theme.RelatedActivityIDs,
			Summary:            theme.Summary,
		})
	}
	return analysis, nil
}

// ParseResume extracts activity drafts from free resume text. Entries
// whose experience type is not recognized for the application system
// come back as "Unclassified".
func (s *Service) ParseResume(ctx context.Context, text string, app types.ApplicationType) ([]types.ActivityDraft, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("resume text is empty")
	}

	prompt, err := prompts.Render("parse_resume", map[string]string{
		"ExperienceTypes":  strings.Join(activity.ExperienceTypes(app), ", "),
		"DescriptionLimit": strconv.Itoa(activity.DescriptionLimit(app)),
		"Text":             text,
	})
	if err != nil {
		return nil, err
	}

	raw, err := s.client.GenerateJSON(ctx, prompt, TierStandard)
	if err != nil {
		return nil, fmt.Errorf("resume parsing failed: %w", err)
	}
	if err := schemas.Validate("parse_resume", []byte(raw)); err != nil {
		return nil, err
	}

	var resp struct {
		Activities []struct {
			Title          string `json:"title"`
			Organization   string `json:"organization"`
			ExperienceType string `json:"experienceType"`
			StartDateMonth string `json:"startDateMonth"`
			StartDateYear  string `json:"startDateYear"`
			EndDateMonth   string `json:"endDateMonth"`
			EndDateYear    string `json:"endDateYear"`
			Description    string `json:"description"`
			Hours          string `json:"hours"`
		} `json:"activities"`
	}
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		return nil, fmt.Errorf("failed to parse resume extraction: %w", err)
	}

	if len(resp.Activities) == 0 {
		return nil, ErrNoDrafts
	}

	valid := make(map[string]bool)
	for _, t := range activity.ExperienceTypes(app) {
		valid[t] = true
	}

	drafts := make([]types.ActivityDraft, 0, len(resp.Activities))
	for _, a := range resp.Activities {
		expType := a.ExperienceType
		if !valid[expType] {
			expType = "Unclassified"
		}
		desc := truncateOnRune(a.Description, activity.DescriptionLimit(app))
		drafts = append(drafts, types.ActivityDraft{
			Title:          a.Title,
			Organization:   a.Organization,
			ExperienceType: expType,
			StartMonth:     a.StartDateMonth,
			StartYear:      a.StartDateYear,
			EndMonth:       a.EndDateMonth,
			EndYear:        a.EndDateYear,
			Description:    desc,
			Hours:          a.Hours,
		})
	}
	return drafts, nil
}

// truncateOnRune cuts s to at most limit bytes without splitting a
// multi-byte rune.
func truncateOnRune(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	cut := limit
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}

// filterCompetencies keeps only recognized AAMC core competencies,
// preserving order.
func filterCompetencies(suggested []string) []string {
	var out []string
	for _, c := range suggested {
		if activity.IsCoreCompetency(c) {
			out = append(out, c)
		}
	}
	return out
}
