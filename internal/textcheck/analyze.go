// Package textcheck provides local, non-LLM writing analysis for activity
// narratives: weak verbs, admissions clichés, and passive voice.
package textcheck

import (
	"fmt"
	"regexp"
	"sort"
)

// IssueType classifies a writing issue
type IssueType string

// Issue classifications
const (
	IssuePassive  IssueType = "PASSIVE"
	IssueWeakVerb IssueType = "WEAK_VERB"
	IssueCliche   IssueType = "CLICHE"
)

// Issue is one flagged span in the analyzed text
type Issue struct {
	ID         string    `json:"id"`
	Type       IssueType `json:"type"`
	Text       string    `json:"text"`
	Suggestion string    `json:"suggestion"`
	Index      int       `json:"index"`
	Length     int       `json:"length"`
}

type wordRule struct {
	pattern    *regexp.Regexp
	suggestion string
}

func mustWordRule(word, suggestion string) wordRule {
	return wordRule{
		pattern:    regexp.MustCompile(`(?i)\b` + word + `\b`),
		suggestion: suggestion,
	}
}

// Rules are kept in declaration order so repeated analysis of the same text
// yields the same issue list.
var weakVerbRules = []wordRule{
	mustWordRule("helping", "facilitating, assisting, guiding"),
	mustWordRule("helped", "facilitated, assisted, guided"),
	mustWordRule("help", "facilitated, assisted, guided"),
	mustWordRule("watching", "monitoring, analyzing, surveying"),
	mustWordRule("watched", "monitored, analyzed, surveyed"),
	mustWordRule("watch", "monitored, analyzed, surveyed"),
	mustWordRule("observed", "assessed, evaluated, examined"),
	mustWordRule("observe", "assess, evaluate, examine"),
	mustWordRule("looked", "investigated, examined, explored"),
	mustWordRule("look", "investigate, examine, explore"),
	mustWordRule("got", "acquired, obtained, secured"),
	mustWordRule("made", "constructed, designed, formulated"),
	mustWordRule("make", "construct, design, formulate"),
	mustWordRule("did", "executed, conducted, performed"),
	mustWordRule("do", "execute, conduct, perform"),
}

var clicheRules = []wordRule{
	mustWordRule("passionate", "committed, dedicated, enthusiastic"),
	mustWordRule("passion", "deep interest, commitment, dedication"),
	mustWordRule("hard worker", "diligent, persistent, dedicated"),
	mustWordRule("team player", "collaborator, contributor"),
	mustWordRule("outside the box", "innovative, creative, unconventional"),
	mustWordRule("interesting", "compelling, intriguing, significant"),
	mustWordRule("thirst for knowledge", "intellectual curiosity, eagerness to learn"),
	mustWordRule("sponge", "rapid learner, adaptable"),
	mustWordRule("like a family", "close-knit, supportive, cohesive"),
}

// Simple heuristic: was/were followed by a word ending in -ed
var passivePattern = regexp.MustCompile(`(?i)\b(was|were)\s+([a-z]+ed)\b`)

// Analyze scans text for weak verbs, clichés, and passive voice. Issues are
// returned sorted by their position in the text. Spans already claimed by an
// earlier rule are not reported twice.
func Analyze(text string) []Issue {
	if text == "" {
		return nil
	}

	var issues []Issue
	claimed := make(map[int]bool)

	addMatches := func(kind IssueType, idPrefix string, rule wordRule, format string) {
		for _, loc := range rule.pattern.FindAllStringIndex(text, -1) {
			if claimed[loc[0]] {
				continue
			}
			claimed[loc[0]] = true
			issues = append(issues, Issue{
				ID:         fmt.Sprintf("%s-%d", idPrefix, loc[0]),
				Type:       kind,
				Text:       text[loc[0]:loc[1]],
				Suggestion: fmt.Sprintf(format, rule.suggestion),
				Index:      loc[0],
				Length:     loc[1] - loc[0],
			})
		}
	}

	for _, rule := range weakVerbRules {
		addMatches(IssueWeakVerb, "weak", rule, "Try active verbs: %s")
	}
	for _, rule := range clicheRules {
		addMatches(IssueCliche, "cliche", rule, "Avoid clichés. Try: %s")
	}
	for _, loc := range passivePattern.FindAllStringIndex(text, -1) {
		issues = append(issues, Issue{
			ID:         fmt.Sprintf("passive-%d", loc[0]),
			Type:       IssuePassive,
			Text:       text[loc[0]:loc[1]],
			Suggestion: "Passive voice detected. Rewrite to make the subject perform the action.",
			Index:      loc[0],
			Length:     loc[1] - loc[0],
		})
	}

	sort.SliceStable(issues, func(i, j int) bool {
		return issues[i].Index < issues[j].Index
	})
	return issues
}
