// Package report provides formatted terminal output for the CLI score
// and import commands.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/activity-planner/internal/scoring"
	"github.com/jonathan/activity-planner/internal/types"
)

const (
	// boxWidth is the width for formatted output boxes
	boxWidth = 60
	// maxDraftsToShow caps the drafts listed in an import report
	maxDraftsToShow = 10
)

// Printer handles formatted output
type Printer struct {
	out io.Writer
}

// NewPrinter creates a Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintReadiness outputs the readiness score, hour pools, and feedback.
func (p *Printer) PrintReadiness(r scoring.Readiness) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Score:  %d / 100  (%s)\n", r.Score, r.Level))
	sb.WriteString("\n")
	sb.WriteString("Hours:\n")
	for _, stat := range []scoring.Stat{
		r.Stats.Clinical, r.Stats.MedicalService, r.Stats.NonMedicalService,
		r.Stats.Shadowing, r.Stats.Research, r.Stats.Leadership, r.Stats.Competencies,
	} {
		sb.WriteString(fmt.Sprintf("  %-22s %d / %d\n", stat.Label+":", stat.Value, stat.Target))
	}

	if len(r.Feedback) > 0 {
		sb.WriteString("\nNext steps:\n")
		for _, item := range r.Feedback {
			sb.WriteString(fmt.Sprintf("  • %s\n", item.Text))
		}
	}

	p.printBox("APPLICATION READINESS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRadar outputs the competency radar and the best-fit archetype
// with its remaining deficits.
func (p *Printer) PrintRadar(radar scoring.Radar, best scoring.Archetype, deficits []scoring.Deficit) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Inquiry:   %s %d\n", bar(radar.Inquiry), radar.Inquiry))
	sb.WriteString(fmt.Sprintf("Service:   %s %d\n", bar(radar.Service), radar.Service))
	sb.WriteString(fmt.Sprintf("Teamwork:  %s %d\n", bar(radar.Teamwork), radar.Teamwork))
	sb.WriteString(fmt.Sprintf("Clinical:  %s %d\n", bar(radar.Clinical), radar.Clinical))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Best fit:  %s (%d%%)\n", best.Name, scoring.FitPercent(radar, best)))

	if len(deficits) > 0 {
		sb.WriteString("\nGaps:\n")
		for _, d := range deficits {
			sb.WriteString(fmt.Sprintf("  • %s (-%d): %s\n", d.Dimension, d.Gap, d.Suggestion))
		}
	}

	p.printBox("COMPETENCY RADAR", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintDrafts outputs activity drafts extracted from a resume.
func (p *Printer) PrintDrafts(drafts []types.ActivityDraft) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Extracted %d activities\n\n", len(drafts)))

	count := len(drafts)
	if count > maxDraftsToShow {
		count = maxDraftsToShow
	}
	for i := 0; i < count; i++ {
		d := drafts[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, d.Title))
		sb.WriteString(fmt.Sprintf("    Type: %s\n", d.ExperienceType))
		if d.Organization != "" {
			sb.WriteString(fmt.Sprintf("    Org:  %s\n", d.Organization))
		}
		if d.StartMonth != "" || d.StartYear != "" {
			sb.WriteString(fmt.Sprintf("    When: %s %s - %s %s\n", d.StartMonth, d.StartYear, d.EndMonth, d.EndYear))
		}
	}
	if len(drafts) > maxDraftsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more\n", len(drafts)-maxDraftsToShow))
	}

	p.printBox("RESUME IMPORT", strings.TrimSuffix(sb.String(), "\n"))
}

// bar renders a 0-10 value as a fixed-width gauge
func bar(v int) string {
	if v < 0 {
		v = 0
	}
	if v > 10 {
		v = 10
	}
	return strings.Repeat("█", v) + strings.Repeat("░", 10-v)
}
