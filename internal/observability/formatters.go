// Package observability provides formatted, human-readable CLI output for score reports.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/ats-scorer/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 72
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 10
)

// Printer handles formatted output for the CLI
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	inner := boxWidth - 4
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", inner, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		for _, wrapped := range wrap(line, inner) {
			fmt.Fprintf(p.out, "│ %-*s │\n", inner, wrapped)
		}
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintReport outputs the score, grade, section breakdown and feedback.
func (p *Printer) PrintReport(report *types.ScoreReport) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Score:  %.1f / %.0f\n", report.Score, report.MaxScore))
	sb.WriteString(fmt.Sprintf("Grade:  %s\n\n", report.Grade))

	sb.WriteString("Sections:\n")
	for _, section := range types.Sections {
		entry, ok := report.SectionBreakdown[section]
		if !ok {
			continue
		}
		sb.WriteString(fmt.Sprintf("  %-16s %2d / %-2d %s %5.1f%%\n",
			section, entry.Score, entry.MaxScore, bar(entry.Percentage, 20), entry.Percentage))
	}

	if len(report.Feedback) > 0 {
		sb.WriteString("\nFeedback:\n")
		for _, line := range report.Feedback {
			sb.WriteString("  " + line + "\n")
		}
	}

	p.printBox("ATS SCORE", strings.TrimSuffix(sb.String(), "\n"))

	if report.HasAIFeedback() {
		p.printBox("AI FEEDBACK", *report.AIFeedback)
	}
}

// PrintSuggestions outputs recommended keywords.
func (p *Printer) PrintSuggestions(suggestions []string) {
	if len(suggestions) == 0 {
		p.printBox("KEYWORD SUGGESTIONS", "No missing keywords found")
		return
	}

	var sb strings.Builder
	count := min(len(suggestions), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("• %s\n", suggestions[i]))
	}
	if len(suggestions) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more\n", len(suggestions)-maxItemsToShow))
	}

	p.printBox("KEYWORD SUGGESTIONS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintFormatting outputs the formatting check.
func (p *Printer) PrintFormatting(check types.FormattingCheck) {
	if !check.HasIssues {
		p.printBox("FORMATTING CHECK", "No formatting issues found")
		return
	}

	var sb strings.Builder
	for _, issue := range check.Issues {
		sb.WriteString(fmt.Sprintf("• %s\n", issue))
	}
	p.printBox("FORMATTING CHECK", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintWeights outputs the weight profile of each role as percentages.
func (p *Printer) PrintWeights(roles ...types.RoleLevel) {
	if len(roles) == 0 {
		roles = types.RoleLevels()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%-16s", "section"))
	for _, role := range roles {
		sb.WriteString(fmt.Sprintf("%8s", role))
	}
	sb.WriteString("\n")

	profiles := make([]types.WeightProfile, len(roles))
	for i, role := range roles {
		profiles[i] = types.WeightsFor(role)
	}

	for _, section := range types.Sections {
		sb.WriteString(fmt.Sprintf("%-16s", section))
		for _, profile := range profiles {
			sb.WriteString(fmt.Sprintf("%7.0f%%", profile[section]*100))
		}
		sb.WriteString("\n")
	}

	p.printBox("WEIGHT PROFILES", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintBatchSummary outputs one line per scored resume.
func (p *Printer) PrintBatchSummary(result *types.BatchResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Run:     %s\n", result.RunID))
	sb.WriteString(fmt.Sprintf("Resumes: %d (%d failed)\n\n", len(result.Items), result.Failed()))

	for _, item := range result.Items {
		if item.Error != "" {
			sb.WriteString(fmt.Sprintf("✗ %s: %s\n", item.ID, item.Error))
			continue
		}
		sb.WriteString(fmt.Sprintf("✓ %s: %.1f (%s)\n", item.ID, item.Report.Score, item.Report.Grade))
	}

	p.printBox("BATCH RESULTS", strings.TrimSuffix(sb.String(), "\n"))
}

// bar renders percentage as a fixed-width progress bar.
func bar(percentage float64, width int) string {
	filled := int(percentage / 100 * float64(width))
	filled = max(0, min(width, filled))
	return "[" + strings.Repeat("█", filled) + strings.Repeat("·", width-filled) + "]"
}

// wrap splits line into chunks of at most width runes, breaking on spaces where possible.
func wrap(line string, width int) []string {
	if utf8.RuneCountInString(line) <= width {
		return []string{line}
	}

	indent := line[:len(line)-len(strings.TrimLeft(line, " "))]
	var out []string
	current := ""
	for _, word := range strings.Fields(line) {
		if current == "" {
			current = indent + word
			continue
		}
		candidate := current + " " + word
		if utf8.RuneCountInString(candidate) > width {
			out = append(out, current)
			current = indent + "  " + word
			continue
		}
		current = candidate
	}
	if current != "" {
		out = append(out, current)
	}

	for i, chunk := range out {
		if runes := []rune(chunk); len(runes) > width {
			out[i] = string(runes[:width-3]) + "..."
		}
	}
	return out
}
