// Package observability provides console output and logging for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jonathan/feedback-aggregator/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
	// dateLayout is used wherever a report date is shown to the user
	dateLayout = "2006-01-02"
)

var (
	successColor = lipgloss.Color("#8BC34A")
	noticeColor  = lipgloss.Color("#FFC107")
	errorColor   = lipgloss.Color("#e53935")
)

// Printer handles human-facing output: per-report summaries, notices and verbose boxes.
type Printer struct {
	out     io.Writer
	success lipgloss.Style
	notice  lipgloss.Style
	failure lipgloss.Style
}

// NewPrinter creates a new Printer that writes to the given writer.
// Colours are only emitted when the writer is a terminal that supports them.
func NewPrinter(out io.Writer) *Printer {
	r := lipgloss.NewRenderer(out)
	return &Printer{
		out:     out,
		success: r.NewStyle().Foreground(successColor),
		notice:  r.NewStyle().Foreground(noticeColor),
		failure: r.NewStyle().Foreground(errorColor).Bold(true),
	}
}

// printBox prints a formatted box with a title and content. The box is at
// least boxWidth wide and grows to fit the widest line.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	lines := strings.Split(content, "\n")

	inner := boxWidth - 4
	for _, line := range append([]string{title}, lines...) {
		inner = max(inner, lipgloss.Width(line))
	}

	border := strings.Repeat("─", inner+2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %s │\n", padRight(title, inner))
	fmt.Fprintf(p.out, "├%s┤\n", border)
	for _, line := range lines {
		fmt.Fprintf(p.out, "│ %s │\n", padRight(line, inner))
	}
	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// padRight pads s with spaces to width terminal cells.
func padRight(s string, width int) string {
	return s + strings.Repeat(" ", max(0, width-lipgloss.Width(s)))
}

// PrintReport outputs the processed/total summary of one written report.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintReport(result *types.ReportResult) {
	if result == nil {
		return
	}
	msg := fmt.Sprintf("Processed %d/%d '%s' survey feedback files for %s.",
		result.Passed, result.Total, result.Category, result.Earliest.Format(dateLayout))
	fmt.Fprintln(p.out, p.success.Render(msg))
}

// PrintCategorySkipped outputs the notice for a category without valid records.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintCategorySkipped(category types.SurveyCategory) {
	msg := fmt.Sprintf("No valid '%s' survey feedback data found. Skipping ...", category)
	fmt.Fprintln(p.out, p.notice.Render(msg))
}

// PrintError outputs a fatal error message.
//
//nolint:errcheck // writing to stderr; errors are not recoverable
func (p *Printer) PrintError(err error) {
	if err == nil {
		return
	}
	fmt.Fprintln(p.out, p.failure.Render(fmt.Sprintf("Error: %v", err)))
}

// PrintRunSummary outputs a box describing a finished run.
func (p *Printer) PrintRunSummary(summary *types.RunSummary) {
	if summary == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Run:      %s\n", summary.RunID))
	sb.WriteString(fmt.Sprintf("Reports:  %d\n", len(summary.Reports)))
	sb.WriteString(fmt.Sprintf("Skipped:  %d files\n", len(summary.Skipped)))

	if len(summary.Reports) > 0 {
		sb.WriteString("\n")
		for _, r := range summary.Reports {
			sb.WriteString(fmt.Sprintf("• %s  %d/%d rows\n", r.Category, r.Passed, r.Total))
		}
	}

	if len(summary.Skipped) > 0 {
		sb.WriteString("\nSkipped files:\n")
		count := min(len(summary.Skipped), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  ⚠ %s\n", summary.Skipped[i].Filename))
		}
		if len(summary.Skipped) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(summary.Skipped)-maxItemsToShow))
		}
	}

	p.printBox("AGGREGATION SUMMARY", strings.TrimSuffix(sb.String(), "\n"))
}

// PlannedReport is one entry of a dry-run scan.
type PlannedReport struct {
	Category types.SurveyCategory
	Filename string
	Records  int
}

// PrintScanPlan outputs the classification outcome and the reports a run would write.
func (p *Printer) PrintScanPlan(planned []PlannedReport, skipped []types.SkippedFile) {
	var sb strings.Builder

	if len(planned) == 0 {
		sb.WriteString("No reports would be written.\n")
	}
	for _, r := range planned {
		sb.WriteString(fmt.Sprintf("%s: %d records\n", r.Category, r.Records))
		sb.WriteString(fmt.Sprintf("  → %s\n", r.Filename))
	}

	if len(skipped) > 0 {
		sb.WriteString(fmt.Sprintf("\nSkipped %d files:\n", len(skipped)))
		count := min(len(skipped), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  ⚠ %s\n", skipped[i].Filename))
		}
		if len(skipped) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(skipped)-maxItemsToShow))
		}
	}

	p.printBox("SCAN PLAN", strings.TrimSuffix(sb.String(), "\n"))
}
