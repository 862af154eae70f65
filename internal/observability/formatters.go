// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-fitter/internal/autofit"
	"github.com/jonathan/resume-fitter/internal/content"
	"github.com/jonathan/resume-fitter/internal/layout"
	"github.com/jonathan/resume-fitter/internal/quality"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
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
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintQualityReport outputs the per-check results and verdict for one
// rendered PDF.
func (p *Printer) PrintQualityReport(report *quality.Report) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Verdict: %s\n\n", report.Verdict))

	for _, check := range report.Checks {
		mark := "✓"
		if !check.Passed {
			mark = "✗"
		}
		sb.WriteString(fmt.Sprintf("%s %s\n", mark, check.Name))
	}

	layoutFixable, contentOnly := report.PartitionFailed()
	if len(layoutFixable) > 0 {
		sb.WriteString(fmt.Sprintf("\nLayout-fixable: %s\n", strings.Join(layoutFixable, ", ")))
	}
	if len(contentOnly) > 0 {
		sb.WriteString(fmt.Sprintf("Content-only:   %s\n", strings.Join(contentOnly, ", ")))
	}

	p.printBox("PDF QUALITY REPORT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintLintResults outputs the wording lint findings.
func (p *Printer) PrintLintResults(results []content.LintResult) {
	if len(results) == 0 {
		return
	}

	var sb strings.Builder
	warns := 0
	for _, result := range results {
		if result.Status == content.LintWarn {
			warns++
		}
	}
	sb.WriteString(fmt.Sprintf("%d checks, %d warnings:\n\n", len(results), warns))

	for i, result := range results {
		mark := "✓"
		if result.Status == content.LintWarn {
			mark = "⚠"
		}
		sb.WriteString(fmt.Sprintf("%s %s\n", mark, result.Name))
		detail := result.Detail
		if len(detail) > 50 {
			detail = detail[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("  %s\n", detail))
		if i < len(results)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("CONTENT LINT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintLayout outputs the effective layout parameters.
func (p *Printer) PrintLayout(settings layout.Settings) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Font size scale:       %.2f\n", settings.EffectiveFontSizeScale()))
	sb.WriteString(fmt.Sprintf("Line height scale:     %.2f\n", settings.EffectiveLineHeightScale()))
	sb.WriteString(fmt.Sprintf("Section spacing scale: %.2f\n", settings.EffectiveSectionSpacingScale()))
	sb.WriteString(fmt.Sprintf("Item spacing scale:    %.2f\n", settings.EffectiveItemSpacingScale()))
	sb.WriteString(fmt.Sprintf("Margins:               %.1fmm / %.1fmm / %.2fin\n",
		settings.MarginTopMm, settings.MarginBottomMm, settings.MarginSideInch))
	sb.WriteString(fmt.Sprintf("Compact mode:          %v", settings.CompactMode))

	p.printBox("LAYOUT PARAMETERS", sb.String())
}

// PrintAutoFitResult outputs the selected trial of an auto-fit run.
func (p *Printer) PrintAutoFitResult(result *autofit.Result) {
	if result == nil || result.BestReport == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Trials run: %d\n", result.TrialsRun))
	sb.WriteString(fmt.Sprintf("Verdict:    %s\n", result.BestReport.Verdict))
	sb.WriteString(fmt.Sprintf("Distance:   %.3f\n", autofit.CompressionDistance(result.BestLayout)))

	failed := result.BestReport.FailedChecks()
	if len(failed) > 0 {
		sb.WriteString("\nUnresolved checks:\n")
		count := min(len(failed), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", failed[i]))
		}
		if len(failed) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(failed)-maxItemsToShow))
		}
	}

	p.printBox("AUTO-FIT RESULT", strings.TrimSuffix(sb.String(), "\n"))
}
