package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-fitter/internal/observability"
	"github.com/jonathan/resume-fitter/internal/quality"
)

var checkCommand = &cobra.Command{
	Use:   "check <pdf>",
	Short: "Run the quality checks against an existing PDF",
	Long: `Verifies a rendered resume PDF independently of how it was produced:
page count and size, extractable text, margins, placeholder and HTML
leaks, section completeness, contact info and keyword coverage.

Exits non-zero when the verdict is not PASS.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheckCmd,
}

var (
	checkKeywords []string
	checkJSON     bool
)

func init() {
	checkCommand.Flags().StringSliceVar(&checkKeywords, "keywords", nil, "Keywords that must appear in the rendered text")
	checkCommand.Flags().BoolVar(&checkJSON, "json", false, "Print the full report as JSON")

	rootCmd.AddCommand(checkCommand)
}

func runCheckCmd(cmd *cobra.Command, args []string) error {
	checker := quality.NewChecker(quality.DefaultThresholds())
	report, err := checker.Check(args[0], quality.Options{Keywords: checkKeywords})
	if err != nil {
		return fmt.Errorf("quality check failed: %w", err)
	}

	if checkJSON {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
	} else {
		observability.NewPrinter(cmd.OutOrStdout()).PrintQualityReport(report)
	}

	if report.Verdict != quality.VerdictPass {
		// Non-zero exit without cobra re-printing usage.
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		fmt.Fprintf(os.Stderr, "verdict: %s\n", report.Verdict)
		return fmt.Errorf("quality verdict: %s", report.Verdict)
	}
	return nil
}
