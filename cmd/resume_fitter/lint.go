package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-fitter/internal/content"
	"github.com/jonathan/resume-fitter/internal/observability"
	"github.com/jonathan/resume-fitter/internal/pipeline"
)

var lintCommand = &cobra.Command{
	Use:   "lint <input>",
	Short: "Run the wording checks over resume content",
	Long: `Loads a resume source file (.json, .md or .txt) and reports advisory
wording findings: bullet length, strong verb openings, quantification
ratio, repeated phrases and bullet count. Lint findings never fail the
command.`,
	Args: cobra.ExactArgs(1),
	RunE: runLintCmd,
}

var lintJSON bool

func init() {
	lintCommand.Flags().BoolVar(&lintJSON, "json", false, "Print lint results as JSON")

	rootCmd.AddCommand(lintCommand)
}

func runLintCmd(cmd *cobra.Command, args []string) error {
	record, err := pipeline.LoadRecord(args[0])
	if err != nil {
		return err
	}

	results := content.Lint(record)

	if lintJSON {
		data, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode lint results: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	observability.NewPrinter(cmd.OutOrStdout()).PrintLintResults(results)
	return nil
}
