package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-fitter/internal/pipeline"
)

var normalizeCommand = &cobra.Command{
	Use:   "normalize <input>",
	Short: "Convert a resume source file into structured JSON",
	Long: `Parses a markdown or plain-text resume into the structured JSON form
used by render. Missing required pieces are filled with visible
placeholders so they can be spotted and completed.`,
	Args: cobra.ExactArgs(1),
	RunE: runNormalizeCmd,
}

var normalizeOutput string

func init() {
	normalizeCommand.Flags().StringVarP(&normalizeOutput, "output", "o", "", "Write JSON to this file instead of stdout")

	rootCmd.AddCommand(normalizeCommand)
}

func runNormalizeCmd(cmd *cobra.Command, args []string) error {
	record, err := pipeline.LoadRecord(args[0])
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode record: %w", err)
	}

	if normalizeOutput != "" {
		if err := os.WriteFile(normalizeOutput, append(data, '\n'), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", normalizeOutput, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", normalizeOutput)
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
