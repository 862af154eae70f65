// Package main provides the resume_fitter CLI: render, auto-fit, check
// and lint one-page resume PDFs.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_fitter",
	Short: "One-page resume PDF generator with automatic layout fitting",
	Long:  "resume_fitter renders structured resume content to a one-page A4 PDF, searches layout candidates until the page fits, and verifies the result with an independent quality checker.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
