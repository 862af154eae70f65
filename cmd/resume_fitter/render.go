package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-fitter/internal/config"
	"github.com/jonathan/resume-fitter/internal/layout"
	"github.com/jonathan/resume-fitter/internal/logger"
	"github.com/jonathan/resume-fitter/internal/pipeline"
	"github.com/jonathan/resume-fitter/internal/quality"
	"github.com/jonathan/resume-fitter/internal/render"
)

var renderCommand = &cobra.Command{
	Use:   "render",
	Short: "Render a resume to a one-page A4 PDF",
	Long: `Loads the resume source (.json, .md or .txt), optionally searches layout
candidates with --auto-fit until the page fits, renders the final PDF and
verifies it with the quality checker.

Configuration can be loaded from a JSON file using --config. Command-line
arguments override config file values. Layout scale flags left unset defer
to compact-mode defaults, so a partial preference still steers the search.`,
	RunE: runRenderCmd,
}

var (
	renderConfigPath string
	renderInput      string
	renderOutputDir  string
	renderOutputFile string
	renderKeywords   []string

	renderFontScale    float64
	renderLineScale    float64
	renderSectionScale float64
	renderItemScale    float64
	renderMarginTop    float64
	renderMarginBottom float64
	renderMarginSide   float64
	renderCompact      bool

	renderAutoFit   bool
	renderMaxTrials int

	renderFontRegular string
	renderFontBold    string

	renderVerbose  bool
	renderJSONLogs bool
	renderDebug    bool
)

func init() {
	// Config file flag (processed first)
	renderCommand.Flags().StringVar(&renderConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	renderCommand.Flags().StringVarP(&renderInput, "input", "i", "", "Path to resume source file (.json, .md or .txt)")
	renderCommand.Flags().StringVarP(&renderOutputDir, "output-dir", "o", "", "Directory for the final PDF")
	renderCommand.Flags().StringVar(&renderOutputFile, "output-file", "", "Output file name (bare name, no path components)")
	renderCommand.Flags().StringSliceVar(&renderKeywords, "keywords", nil, "Keywords that must appear in the rendered text")

	renderCommand.Flags().Float64Var(&renderFontScale, "font-scale", 0, "Font size scale (unset defers to compact-mode default)")
	renderCommand.Flags().Float64Var(&renderLineScale, "line-scale", 0, "Line height scale (unset defers to compact-mode default)")
	renderCommand.Flags().Float64Var(&renderSectionScale, "section-scale", 0, "Section spacing scale (unset defers to compact-mode default)")
	renderCommand.Flags().Float64Var(&renderItemScale, "item-scale", 0, "Item spacing scale (unset defers to compact-mode default)")
	renderCommand.Flags().Float64Var(&renderMarginTop, "margin-top", 0, "Top margin in mm (unset uses the template default)")
	renderCommand.Flags().Float64Var(&renderMarginBottom, "margin-bottom", 0, "Bottom margin in mm (unset uses the template default)")
	renderCommand.Flags().Float64Var(&renderMarginSide, "margin-side", 0, "Side margins in inches (unset uses the template default)")
	renderCommand.Flags().BoolVar(&renderCompact, "compact", false, "Enable compact mode defaults for unset scales")

	renderCommand.Flags().BoolVar(&renderAutoFit, "auto-fit", false, "Search layout candidates until the page fits")
	renderCommand.Flags().IntVar(&renderMaxTrials, "auto-fit-max-trials", 0, "Trial budget for --auto-fit (default 12)")

	renderCommand.Flags().StringVar(&renderFontRegular, "font-regular", "", "Optional TTF file for the regular face")
	renderCommand.Flags().StringVar(&renderFontBold, "font-bold", "", "Optional TTF file for the bold face")

	renderCommand.Flags().BoolVarP(&renderVerbose, "verbose", "v", false, "Print detailed progress information")
	renderCommand.Flags().BoolVar(&renderJSONLogs, "json-logs", false, "Emit logs as JSON")
	renderCommand.Flags().BoolVar(&renderDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(renderCommand)
}

func runRenderCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := loadRenderConfig(cmd)
	if err != nil {
		return err
	}

	if cfg.Input == "" {
		return fmt.Errorf("--input is required (via flag or config)")
	}

	log, err := logger.New(renderJSONLogs, renderDebug)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	opts := pipeline.RunOptions{
		InputPath:      cfg.Input,
		OutputDir:      cfg.OutputDir,
		OutputFileName: cfg.OutputFile,
		Keywords:       cfg.Keywords,
		Hint:           layoutHint(&cfg),
		AutoFit:        cfg.AutoFit,
		MaxTrials:      cfg.MaxTrials,
		Fonts: render.Fonts{
			Family:      "Custom",
			RegularFile: cfg.FontRegular,
			BoldFile:    cfg.FontBold,
		},
		Thresholds: quality.DefaultThresholds(),
		Verbose:    cfg.Verbose,
		Logger:     log,
	}

	result, err := pipeline.Run(ctx, opts)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Generated: %s (verdict: %s)\n", result.OutputPath, result.Report.Verdict)
	if result.Report.Verdict != quality.VerdictPass {
		layoutFixable, contentOnly := result.Report.PartitionFailed()
		if len(layoutFixable) > 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "Unresolved layout checks:  %v (try more --auto-fit-max-trials)\n", layoutFixable)
		}
		if len(contentOnly) > 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "Unresolved content checks: %v (fix the source content)\n", contentOnly)
		}
	}
	return nil
}

// loadRenderConfig merges the config file, explicitly set CLI flags and
// built-in defaults, in increasing priority of: defaults < config < flags.
func loadRenderConfig(cmd *cobra.Command) (config.Config, error) {
	var cfg config.Config
	if renderConfigPath != "" {
		loadedCfg, err := config.LoadConfig(renderConfigPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		if err := loadedCfg.Validate(); err != nil {
			return cfg, err
		}
		cfg = *loadedCfg
		if renderVerbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", renderConfigPath)
		}
	}

	// Apply CLI overrides only for flags that were explicitly set.
	if cmd.Flags().Changed("input") {
		cfg.Input = renderInput
	}
	if cmd.Flags().Changed("output-dir") {
		cfg.OutputDir = renderOutputDir
	}
	if cmd.Flags().Changed("output-file") {
		cfg.OutputFile = renderOutputFile
	}
	if cmd.Flags().Changed("keywords") {
		cfg.Keywords = renderKeywords
	}
	if cmd.Flags().Changed("font-scale") {
		cfg.FontSizeScale = renderFontScale
	}
	if cmd.Flags().Changed("line-scale") {
		cfg.LineHeightScale = renderLineScale
	}
	if cmd.Flags().Changed("section-scale") {
		cfg.SectionSpacingScale = renderSectionScale
	}
	if cmd.Flags().Changed("item-scale") {
		cfg.ItemSpacingScale = renderItemScale
	}
	if cmd.Flags().Changed("margin-top") {
		cfg.MarginTopMm = renderMarginTop
	}
	if cmd.Flags().Changed("margin-bottom") {
		cfg.MarginBottomMm = renderMarginBottom
	}
	if cmd.Flags().Changed("margin-side") {
		cfg.MarginSideInch = renderMarginSide
	}
	if cmd.Flags().Changed("compact") {
		cfg.CompactMode = renderCompact
	}
	if cmd.Flags().Changed("auto-fit") {
		cfg.AutoFit = renderAutoFit
	}
	if cmd.Flags().Changed("auto-fit-max-trials") {
		cfg.MaxTrials = renderMaxTrials
	}
	if cmd.Flags().Changed("font-regular") {
		cfg.FontRegular = renderFontRegular
	}
	if cmd.Flags().Changed("font-bold") {
		cfg.FontBold = renderFontBold
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = renderVerbose
	}

	cfg = cfg.MergeWithDefaults(config.Config{
		OutputDir:  "resume_output",
		OutputFile: "resume.pdf",
		MaxTrials:  12,
	})

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// layoutHint converts configured layout preferences into the auto-fit
// hint. Nil when nothing layout-related was configured, so the search
// starts from the neutral baseline.
func layoutHint(cfg *config.Config) *layout.Settings {
	configured := cfg.CompactMode ||
		cfg.FontSizeScale != 0 || cfg.LineHeightScale != 0 ||
		cfg.SectionSpacingScale != 0 || cfg.ItemSpacingScale != 0 ||
		cfg.MarginTopMm != 0 || cfg.MarginBottomMm != 0 || cfg.MarginSideInch != 0
	if !configured {
		return nil
	}
	settings := cfg.LayoutSettings()
	return &settings
}
