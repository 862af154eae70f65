// Package pipeline provides the high-level orchestration for producing a
// fitted resume PDF: load, lint, layout search, final render, final check.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-fitter/internal/autofit"
	"github.com/jonathan/resume-fitter/internal/content"
	"github.com/jonathan/resume-fitter/internal/layout"
	"github.com/jonathan/resume-fitter/internal/observability"
	"github.com/jonathan/resume-fitter/internal/quality"
	"github.com/jonathan/resume-fitter/internal/render"
	"github.com/jonathan/resume-fitter/internal/types"
)

// ProgressEvent represents a progress update during pipeline execution
type ProgressEvent struct {
	Step    string `json:"step"`
	Message string `json:"message"`
	RunID   string `json:"run_id,omitempty"`
}

// ProgressCallback is called when pipeline progress occurs
type ProgressCallback func(event ProgressEvent)

// Step names attached to progress events.
const (
	StepLoad        = "load"
	StepLint        = "lint"
	StepLayout      = "layout"
	StepFinalRender = "final_render"
	StepFinalCheck  = "final_check"
)

// RunOptions holds configuration for running the pipeline
type RunOptions struct {
	InputPath      string
	OutputDir      string
	OutputFileName string
	Keywords       []string

	// Hint carries the caller's layout preferences. Nil means no
	// preference: auto-fit diagnoses from the neutral baseline, and a
	// plain render uses the default layout.
	Hint      *layout.Settings
	AutoFit   bool
	MaxTrials int

	Fonts      render.Fonts
	Thresholds quality.Thresholds
	Verbose    bool
	Logger     *zap.Logger
	OnProgress ProgressCallback
}

// RunResult is the outcome of one pipeline run.
type RunResult struct {
	RunID      uuid.UUID
	OutputPath string
	Layout     layout.Settings
	Report     *quality.Report
	Lint       []content.LintResult
	TrialsRun  int
}

// layoutBranchResult holds the outputs of the layout search branch.
// autoFit is nil when the search loop did not run.
type layoutBranchResult struct {
	settings  layout.Settings
	trialsRun int
	autoFit   *autofit.Result
}

func emitProgress(opts *RunOptions, runID uuid.UUID, step, message string) {
	if opts.OnProgress != nil {
		opts.OnProgress(ProgressEvent{Step: step, Message: message, RunID: runID.String()})
	}
}

// Run executes the full pipeline. The lint branch and the layout branch
// run concurrently: lint is pure content analysis, while the layout
// branch renders trial PDFs in scratch space. The final render and check
// happen once both branches are done.
func Run(ctx context.Context, opts RunOptions) (*RunResult, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	runID := uuid.New()
	printer := observability.NewPrinter(os.Stdout)

	record, err := LoadRecord(opts.InputPath)
	if err != nil {
		return nil, err
	}
	logger.Info("loaded resume record",
		zap.String("run_id", runID.String()),
		zap.String("input", opts.InputPath))
	emitProgress(&opts, runID, StepLoad, fmt.Sprintf("Loaded resume from %s", opts.InputPath))

	renderer := render.NewRendererWith(render.DefaultTokens(), opts.Fonts)
	checker := quality.NewChecker(opts.Thresholds)
	checkOpts := quality.Options{Keywords: opts.Keywords}

	g, gCtx := errgroup.WithContext(ctx)

	var lintResults []content.LintResult
	var layoutResult layoutBranchResult
	var lintMu, layoutMu sync.Mutex

	g.Go(func() error {
		results := content.Lint(record)
		lintMu.Lock()
		lintResults = results
		lintMu.Unlock()
		emitProgress(&opts, runID, StepLint, fmt.Sprintf("Ran %d lint checks", len(results)))
		return nil
	})

	g.Go(func() error {
		result, err := runLayoutBranch(gCtx, &opts, record, renderer, checker, checkOpts, logger)
		if err != nil {
			return fmt.Errorf("layout branch failed: %w", err)
		}
		layoutMu.Lock()
		layoutResult = result
		layoutMu.Unlock()
		emitProgress(&opts, runID, StepLayout,
			fmt.Sprintf("Selected layout after %d trial(s)", result.trialsRun))
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	backupPath, err := backupExisting(opts.OutputDir, opts.OutputFileName)
	if err != nil {
		return nil, err
	}
	if backupPath != "" {
		logger.Info("archived previous output",
			zap.String("run_id", runID.String()),
			zap.String("backup", backupPath))
	}

	outputPath, err := renderer.Render(record, layoutResult.settings, opts.OutputDir, opts.OutputFileName)
	if err != nil {
		return nil, fmt.Errorf("final render failed: %w", err)
	}
	emitProgress(&opts, runID, StepFinalRender, fmt.Sprintf("Rendered %s", outputPath))

	report, err := checker.Check(outputPath, checkOpts)
	if err != nil {
		return nil, fmt.Errorf("final quality check failed: %w", err)
	}
	emitProgress(&opts, runID, StepFinalCheck, fmt.Sprintf("Final verdict: %s", report.Verdict))

	layoutFixable, contentOnly := report.PartitionFailed()
	logger.Info("pipeline complete",
		zap.String("run_id", runID.String()),
		zap.String("output", outputPath),
		zap.String("verdict", string(report.Verdict)),
		zap.Int("trials_run", layoutResult.trialsRun),
		zap.Strings("unresolved_layout", layoutFixable),
		zap.Strings("unresolved_content", contentOnly))

	if opts.Verbose {
		printer.PrintLintResults(lintResults)
		printer.PrintLayout(layoutResult.settings)
		if layoutResult.autoFit != nil {
			printer.PrintAutoFitResult(layoutResult.autoFit)
		}
		printer.PrintQualityReport(report)
	}

	return &RunResult{
		RunID:      runID,
		OutputPath: outputPath,
		Layout:     layoutResult.settings,
		Report:     report,
		Lint:       lintResults,
		TrialsRun:  layoutResult.trialsRun,
	}, nil
}

// runLayoutBranch selects the layout to use for the final render. With
// auto-fit enabled it runs the full search loop; otherwise the hint (or
// the neutral default) is used as-is with no trial renders.
func runLayoutBranch(ctx context.Context, opts *RunOptions, record *types.ResumeRecord, renderer autofit.Renderer, checker autofit.Checker, checkOpts quality.Options, logger *zap.Logger) (layoutBranchResult, error) {
	if !opts.AutoFit {
		settings := layout.Default()
		if opts.Hint != nil {
			settings = *opts.Hint
		}
		return layoutBranchResult{settings: settings, trialsRun: 0}, nil
	}

	runner := autofit.NewRunner(renderer, checker, opts.Thresholds, logger)
	result, err := runner.Run(ctx, record, opts.OutputFileName, opts.MaxTrials, opts.Hint, checkOpts)
	if err != nil {
		return layoutBranchResult{}, err
	}
	return layoutBranchResult{settings: result.BestLayout, trialsRun: result.TrialsRun, autoFit: result}, nil
}
