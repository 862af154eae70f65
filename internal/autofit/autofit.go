package autofit

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/jonathan/resume-fitter/internal/layout"
	"github.com/jonathan/resume-fitter/internal/quality"
	"github.com/jonathan/resume-fitter/internal/types"
)

// Renderer renders one resume into outputDir under fileName and returns
// the generated file's path.
type Renderer interface {
	Render(record *types.ResumeRecord, settings layout.Settings, outputDir, fileName string) (string, error)
}

// Checker produces a quality report for a rendered PDF. The search loop
// treats it as an opaque oracle over the file path.
type Checker interface {
	Check(path string, opts quality.Options) (*quality.Report, error)
}

// Result is the best trial selected by an auto-fit run.
type Result struct {
	BestLayout layout.Settings
	BestReport *quality.Report
	TrialsRun  int
}

// Runner drives the layout search loop.
type Runner struct {
	renderer Renderer
	checker  Checker
	policy   quality.Thresholds
	logger   *zap.Logger
}

// NewRunner returns a Runner. A nil logger disables logging.
func NewRunner(renderer Renderer, checker Checker, policy quality.Thresholds, logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{renderer: renderer, checker: checker, policy: policy, logger: logger}
}

// Run searches for the best-fitting layout. The diagnostic trial uses
// hint when given, else the neutral baseline; if it already passes the
// run short-circuits with TrialsRun=1. Otherwise up to maxTrials-1
// directional candidates are rendered and checked sequentially, and the
// highest-scoring trial wins.
//
// All trial artifacts are written to per-trial subdirectories of a
// scratch directory that is removed on every exit path. Any render or
// check failure aborts the whole run.
func (r *Runner) Run(ctx context.Context, record *types.ResumeRecord, fileName string, maxTrials int, hint *layout.Settings, checkOpts quality.Options) (*Result, error) {
	scratch, err := os.MkdirTemp("", "resume-autofit-")
	if err != nil {
		return nil, fmt.Errorf("failed to create scratch directory: %w", err)
	}
	defer os.RemoveAll(scratch)

	diagnostic := layout.Default()
	if hint != nil {
		diagnostic = *hint
	}

	first, err := r.runTrial(ctx, scratch, 1, record, diagnostic, fileName, checkOpts)
	if err != nil {
		return nil, err
	}

	direction := Diagnose(first.Report, r.policy)
	r.logger.Info("diagnostic trial complete",
		zap.String("verdict", string(first.Report.Verdict)),
		zap.String("direction", string(direction)))

	if direction == DirectionPass {
		return &Result{BestLayout: first.Layout, BestReport: first.Report, TrialsRun: 1}, nil
	}

	candidates := BuildCandidates(maxTrials, hint, direction)
	trials := []Trial{first}
	for _, candidate := range candidates {
		if candidate.Equal(diagnostic) {
			continue
		}
		if len(trials) >= maxTrials {
			break
		}
		trial, err := r.runTrial(ctx, scratch, len(trials)+1, record, candidate, fileName, checkOpts)
		if err != nil {
			return nil, err
		}
		trials = append(trials, trial)
	}

	best := trials[0]
	bestScore := ScoreTrial(best)
	for _, trial := range trials[1:] {
		if score := ScoreTrial(trial); score.Better(bestScore) {
			best, bestScore = trial, score
		}
	}

	r.logger.Info("auto-fit complete",
		zap.Int("trials_run", len(trials)),
		zap.String("verdict", string(best.Report.Verdict)),
		zap.Float64("compression_distance", bestScore.CompressionDistance))

	return &Result{BestLayout: best.Layout, BestReport: best.Report, TrialsRun: len(trials)}, nil
}

// runTrial renders and checks one candidate in its own scratch
// subdirectory.
func (r *Runner) runTrial(ctx context.Context, scratch string, index int, record *types.ResumeRecord, settings layout.Settings, fileName string, checkOpts quality.Options) (Trial, error) {
	if err := ctx.Err(); err != nil {
		return Trial{}, err
	}

	trialDir := filepath.Join(scratch, fmt.Sprintf("trial-%d", index))
	path, err := r.renderer.Render(record, settings, trialDir, fileName)
	if err != nil {
		return Trial{}, fmt.Errorf("trial %d render failed: %w", index, err)
	}

	report, err := r.checker.Check(path, checkOpts)
	if err != nil {
		return Trial{}, fmt.Errorf("trial %d quality check failed: %w", index, err)
	}

	r.logger.Debug("trial complete",
		zap.Int("trial", index),
		zap.String("verdict", string(report.Verdict)),
		zap.Strings("failed_checks", report.FailedChecks()))

	return Trial{Layout: settings, Report: report}, nil
}
