package autofit

import (
	"math"

	"github.com/jonathan/resume-fitter/internal/layout"
	"github.com/jonathan/resume-fitter/internal/quality"
)

// Trial pairs one layout candidate with the quality report produced by
// rendering and checking it.
type Trial struct {
	Layout layout.Settings
	Report *quality.Report
}

// Score is the totally-ordered ranking of one trial. Comparison is
// lexicographic over the fields in declaration order.
type Score struct {
	// Pass is 1 for a passing verdict, 0 otherwise. A passing trial
	// always outranks a failing one.
	Pass int
	// LayoutFixableFailed counts failed checks that a layout change could
	// cure. Content-only failures never count here.
	LayoutFixableFailed int
	// TotalFailed counts all failed checks.
	TotalFailed int
	// CompressionDistance is the summed deviation of the four effective
	// scales from 1.0. Closer to the untouched baseline is better.
	CompressionDistance float64
	// Readability weighs the effective scales toward larger, airier
	// layouts. Among equally-distant candidates the expansion wins.
	Readability float64
}

// Readability weights, font size first.
const (
	readabilityFontWeight    = 0.45
	readabilityLineWeight    = 0.30
	readabilitySectionWeight = 0.15
	readabilityItemWeight    = 0.10
)

// ScoreTrial computes the ranking tuple for one trial.
func ScoreTrial(trial Trial) Score {
	layoutFixable, contentOnly := trial.Report.PartitionFailed()

	pass := 0
	if trial.Report.Verdict == quality.VerdictPass {
		pass = 1
	}

	return Score{
		Pass:                pass,
		LayoutFixableFailed: len(layoutFixable),
		TotalFailed:         len(layoutFixable) + len(contentOnly),
		CompressionDistance: CompressionDistance(trial.Layout),
		Readability:         ReadabilityScore(trial.Layout),
	}
}

// Better reports whether s strictly outranks other. Equal scores return
// false, so selection by "first strictly better" is stable by insertion
// order.
func (s Score) Better(other Score) bool {
	if s.Pass != other.Pass {
		return s.Pass > other.Pass
	}
	if s.LayoutFixableFailed != other.LayoutFixableFailed {
		return s.LayoutFixableFailed < other.LayoutFixableFailed
	}
	if s.TotalFailed != other.TotalFailed {
		return s.TotalFailed < other.TotalFailed
	}
	if s.CompressionDistance != other.CompressionDistance {
		return s.CompressionDistance < other.CompressionDistance
	}
	return s.Readability > other.Readability
}

// CompressionDistance sums how far each effective scale is from 1.0.
func CompressionDistance(s layout.Settings) float64 {
	return math.Abs(1.0-s.EffectiveFontSizeScale()) +
		math.Abs(1.0-s.EffectiveLineHeightScale()) +
		math.Abs(1.0-s.EffectiveSectionSpacingScale()) +
		math.Abs(1.0-s.EffectiveItemSpacingScale())
}

// ReadabilityScore is the weighted sum of the four effective scales.
func ReadabilityScore(s layout.Settings) float64 {
	return readabilityFontWeight*s.EffectiveFontSizeScale() +
		readabilityLineWeight*s.EffectiveLineHeightScale() +
		readabilitySectionWeight*s.EffectiveSectionSpacingScale() +
		readabilityItemWeight*s.EffectiveItemSpacingScale()
}
