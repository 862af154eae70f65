package quality

import (
	"math"
	"sort"
)

// A4 page geometry in millimeters, with the tolerance allowed by the
// page_size check.
const (
	a4WidthMm     = 210.0
	a4HeightMm    = 297.0
	a4ToleranceMm = 1.0
)

// Thresholds configures the allowed margin ranges, in millimeters.
type Thresholds struct {
	MinBottomMm float64
	MaxBottomMm float64
	MinTopMm    float64
	MaxTopMm    float64
	MinSideMm   float64
	MaxSideMm   float64
}

// DefaultThresholds returns the standard margin ranges for the one-page
// resume template.
func DefaultThresholds() Thresholds {
	return Thresholds{
		MinBottomMm: 3.0,
		MaxBottomMm: 8.0,
		MinTopMm:    3.0,
		MaxTopMm:    20.0,
		MinSideMm:   10.0,
		MaxSideMm:   25.0,
	}
}

// Options carries per-invocation checker parameters.
type Options struct {
	// Keywords that must all appear in the rendered text for the
	// keyword_coverage check to pass. Empty means the check passes trivially.
	Keywords []string
}

// Checker verifies rendered PDFs against the fixed battery of quality checks.
// It treats the file as an opaque artifact and re-derives every property
// from it.
type Checker struct {
	thresholds Thresholds
}

// NewChecker returns a Checker using the given margin thresholds.
func NewChecker(thresholds Thresholds) *Checker {
	return &Checker{thresholds: thresholds}
}

// Check runs all quality checks against the PDF at path and returns the
// report. A returned error is always a broken-oracle condition
// (*CheckerError wrapped or direct), never a merely failing layout.
func (c *Checker) Check(path string, opts Options) (*Report, error) {
	feats, err := extractFeatures(path)
	if err != nil {
		return nil, err
	}
	return buildReport(feats, c.thresholds, opts.Keywords), nil
}

func withinRange(value, minimum, maximum float64) bool {
	return value >= minimum && value <= maximum
}

func roundMm(v float64) float64 {
	return math.Round(v*100) / 100
}

// buildReport assembles the report from extracted features. Pure function:
// everything the checks need is in the arguments.
func buildReport(feats *features, thresholds Thresholds, keywords []string) *Report {
	checks := make([]Check, 0, 12)

	checks = append(checks, Check{
		Name:   CheckPageCount,
		Passed: feats.PageCount == 1,
		Detail: map[string]any{"count": feats.PageCount, "expected": 1},
	})

	isA4 := math.Abs(feats.WidthMm-a4WidthMm) <= a4ToleranceMm &&
		math.Abs(feats.HeightMm-a4HeightMm) <= a4ToleranceMm
	checks = append(checks, Check{
		Name:   CheckPageSize,
		Passed: isA4,
		Detail: map[string]any{
			"width_mm":  roundMm(feats.WidthMm),
			"height_mm": roundMm(feats.HeightMm),
		},
	})

	hasText := len(feats.Lines) > 0
	checks = append(checks, Check{
		Name:   CheckTextLayer,
		Passed: hasText,
		Detail: map[string]any{},
	})

	leaks := htmlLeaks(feats.Text)
	checks = append(checks, Check{
		Name:   CheckHTMLLeak,
		Passed: len(leaks) == 0,
		Detail: map[string]any{"leak_count": len(leaks)},
	})

	found := placeholders(feats.Text)
	checks = append(checks, Check{
		Name:   CheckPlaceholderContent,
		Passed: len(found) == 0,
		Detail: map[string]any{"count": len(found), "found": uniqueSorted(found)},
	})

	checks = append(checks, marginChecks(feats.Margins, thresholds)...)

	missing := missingSections(feats.Text)
	checks = append(checks, Check{
		Name:   CheckSectionCompleteness,
		Passed: len(missing) == 0,
		Detail: map[string]any{"missing": missing},
	})

	hasEmail, hasPhone, hasLinkedin := contactPresence(feats.Text)
	checks = append(checks, Check{
		Name:   CheckContactInfo,
		Passed: hasEmail && (hasPhone || hasLinkedin),
		Detail: map[string]any{
			"email":    hasEmail,
			"phone":    hasPhone,
			"linkedin": hasLinkedin,
		},
	})

	missingKw := missingKeywords(feats.Text, keywords)
	checks = append(checks, Check{
		Name:   CheckKeywordCoverage,
		Passed: len(keywords) == 0 || len(missingKw) == 0,
		Detail: map[string]any{"provided": len(keywords), "missing": missingKw},
	})

	warnings := layoutWarnings(feats.Lines)
	checks = append(checks, Check{
		Name:   CheckLayoutWarnings,
		Passed: true,
		Detail: map[string]any{"warnings": warnings},
	})

	verdict := VerdictPass
	for _, check := range checks {
		if check.Name == CheckLayoutWarnings {
			continue
		}
		if !check.Passed {
			verdict = VerdictNeedsAdjustment
			break
		}
	}

	return &Report{Verdict: verdict, Checks: checks}
}

// marginChecks builds the three margin checks. When margins could not be
// estimated (no text on the first page) all three pass as unverifiable,
// with available=false recorded in the detail.
func marginChecks(margins *pageMargins, thresholds Thresholds) []Check {
	available := margins != nil

	bottomDetail := map[string]any{
		"available": available,
		"min_mm":    thresholds.MinBottomMm,
		"max_mm":    thresholds.MaxBottomMm,
	}
	topDetail := map[string]any{
		"available": available,
		"min_mm":    thresholds.MinTopMm,
		"max_mm":    thresholds.MaxTopMm,
	}
	sideDetail := map[string]any{
		"available": available,
		"min_mm":    thresholds.MinSideMm,
		"max_mm":    thresholds.MaxSideMm,
	}

	bottomOk, topOk, sideOk := true, true, true
	if available {
		bottomOk = withinRange(margins.BottomMm, thresholds.MinBottomMm, thresholds.MaxBottomMm)
		topOk = withinRange(margins.TopMm, thresholds.MinTopMm, thresholds.MaxTopMm)
		sideOk = withinRange(margins.LeftMm, thresholds.MinSideMm, thresholds.MaxSideMm) &&
			withinRange(margins.RightMm, thresholds.MinSideMm, thresholds.MaxSideMm)

		bottomDetail["bottom_mm"] = roundMm(margins.BottomMm)
		topDetail["top_mm"] = roundMm(margins.TopMm)
		sideDetail["left_mm"] = roundMm(margins.LeftMm)
		sideDetail["right_mm"] = roundMm(margins.RightMm)
	}

	return []Check{
		{Name: CheckBottomMargin, Passed: bottomOk, Detail: bottomDetail},
		{Name: CheckTopMargin, Passed: topOk, Detail: topDetail},
		{Name: CheckSideMargins, Passed: sideOk, Detail: sideDetail},
	}
}

func uniqueSorted(values []string) []string {
	seen := make(map[string]bool, len(values))
	var unique []string
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			unique = append(unique, v)
		}
	}
	sort.Strings(unique)
	return unique
}
