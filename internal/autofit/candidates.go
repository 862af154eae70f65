package autofit

import (
	"github.com/jonathan/resume-fitter/internal/layout"
)

// BuildCandidates produces the ordered list of layout candidates to try
// for a diagnosed direction, at most max(1, maxTrials) entries.
//
// The list always starts from the neutral baseline, followed by the
// directional presets. A non-nil hint that is not already present by
// value is tried first, since it usually reflects caller intent.
func BuildCandidates(maxTrials int, hint *layout.Settings, direction Direction) []layout.Settings {
	candidates := []layout.Settings{layout.Default()}
	switch direction {
	case DirectionExpand:
		candidates = append(candidates, expandPresets()...)
	default:
		candidates = append(candidates, shrinkPresets()...)
	}

	if hint != nil && !containsSettings(candidates, *hint) {
		candidates = append([]layout.Settings{*hint}, candidates...)
	}

	limit := maxTrials
	if limit < 1 {
		limit = 1
	}
	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	return candidates
}

// shrinkPresets is the four-phase compression ladder. Every preset keeps
// the effective font scale at or below 1.0.
//
// Phase A compresses line height only, the cheapest readability cost.
// Phase B adds font size with spacing scaled proportionally. Phase C
// enables compact mode with progressively deeper reduction. Phase D adds
// margin tightening as a last resort.
func shrinkPresets() []layout.Settings {
	return []layout.Settings{
		// Phase A
		shrink(0, 0.94, 0, 0),
		shrink(0, 0.90, 0, 0),
		// Phase B
		shrink(0.95, 0.92, 0.94, 0.92),
		shrink(0.92, 0.90, 0.90, 0.88),
		// Phase C
		compact(0, 0, 0, 0),
		compact(0.90, 0, 0, 0),
		compact(0.90, 0.88, 0, 0),
		compact(0.88, 0.86, 0.82, 0.78),
		compact(0.86, 0.84, 0.78, 0.74),
		compact(0.84, 0.82, 0.75, 0.70),
		// Phase D
		compactMargins(0.92, 0.90, 0.84, 0.80, 4.5, layout.DefaultMarginSideInch),
		compactMargins(0.90, 0.88, 0.80, 0.76, 4.2, layout.DefaultMarginSideInch),
		compactMargins(0.88, 0.84, 0.76, 0.72, 4.0, layout.DefaultMarginSideInch),
		compactMargins(0.86, 0.82, 0.74, 0.70, 4.0, 0.55),
		compactMargins(0.84, 0.80, 0.72, 0.68, 4.0, 0.55),
	}
}

// expandPresets grows all four scales together, font as the first-order
// driver; the final presets also loosen margins. Every preset has an
// effective font scale strictly above 1.0.
func expandPresets() []layout.Settings {
	loose1 := expand(1.08, 1.05, 1.04, 1.03)
	loose1.MarginTopMm = 6.5
	loose1.MarginBottomMm = 6.5
	loose1.MarginSideInch = 0.65

	loose2 := expand(1.12, 1.08, 1.06, 1.05)
	loose2.MarginTopMm = 7.5
	loose2.MarginBottomMm = 7.5
	loose2.MarginSideInch = 0.70

	return []layout.Settings{
		expand(1.02, 1.01, 1.01, 1.01),
		expand(1.05, 1.03, 1.02, 1.02),
		expand(1.08, 1.05, 1.04, 1.03),
		expand(1.10, 1.07, 1.05, 1.04),
		loose1,
		loose2,
	}
}

// shrink builds a non-compact preset; a zero scale means "leave unset".
func shrink(font, line, section, item float64) layout.Settings {
	return withScales(layout.Default(), font, line, section, item)
}

// compact builds a compact-mode preset; a zero scale defers to the
// compact default.
func compact(font, line, section, item float64) layout.Settings {
	s := withScales(layout.Default(), font, line, section, item)
	s.CompactMode = true
	return s
}

func compactMargins(font, line, section, item, topBottomMm, sideInch float64) layout.Settings {
	s := compact(font, line, section, item)
	s.MarginTopMm = topBottomMm
	s.MarginBottomMm = topBottomMm
	s.MarginSideInch = sideInch
	return s
}

func expand(font, line, section, item float64) layout.Settings {
	return withScales(layout.Default(), font, line, section, item)
}

func withScales(s layout.Settings, font, line, section, item float64) layout.Settings {
	if font != 0 {
		s.FontSizeScale = layout.ScaleOf(font)
	}
	if line != 0 {
		s.LineHeightScale = layout.ScaleOf(line)
	}
	if section != 0 {
		s.SectionSpacingScale = layout.ScaleOf(section)
	}
	if item != 0 {
		s.ItemSpacingScale = layout.ScaleOf(item)
	}
	return s
}

func containsSettings(list []layout.Settings, target layout.Settings) bool {
	for _, s := range list {
		if s.Equal(target) {
			return true
		}
	}
	return false
}
