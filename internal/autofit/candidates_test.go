package autofit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-fitter/internal/layout"
)

func TestBuildCandidates_StartsWithNeutralBaseline(t *testing.T) {
	for _, direction := range []Direction{DirectionShrink, DirectionExpand} {
		candidates := BuildCandidates(12, nil, direction)
		require.NotEmpty(t, candidates)
		assert.True(t, candidates[0].Equal(layout.Default()), "direction %s", direction)
	}
}

func TestBuildCandidates_TruncatesToMaxTrials(t *testing.T) {
	assert.Len(t, BuildCandidates(4, nil, DirectionShrink), 4)
	assert.Len(t, BuildCandidates(1, nil, DirectionShrink), 1)

	// Never empty, even with a nonsensical budget.
	assert.Len(t, BuildCandidates(0, nil, DirectionShrink), 1)
	assert.Len(t, BuildCandidates(-3, nil, DirectionExpand), 1)
}

func TestBuildCandidates_ShrinkScalesNeverExceedNeutral(t *testing.T) {
	for i, candidate := range BuildCandidates(100, nil, DirectionShrink) {
		assert.LessOrEqual(t, candidate.EffectiveFontSizeScale(), 1.0, "candidate %d", i)
	}
}

func TestBuildCandidates_ExpandScalesAlwaysAboveNeutral(t *testing.T) {
	candidates := BuildCandidates(100, nil, DirectionExpand)
	require.Greater(t, len(candidates), 1)
	for i, candidate := range candidates[1:] {
		assert.Greater(t, candidate.EffectiveFontSizeScale(), 1.0, "candidate %d", i+1)
	}
}

func TestBuildCandidates_HintTriedFirst(t *testing.T) {
	hint := layout.Settings{
		FontSizeScale:  layout.ScaleOf(0.97),
		MarginTopMm:    layout.DefaultMarginTopMm,
		MarginBottomMm: layout.DefaultMarginBottomMm,
		MarginSideInch: layout.DefaultMarginSideInch,
	}

	candidates := BuildCandidates(12, &hint, DirectionShrink)
	require.NotEmpty(t, candidates)
	assert.True(t, candidates[0].Equal(hint))
	assert.True(t, candidates[1].Equal(layout.Default()))
}

func TestBuildCandidates_HintEqualToPresetNotDuplicated(t *testing.T) {
	hint := layout.Default()
	hint.CompactMode = true // matches the first compact preset

	candidates := BuildCandidates(100, &hint, DirectionShrink)

	matches := 0
	for _, candidate := range candidates {
		if candidate.Equal(hint) {
			matches++
		}
	}
	assert.Equal(t, 1, matches)
	assert.True(t, candidates[0].Equal(layout.Default()), "neutral stays first when hint is deduplicated")
}

func TestBuildCandidates_ShrinkPhasesOrdered(t *testing.T) {
	candidates := BuildCandidates(100, nil, DirectionShrink)
	require.GreaterOrEqual(t, len(candidates), 6)

	// Phase A compresses line height only.
	assert.Nil(t, candidates[1].FontSizeScale)
	assert.NotNil(t, candidates[1].LineHeightScale)
	assert.False(t, candidates[1].CompactMode)

	// Later phases reach compact mode and finally tighter margins.
	sawCompact, sawTightMargins := false, false
	for _, candidate := range candidates {
		if candidate.CompactMode {
			sawCompact = true
		}
		if candidate.MarginBottomMm < layout.DefaultMarginBottomMm {
			assert.True(t, sawCompact, "margin tightening only after compact presets")
			sawTightMargins = true
		}
	}
	assert.True(t, sawCompact)
	assert.True(t, sawTightMargins)
}

func TestBuildCandidates_ExpandFinalPresetsLoosenMargins(t *testing.T) {
	candidates := BuildCandidates(100, nil, DirectionExpand)
	last := candidates[len(candidates)-1]
	assert.Greater(t, last.MarginBottomMm, layout.DefaultMarginBottomMm)
	assert.Greater(t, last.MarginSideInch, layout.DefaultMarginSideInch)
}
