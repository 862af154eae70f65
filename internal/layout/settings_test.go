package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEffectiveScales_ClampedToSafeRange(t *testing.T) {
	tests := []struct {
		name string
		raw  float64
		want float64
	}{
		{"far below minimum", 0.3, 0.7},
		{"at minimum", 0.7, 0.7},
		{"neutral", 1.0, 1.0},
		{"at maximum", 1.3, 1.3},
		{"far above maximum", 2.0, 1.3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Settings{
				FontSizeScale:       ScaleOf(tt.raw),
				LineHeightScale:     ScaleOf(tt.raw),
				SectionSpacingScale: ScaleOf(tt.raw),
				ItemSpacingScale:    ScaleOf(tt.raw),
			}
			assert.Equal(t, tt.want, s.EffectiveFontSizeScale())
			assert.Equal(t, tt.want, s.EffectiveLineHeightScale())
			assert.Equal(t, tt.want, s.EffectiveSectionSpacingScale())
			assert.Equal(t, tt.want, s.EffectiveItemSpacingScale())
		})
	}
}

func TestEffectiveScales_UnsetResolvesToNeutral(t *testing.T) {
	s := Default()
	assert.Equal(t, 1.0, s.EffectiveFontSizeScale())
	assert.Equal(t, 1.0, s.EffectiveLineHeightScale())
	assert.Equal(t, 1.0, s.EffectiveSectionSpacingScale())
	assert.Equal(t, 1.0, s.EffectiveItemSpacingScale())
}

func TestCompactMode_SubstitutesDefaultsBelowOne(t *testing.T) {
	s := Settings{CompactMode: true}

	for name, got := range map[string]float64{
		"font size":       s.EffectiveFontSizeScale(),
		"line height":     s.EffectiveLineHeightScale(),
		"section spacing": s.EffectiveSectionSpacingScale(),
		"item spacing":    s.EffectiveItemSpacingScale(),
	} {
		assert.Less(t, got, 1.0, "%s compact default should be below 1.0", name)
		assert.GreaterOrEqual(t, got, MinScale, "%s compact default should stay in range", name)
	}
}

func TestCompactMode_ExplicitScaleOverridesDefaultPerField(t *testing.T) {
	s := Settings{CompactMode: true, FontSizeScale: ScaleOf(1.2)}

	assert.Equal(t, 1.2, s.EffectiveFontSizeScale())
	// Remaining fields still pick up compact defaults.
	assert.Less(t, s.EffectiveLineHeightScale(), 1.0)
	assert.Less(t, s.EffectiveSectionSpacingScale(), 1.0)
	assert.Less(t, s.EffectiveItemSpacingScale(), 1.0)
}

func TestEqual_ComparesStoredFieldsNotEffectiveValues(t *testing.T) {
	a := Default()
	b := Default()
	assert.True(t, a.Equal(b))

	// Compact mode with unset font resolves to 0.92, but it is not equal to
	// an explicit 0.92: stored fields differ.
	compact := Settings{CompactMode: true, MarginTopMm: DefaultMarginTopMm, MarginBottomMm: DefaultMarginBottomMm, MarginSideInch: DefaultMarginSideInch}
	explicit := compact
	explicit.FontSizeScale = ScaleOf(compact.EffectiveFontSizeScale())
	assert.Equal(t, compact.EffectiveFontSizeScale(), explicit.EffectiveFontSizeScale())
	assert.False(t, compact.Equal(explicit))
}

func TestEqual_DetectsEachFieldDifference(t *testing.T) {
	base := Default()

	modified := []Settings{
		{MarginTopMm: 4.0, MarginBottomMm: DefaultMarginBottomMm, MarginSideInch: DefaultMarginSideInch},
		{MarginTopMm: DefaultMarginTopMm, MarginBottomMm: 4.0, MarginSideInch: DefaultMarginSideInch},
		{MarginTopMm: DefaultMarginTopMm, MarginBottomMm: DefaultMarginBottomMm, MarginSideInch: 0.55},
	}
	for _, m := range modified {
		assert.False(t, base.Equal(m))
	}

	withScale := base
	withScale.LineHeightScale = ScaleOf(0.9)
	assert.False(t, base.Equal(withScale))

	compact := base
	compact.CompactMode = true
	assert.False(t, base.Equal(compact))
}

func TestEqual_ScalePointersComparedByValue(t *testing.T) {
	a := Default()
	a.FontSizeScale = ScaleOf(0.9)
	b := Default()
	b.FontSizeScale = ScaleOf(0.9)

	assert.True(t, a.Equal(b), "distinct pointers to equal values should compare equal")
}
