// Package layout defines the tunable layout parameters for resume PDF rendering.
package layout

// Scale clamp bounds. Effective scales never leave this range.
const (
	MinScale = 0.7
	MaxScale = 1.3
)

// Compact-mode defaults, substituted when compact mode is on and the
// corresponding scale was left at its neutral value. All strictly below 1.0.
const (
	compactFontSizeScale       = 0.92
	compactLineHeightScale     = 0.88
	compactSectionSpacingScale = 0.88
	compactItemSpacingScale    = 0.85
)

// Default margins for the A4 single-page template.
const (
	DefaultMarginTopMm    = 5.0
	DefaultMarginBottomMm = 5.0
	DefaultMarginSideInch = 0.6
)

// Settings is an immutable bundle of layout parameters. A nil scale means
// "unset": it resolves to 1.0, or to the compact default when CompactMode is
// on. Treat values as read-only once constructed.
type Settings struct {
	FontSizeScale       *float64 `json:"font_size_scale,omitempty"`
	LineHeightScale     *float64 `json:"line_height_scale,omitempty"`
	SectionSpacingScale *float64 `json:"section_spacing_scale,omitempty"`
	ItemSpacingScale    *float64 `json:"item_spacing_scale,omitempty"`
	MarginTopMm         float64  `json:"margin_top_mm"`
	MarginBottomMm      float64  `json:"margin_bottom_mm"`
	MarginSideInch      float64  `json:"margin_side_inch"`
	CompactMode         bool     `json:"compact_mode"`
}

// Default returns the neutral baseline: all scales unset, standard margins,
// compact mode off.
func Default() Settings {
	return Settings{
		MarginTopMm:    DefaultMarginTopMm,
		MarginBottomMm: DefaultMarginBottomMm,
		MarginSideInch: DefaultMarginSideInch,
	}
}

// ScaleOf returns a pointer to v, for building Settings literals with
// explicit scale values.
func ScaleOf(v float64) *float64 {
	return &v
}

func clampScale(v float64) float64 {
	if v < MinScale {
		return MinScale
	}
	if v > MaxScale {
		return MaxScale
	}
	return v
}

// effective resolves one scale field: unset means 1.0, compact mode
// substitutes its default only when the field is still neutral, and the
// result is clamped to [MinScale, MaxScale].
func (s Settings) effective(raw *float64, compactDefault float64) float64 {
	value := 1.0
	if raw != nil {
		value = *raw
	}
	if s.CompactMode && value == 1.0 {
		return clampScale(compactDefault)
	}
	return clampScale(value)
}

// EffectiveFontSizeScale returns the font size multiplier actually applied.
func (s Settings) EffectiveFontSizeScale() float64 {
	return s.effective(s.FontSizeScale, compactFontSizeScale)
}

// EffectiveLineHeightScale returns the line height multiplier actually applied.
func (s Settings) EffectiveLineHeightScale() float64 {
	return s.effective(s.LineHeightScale, compactLineHeightScale)
}

// EffectiveSectionSpacingScale returns the section spacing multiplier actually applied.
func (s Settings) EffectiveSectionSpacingScale() float64 {
	return s.effective(s.SectionSpacingScale, compactSectionSpacingScale)
}

// EffectiveItemSpacingScale returns the item spacing multiplier actually applied.
func (s Settings) EffectiveItemSpacingScale() float64 {
	return s.effective(s.ItemSpacingScale, compactItemSpacingScale)
}

// Equal reports whether two Settings hold the same seven stored fields.
// Comparison is on raw values, not effective ones, so a compact-mode default
// and an explicitly supplied equal scale are still distinct candidates.
func (s Settings) Equal(other Settings) bool {
	return scalePtrEqual(s.FontSizeScale, other.FontSizeScale) &&
		scalePtrEqual(s.LineHeightScale, other.LineHeightScale) &&
		scalePtrEqual(s.SectionSpacingScale, other.SectionSpacingScale) &&
		scalePtrEqual(s.ItemSpacingScale, other.ItemSpacingScale) &&
		s.MarginTopMm == other.MarginTopMm &&
		s.MarginBottomMm == other.MarginBottomMm &&
		s.MarginSideInch == other.MarginSideInch &&
		s.CompactMode == other.CompactMode
}

func scalePtrEqual(a, b *float64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
