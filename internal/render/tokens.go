// Package render generates resume PDFs from structured content.
package render

// RGB is a 0-255 color triple.
type RGB struct {
	R, G, B int
}

// Tokens holds the base design constants for the resume template. Font
// sizes, leading and spacing are values in points before layout scaling
// is applied.
type Tokens struct {
	// Colors
	AccentColor  RGB
	BodyInkColor RGB

	// Font sizes (pt)
	HeaderFontSize    float64
	ContactFontSize   float64
	SectionFontSize   float64
	BodyFontSize      float64
	CompanyFontSize   float64
	DatesFontSize     float64
	JobDetailFontSize float64
	BulletFontSize    float64
	EducationFontSize float64

	// Leading (pt)
	HeaderLeading    float64
	SectionLeading   float64
	BodyLeading      float64
	CompanyLeading   float64
	DatesLeading     float64
	JobDetailLeading float64
	BulletLeading    float64
	EducationLeading float64

	// Spacing (pt, before layout scaling)
	HeaderSpaceAfter    float64
	ContactSpaceAfter   float64
	SectionSpaceBefore  float64
	SectionSpaceAfter   float64
	BodySpaceAfter      float64
	CompanySpaceAfter   float64
	JobDetailSpaceAfter float64
	BulletSpaceAfter    float64
	EducationSpaceAfter float64

	// Bullet indentation (pt)
	BulletLeftIndent float64
	BulletIndent     float64

	// Horizontal rules
	SectionRuleThickness float64
	HeaderRuleThickness  float64
	HeaderRuleWidthFrac  float64
	HeaderRuleSpaceAfter float64
}

// DefaultTokens returns the standard design constants.
func DefaultTokens() Tokens {
	return Tokens{
		AccentColor:  RGB{0x2B, 0x3A, 0x4E},
		BodyInkColor: RGB{0x1A, 0x1A, 0x2E},

		HeaderFontSize:    15.0,
		ContactFontSize:   10.5,
		SectionFontSize:   10.6,
		BodyFontSize:      9.85,
		CompanyFontSize:   10.2,
		DatesFontSize:     9.9,
		JobDetailFontSize: 9.9,
		BulletFontSize:    9.85,
		EducationFontSize: 9.9,

		// 15pt header needs ~20pt leading for descender clearance.
		HeaderLeading:    20.0,
		SectionLeading:   13.0,
		BodyLeading:      12.2,
		CompanyLeading:   12.5,
		DatesLeading:     12.0,
		JobDetailLeading: 12.0,
		BulletLeading:    12.2,
		EducationLeading: 12.0,

		HeaderSpaceAfter:    4.0,
		ContactSpaceAfter:   2.0,
		SectionSpaceBefore:  8.5,
		SectionSpaceAfter:   5.0,
		BodySpaceAfter:      6.2,
		CompanySpaceAfter:   2.5,
		JobDetailSpaceAfter: 4.5,
		BulletSpaceAfter:    3.2,
		EducationSpaceAfter: 3.5,

		BulletLeftIndent: 15.0,
		BulletIndent:     5.0,

		SectionRuleThickness: 0.6,
		HeaderRuleThickness:  0.8,
		HeaderRuleWidthFrac:  0.30,
		HeaderRuleSpaceAfter: 6.0,
	}
}
