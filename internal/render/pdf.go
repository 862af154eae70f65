package render

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/jonathan/resume-fitter/internal/content"
	"github.com/jonathan/resume-fitter/internal/layout"
	"github.com/jonathan/resume-fitter/internal/types"
)

// Unit conversions to points, the document's native unit.
const (
	mmToPt   = 72.0 / 25.4
	inchToPt = 72.0
)

// entrySpacerPt is the extra gap between bulleted entries before item
// spacing scaling (0.05 inch, matching the template).
const entrySpacerPt = 0.05 * inchToPt

// Renderer generates A4 resume PDFs. The zero value is not usable; use
// NewRenderer or NewRendererWith.
type Renderer struct {
	tokens Tokens
	fonts  Fonts
}

// NewRenderer returns a Renderer with the default design tokens and the
// built-in Helvetica family.
func NewRenderer() *Renderer {
	return &Renderer{tokens: DefaultTokens(), fonts: DefaultFonts()}
}

// NewRendererWith returns a Renderer with explicit tokens and fonts.
func NewRendererWith(tokens Tokens, fonts Fonts) *Renderer {
	return &Renderer{tokens: tokens, fonts: fonts}
}

// Render writes the resume as a PDF into outputDir and returns the full
// path of the generated file. fileName must be a bare file name with no
// path components. The document is written to a temporary file first and
// renamed into place, so a failed render never leaves a partial PDF at
// the final path.
func (r *Renderer) Render(record *types.ResumeRecord, settings layout.Settings, outputDir, fileName string) (string, error) {
	if fileName == "" || filepath.Base(fileName) != fileName || strings.ContainsAny(fileName, `/\`) {
		return "", &RenderError{Message: fmt.Sprintf("output file must be a bare file name, got %q", fileName)}
	}
	if err := content.ValidateRecord(record); err != nil {
		return "", &RenderError{Message: "invalid resume content", Cause: err}
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return "", &RenderError{Message: "failed to create output directory", Cause: err}
	}

	doc := r.buildDocument(record, settings)

	outputPath := filepath.Join(outputDir, fileName)
	tempPath := filepath.Join(outputDir, "."+strings.TrimSuffix(fileName, ".pdf")+".tmp.pdf")
	if err := doc.OutputFileAndClose(tempPath); err != nil {
		os.Remove(tempPath)
		return "", &RenderError{Message: "failed to write PDF", Cause: err}
	}
	if err := os.Rename(tempPath, outputPath); err != nil {
		os.Remove(tempPath)
		return "", &RenderError{Message: "failed to move PDF into place", Cause: err}
	}
	return outputPath, nil
}

func (r *Renderer) buildDocument(record *types.ResumeRecord, settings layout.Settings) *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "pt", "A4", "")
	family := r.fonts.register(pdf)

	sidePt := settings.MarginSideInch * inchToPt
	topPt := settings.MarginTopMm * mmToPt
	bottomPt := settings.MarginBottomMm * mmToPt
	pdf.SetMargins(sidePt, topPt, sidePt)
	pdf.SetAutoPageBreak(true, bottomPt)
	pdf.AddPage()

	pageWidth, _ := pdf.GetPageSize()
	b := &docBuilder{
		pdf:          pdf,
		tr:           pdf.UnicodeTranslatorFromDescriptor(""),
		tokens:       r.tokens,
		family:       family,
		fontScale:    settings.EffectiveFontSizeScale(),
		lineScale:    settings.EffectiveLineHeightScale(),
		sectionScale: settings.EffectiveSectionSpacingScale(),
		itemScale:    settings.EffectiveItemSpacingScale(),
		width:        pageWidth - 2*sidePt,
	}

	b.header(record.Name, record.Contact)

	b.section("SUMMARY")
	b.body(record.Summary)

	b.section("PROFESSIONAL EXPERIENCE")
	for i, exp := range record.Experience {
		b.twoColRow(exp.Company, exp.Dates, b.tokens.CompanyFontSize, b.tokens.CompanyLeading, b.tokens.CompanySpaceAfter)
		detail := joinNonEmpty(" | ", exp.Title, exp.Location)
		if detail != "" {
			b.jobDetail(detail)
		}
		b.bullets(exp.Bullets)
		if i < len(record.Experience)-1 {
			b.spacer(entrySpacerPt * b.itemScale)
		}
	}

	if len(record.Projects) > 0 {
		b.section("PROJECTS")
		for i, project := range record.Projects {
			left := joinNonEmpty(" | ", project.Name, project.Tech)
			b.twoColRow(left, project.Dates, b.tokens.CompanyFontSize, b.tokens.CompanyLeading, b.tokens.CompanySpaceAfter)
			b.bullets(project.Bullets)
			if i < len(record.Projects)-1 {
				b.spacer(entrySpacerPt * b.itemScale)
			}
		}
	}

	b.section("TECHNICAL SKILLS")
	for _, skill := range record.Skills {
		b.labeledLine(skill.Category, skill.Items)
	}

	if len(record.Certifications) > 0 {
		b.section("CERTIFICATIONS")
		for _, cert := range record.Certifications {
			left := joinNonEmpty(" - ", cert.Name, cert.Issuer)
			b.twoColRow(left, cert.Dates, b.tokens.EducationFontSize, b.tokens.EducationLeading, b.tokens.EducationSpaceAfter)
		}
	}

	if len(record.Awards) > 0 {
		b.section("AWARDS")
		for _, award := range record.Awards {
			left := joinNonEmpty(" - ", award.Name, award.Organization)
			b.twoColRow(left, award.Dates, b.tokens.EducationFontSize, b.tokens.EducationLeading, b.tokens.EducationSpaceAfter)
		}
	}

	b.section("EDUCATION")
	for _, edu := range record.Education {
		b.twoColRow(edu.School, edu.Dates, b.tokens.EducationFontSize, b.tokens.EducationLeading, b.tokens.EducationSpaceAfter)
		if edu.Degree != "" {
			b.educationDegree(edu.Degree)
		}
	}

	return pdf
}

// docBuilder tracks one document build: the pdf handle, the registered
// font family, and the effective layout scales.
type docBuilder struct {
	pdf    *gofpdf.Fpdf
	tr     func(string) string
	tokens Tokens
	family string

	fontScale    float64
	lineScale    float64
	sectionScale float64
	itemScale    float64
	width        float64
}

func (b *docBuilder) setFont(style string, size float64) {
	b.pdf.SetFont(b.family, style, size*b.fontScale)
}

func (b *docBuilder) setInk(c RGB) {
	b.pdf.SetTextColor(c.R, c.G, c.B)
}

func (b *docBuilder) spacer(pt float64) {
	b.pdf.SetY(b.pdf.GetY() + pt)
}

// header draws the centered name and contact line, then a short
// centered rule under them.
func (b *docBuilder) header(name, contact string) {
	t := b.tokens
	b.setInk(t.BodyInkColor)

	b.setFont("B", t.HeaderFontSize)
	b.pdf.CellFormat(b.width, t.HeaderLeading*b.lineScale, b.tr(name), "", 1, "C", false, 0, "")
	b.spacer(t.HeaderSpaceAfter * b.sectionScale)

	b.setFont("", t.ContactFontSize)
	b.pdf.CellFormat(b.width, t.ContactFontSize*b.lineScale*1.2, b.tr(contact), "", 1, "C", false, 0, "")
	b.spacer(t.ContactSpaceAfter * b.sectionScale)

	left, _, _, _ := b.pdf.GetMargins()
	ruleWidth := b.width * t.HeaderRuleWidthFrac
	x := left + (b.width-ruleWidth)/2
	y := b.pdf.GetY()
	b.pdf.SetDrawColor(t.AccentColor.R, t.AccentColor.G, t.AccentColor.B)
	b.pdf.SetLineWidth(t.HeaderRuleThickness)
	b.pdf.Line(x, y, x+ruleWidth, y)
	b.spacer(t.HeaderRuleSpaceAfter * b.sectionScale)
}

// section draws a section title in the accent color with a full-width
// rule beneath it.
func (b *docBuilder) section(title string) {
	t := b.tokens
	b.spacer(t.SectionSpaceBefore * b.sectionScale)

	b.setInk(t.AccentColor)
	b.setFont("B", t.SectionFontSize)
	b.pdf.CellFormat(b.width, t.SectionLeading*b.lineScale, b.tr(title), "", 1, "L", false, 0, "")

	left, _, _, _ := b.pdf.GetMargins()
	y := b.pdf.GetY() + 1
	b.pdf.SetDrawColor(t.AccentColor.R, t.AccentColor.G, t.AccentColor.B)
	b.pdf.SetLineWidth(t.SectionRuleThickness)
	b.pdf.Line(left, y, left+b.width, y)
	b.spacer(t.SectionSpaceAfter * b.sectionScale)

	b.setInk(t.BodyInkColor)
}

func (b *docBuilder) body(text string) {
	t := b.tokens
	b.setFont("", t.BodyFontSize)
	b.pdf.MultiCell(b.width, t.BodyLeading*b.lineScale, b.tr(text), "", "L", false)
	b.spacer(t.BodySpaceAfter * b.itemScale)
}

// twoColRow draws a bold left cell (72% width) and a right-aligned
// dates cell (28% width) on one line.
func (b *docBuilder) twoColRow(left, right string, fontSize, leading, spaceAfter float64) {
	b.setFont("B", fontSize)
	b.pdf.CellFormat(b.width*0.72, leading*b.lineScale, b.tr(left), "", 0, "L", false, 0, "")
	b.setFont("", b.tokens.DatesFontSize)
	b.pdf.CellFormat(b.width*0.28, leading*b.lineScale, b.tr(right), "", 1, "R", false, 0, "")
	b.spacer(spaceAfter * b.itemScale)
}

func (b *docBuilder) jobDetail(text string) {
	t := b.tokens
	b.setFont("", t.JobDetailFontSize)
	b.pdf.CellFormat(b.width, t.JobDetailLeading*b.lineScale, b.tr(text), "", 1, "L", false, 0, "")
	b.spacer(t.JobDetailSpaceAfter * b.itemScale)
}

func (b *docBuilder) bullets(bullets []string) {
	t := b.tokens
	left, _, _, _ := b.pdf.GetMargins()
	b.setFont("", t.BulletFontSize)
	for _, bullet := range bullets {
		b.pdf.SetX(left + t.BulletIndent)
		b.pdf.MultiCell(b.width-t.BulletLeftIndent, t.BulletLeading*b.lineScale, b.tr("• "+bullet), "", "L", false)
		b.spacer(t.BulletSpaceAfter * b.itemScale)
	}
}

// labeledLine draws "Category: items" with a bold label, wrapping at
// the right margin.
func (b *docBuilder) labeledLine(label, items string) {
	t := b.tokens
	leading := t.BodyLeading * b.lineScale
	b.setFont("B", t.BodyFontSize)
	b.pdf.Write(leading, b.tr(label+": "))
	b.setFont("", t.BodyFontSize)
	b.pdf.Write(leading, b.tr(items))
	b.pdf.Ln(leading)
	b.spacer(t.BodySpaceAfter * b.itemScale)
}

func (b *docBuilder) educationDegree(degree string) {
	t := b.tokens
	b.setFont("", t.EducationFontSize)
	b.pdf.CellFormat(b.width, t.EducationLeading*b.lineScale, b.tr(degree), "", 1, "L", false, 0, "")
	b.spacer(t.EducationSpaceAfter * b.itemScale)
}

func joinNonEmpty(sep string, parts ...string) string {
	var kept []string
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
