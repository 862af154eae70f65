package quality

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
)

const (
	pointsPerMm = 72.0 / 25.4

	// Approximate vertical metrics for the Helvetica family, used to turn
	// baseline positions into word top/bottom edges.
	ascentRatio  = 0.72
	descentRatio = 0.21

	// Text items whose baselines differ by less than this are treated as the
	// same visual line.
	lineToleranceGlyphs = 2.0
)

// pageMargins holds estimated distances from the text bounding box to the
// page edges, in millimeters.
type pageMargins struct {
	TopMm    float64
	BottomMm float64
	LeftMm   float64
	RightMm  float64
}

// features holds everything extracted from a PDF that the report builder
// needs. It re-derives all values from the file itself, independent of the
// renderer that produced it.
type features struct {
	PageCount int
	WidthMm   float64
	HeightMm  float64
	Text      string
	Lines     []string
	Margins   *pageMargins
}

func pointsToMm(pt float64) float64 {
	return pt / pointsPerMm
}

// extractFeatures opens the PDF and derives page geometry, text content and
// margin estimates. Any failure is a CheckerError: the oracle could not run.
func extractFeatures(path string) (*features, error) {
	file, reader, err := pdf.Open(path)
	if err != nil {
		return nil, &CheckerError{
			Message: fmt.Sprintf("failed to open PDF: %s", path),
			Cause:   err,
		}
	}
	defer func() { _ = file.Close() }()

	pageCount := reader.NumPage()
	if pageCount < 1 {
		return nil, &CheckerError{Message: fmt.Sprintf("PDF has no pages: %s", path)}
	}

	firstPage := reader.Page(1)
	if firstPage.V.IsNull() {
		return nil, &CheckerError{Message: fmt.Sprintf("failed to read first page: %s", path)}
	}

	widthPt, heightPt, err := pageSizePoints(firstPage)
	if err != nil {
		return nil, &CheckerError{
			Message: fmt.Sprintf("failed to read page size: %s", path),
			Cause:   err,
		}
	}

	var allLines []string
	for num := 1; num <= pageCount; num++ {
		page := reader.Page(num)
		if page.V.IsNull() {
			continue
		}
		allLines = append(allLines, textLines(page)...)
	}

	return &features{
		PageCount: pageCount,
		WidthMm:   pointsToMm(widthPt),
		HeightMm:  pointsToMm(heightPt),
		Text:      strings.Join(allLines, "\n"),
		Lines:     allLines,
		Margins:   estimateMargins(firstPage, widthPt, heightPt),
	}, nil
}

// pageSizePoints reads the media box, following Parent links when the page
// inherits it from the page tree.
func pageSizePoints(page pdf.Page) (width, height float64, err error) {
	node := page.V
	for i := 0; i < 16 && !node.IsNull(); i++ {
		box := node.Key("MediaBox")
		if !box.IsNull() && box.Len() == 4 {
			width = box.Index(2).Float64() - box.Index(0).Float64()
			height = box.Index(3).Float64() - box.Index(1).Float64()
			return width, height, nil
		}
		node = node.Key("Parent")
	}
	return 0, 0, fmt.Errorf("no MediaBox found in page tree")
}

// textLines reconstructs visual lines from positioned text items. The
// reader yields one item per glyph, so items on a line are concatenated
// directly; a space is inserted only across a real horizontal gap (a
// word break encoded as positioning rather than a space glyph, or a
// column boundary). Empty lines are dropped.
func textLines(page pdf.Page) []string {
	items := page.Content().Text
	if len(items) == 0 {
		return nil
	}

	sorted := make([]pdf.Text, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Y != sorted[j].Y {
			return sorted[i].Y > sorted[j].Y // PDF origin is bottom-left
		}
		return sorted[i].X < sorted[j].X
	})

	var lines []string
	var current strings.Builder
	currentY := sorted[0].Y
	prevEndX := 0.0
	flush := func() {
		if line := strings.TrimSpace(current.String()); line != "" {
			lines = append(lines, line)
		}
		current.Reset()
	}

	for _, item := range sorted {
		if currentY-item.Y > lineToleranceGlyphs {
			flush()
			currentY = item.Y
			prevEndX = 0
		}
		if current.Len() > 0 && item.X-prevEndX > wordGapPoints(item.FontSize) {
			current.WriteByte(' ')
		}
		current.WriteString(item.S)
		prevEndX = item.X + item.W
	}
	flush()

	return lines
}

// wordGapPoints is the horizontal gap between consecutive glyphs beyond
// which a word break is assumed. About half a Helvetica space advance;
// kerning adjustments within a word stay well below it.
func wordGapPoints(fontSize float64) float64 {
	if fontSize <= 0 {
		return 1.0
	}
	return fontSize * 0.14
}

// estimateMargins derives the distance between the text bounding box and the
// page edges on the given page. Returns nil when the page carries no
// positioned text, in which case margin checks are skipped as unverifiable.
func estimateMargins(page pdf.Page, widthPt, heightPt float64) *pageMargins {
	items := page.Content().Text
	if len(items) == 0 {
		return nil
	}

	var minX, maxX, minBottom, maxTop float64
	first := true
	for _, item := range items {
		if strings.TrimSpace(item.S) == "" {
			continue
		}
		top := item.Y + item.FontSize*ascentRatio
		bottom := item.Y - item.FontSize*descentRatio
		right := item.X + item.W
		if first {
			minX, maxX, minBottom, maxTop = item.X, right, bottom, top
			first = false
			continue
		}
		minX = min(minX, item.X)
		maxX = max(maxX, right)
		minBottom = min(minBottom, bottom)
		maxTop = max(maxTop, top)
	}
	if first {
		return nil
	}

	return &pageMargins{
		TopMm:    pointsToMm(heightPt - maxTop),
		BottomMm: pointsToMm(minBottom),
		LeftMm:   pointsToMm(minX),
		RightMm:  pointsToMm(widthPt - maxX),
	}
}
