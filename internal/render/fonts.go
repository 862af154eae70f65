package render

import (
	"os"

	"github.com/jung-kurt/gofpdf"
)

// Fonts selects the typefaces used by the template. With no files
// configured the built-in Helvetica family is used; when TTF files are
// supplied they are registered as a UTF-8 family and used instead.
type Fonts struct {
	Family      string
	RegularFile string
	BoldFile    string
}

// DefaultFonts returns the built-in Helvetica family.
func DefaultFonts() Fonts {
	return Fonts{Family: "Helvetica"}
}

// hasFiles reports whether both TTF files are configured and readable.
func (f Fonts) hasFiles() bool {
	if f.RegularFile == "" || f.BoldFile == "" {
		return false
	}
	for _, path := range []string{f.RegularFile, f.BoldFile} {
		if _, err := os.Stat(path); err != nil {
			return false
		}
	}
	return true
}

// register installs the font family on the document and returns the
// family name to use. Falls back to Helvetica when the configured TTF
// files are not usable.
func (f Fonts) register(pdf *gofpdf.Fpdf) string {
	if !f.hasFiles() {
		return "Helvetica"
	}
	family := f.Family
	if family == "" {
		family = "Custom"
	}
	pdf.AddUTF8Font(family, "", f.RegularFile)
	pdf.AddUTF8Font(family, "B", f.BoldFile)
	return family
}
