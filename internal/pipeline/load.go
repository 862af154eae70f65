package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/resume-fitter/internal/content"
	"github.com/jonathan/resume-fitter/internal/types"
)

// LoadRecord reads a resume source file and returns the validated
// record. JSON files must match the resume schema; markdown and plain
// text are normalized heuristically into the structured form.
func LoadRecord(path string) (*types.ResumeRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		record, err := content.ParseJSON(data)
		if err != nil {
			return nil, fmt.Errorf("invalid resume JSON in %s: %w", path, err)
		}
		return record, nil
	case ".md", ".markdown", ".txt", "":
		return content.Normalize(string(data)), nil
	default:
		return nil, fmt.Errorf("unsupported input format %q (want .json, .md or .txt)", filepath.Ext(path))
	}
}
