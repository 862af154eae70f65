// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/resume-fitter/internal/layout"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Input      string `json:"input,omitempty"`       // Path to the resume source file (.json, .md or .txt)
	OutputDir  string `json:"output_dir,omitempty"`  // Directory for the final PDF
	OutputFile string `json:"output_file,omitempty"` // Bare output file name, no path components

	// Fonts
	FontRegular string `json:"font_regular,omitempty"` // Optional TTF for the regular face
	FontBold    string `json:"font_bold,omitempty"`    // Optional TTF for the bold face

	// Quality
	Keywords []string `json:"keywords,omitempty"` // Keywords that must appear in the rendered text

	// Layout. Zero scale values mean "unset" and defer to compact-mode
	// or neutral defaults; zero margins defer to the template defaults.
	FontSizeScale       float64 `json:"font_size_scale,omitempty"`
	LineHeightScale     float64 `json:"line_height_scale,omitempty"`
	SectionSpacingScale float64 `json:"section_spacing_scale,omitempty"`
	ItemSpacingScale    float64 `json:"item_spacing_scale,omitempty"`
	MarginTopMm         float64 `json:"margin_top_mm,omitempty"`
	MarginBottomMm      float64 `json:"margin_bottom_mm,omitempty"`
	MarginSideInch      float64 `json:"margin_side_inch,omitempty"`
	CompactMode         bool    `json:"compact_mode,omitempty"`

	// Behavior
	AutoFit   bool `json:"auto_fit,omitempty"`   // Search layout candidates instead of a single render
	MaxTrials int  `json:"max_trials,omitempty"` // Trial budget for auto-fit
	Verbose   bool `json:"verbose,omitempty"`    // Print detailed progress information
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.OutputFile != "" && filepath.Base(c.OutputFile) != c.OutputFile {
		return fmt.Errorf("config error: 'output_file' must be a bare file name")
	}

	if c.MaxTrials < 0 {
		return fmt.Errorf("config error: 'max_trials' must be non-negative")
	}
	for name, v := range map[string]float64{
		"margin_top_mm":    c.MarginTopMm,
		"margin_bottom_mm": c.MarginBottomMm,
		"margin_side_inch": c.MarginSideInch,
	} {
		if v < 0 {
			return fmt.Errorf("config error: '%s' must be non-negative", name)
		}
	}

	// Validate file paths exist (if specified)
	if c.Input != "" {
		if _, err := os.Stat(c.Input); os.IsNotExist(err) {
			return fmt.Errorf("config error: input file not found: %s", c.Input)
		}
	}
	for name, path := range map[string]string{
		"font_regular": c.FontRegular,
		"font_bold":    c.FontBold,
	} {
		if path != "" {
			if _, err := os.Stat(path); os.IsNotExist(err) {
				return fmt.Errorf("config error: %s file not found: %s", name, path)
			}
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Input == "" {
		result.Input = defaults.Input
	}
	if result.OutputDir == "" {
		result.OutputDir = defaults.OutputDir
	}
	if result.OutputFile == "" {
		result.OutputFile = defaults.OutputFile
	}
	if result.FontRegular == "" {
		result.FontRegular = defaults.FontRegular
	}
	if result.FontBold == "" {
		result.FontBold = defaults.FontBold
	}
	if len(result.Keywords) == 0 {
		result.Keywords = defaults.Keywords
	}

	// Numeric fields: use default if zero
	if result.MaxTrials == 0 {
		result.MaxTrials = defaults.MaxTrials
	}
	for _, pair := range []struct {
		dst *float64
		def float64
	}{
		{&result.FontSizeScale, defaults.FontSizeScale},
		{&result.LineHeightScale, defaults.LineHeightScale},
		{&result.SectionSpacingScale, defaults.SectionSpacingScale},
		{&result.ItemSpacingScale, defaults.ItemSpacingScale},
		{&result.MarginTopMm, defaults.MarginTopMm},
		{&result.MarginBottomMm, defaults.MarginBottomMm},
		{&result.MarginSideInch, defaults.MarginSideInch},
	} {
		if *pair.dst == 0 {
			*pair.dst = pair.def
		}
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// LayoutSettings converts the configured layout fields into Settings.
// Zero scales stay unset so compact-mode defaults can apply; zero
// margins fall back to the template defaults.
func (c *Config) LayoutSettings() layout.Settings {
	settings := layout.Default()
	settings.CompactMode = c.CompactMode

	if c.FontSizeScale != 0 {
		settings.FontSizeScale = layout.ScaleOf(c.FontSizeScale)
	}
	if c.LineHeightScale != 0 {
		settings.LineHeightScale = layout.ScaleOf(c.LineHeightScale)
	}
	if c.SectionSpacingScale != 0 {
		settings.SectionSpacingScale = layout.ScaleOf(c.SectionSpacingScale)
	}
	if c.ItemSpacingScale != 0 {
		settings.ItemSpacingScale = layout.ScaleOf(c.ItemSpacingScale)
	}
	if c.MarginTopMm != 0 {
		settings.MarginTopMm = c.MarginTopMm
	}
	if c.MarginBottomMm != 0 {
		settings.MarginBottomMm = c.MarginBottomMm
	}
	if c.MarginSideInch != 0 {
		settings.MarginSideInch = c.MarginSideInch
	}
	return settings
}
