package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-fitter/internal/config"
	"github.com/jonathan/resume-fitter/internal/layout"
)

func TestLoadRenderConfig_Defaults(t *testing.T) {
	cfg, err := loadRenderConfig(renderCommand)
	require.NoError(t, err)

	assert.Equal(t, "resume_output", cfg.OutputDir)
	assert.Equal(t, "resume.pdf", cfg.OutputFile)
	assert.Equal(t, 12, cfg.MaxTrials)
	assert.False(t, cfg.AutoFit)
}

func TestLoadRenderConfig_FlagOverrides(t *testing.T) {
	require.NoError(t, renderCommand.ParseFlags([]string{
		"--input", "resume.md",
		"--output-file", "custom.pdf",
		"--font-scale", "0.9",
		"--compact",
		"--auto-fit",
		"--auto-fit-max-trials", "6",
		"--keywords", "Go,Kafka",
	}))

	cfg, err := loadRenderConfig(renderCommand)
	require.NoError(t, err)

	assert.Equal(t, "resume.md", cfg.Input)
	assert.Equal(t, "custom.pdf", cfg.OutputFile)
	assert.InDelta(t, 0.9, cfg.FontSizeScale, 1e-9)
	assert.True(t, cfg.CompactMode)
	assert.True(t, cfg.AutoFit)
	assert.Equal(t, 6, cfg.MaxTrials)
	assert.Equal(t, []string{"Go", "Kafka"}, cfg.Keywords)
}

func TestLoadRenderConfig_ConfigFileWithFlagPriority(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(configPath, []byte(`{
		"output_file": "from_config.pdf",
		"margin_top_mm": 4.0
	}`), 0o644))

	renderConfigPath = configPath
	defer func() { renderConfigPath = "" }()

	require.NoError(t, renderCommand.ParseFlags([]string{
		"--output-file", "from_flag.pdf",
	}))

	cfg, err := loadRenderConfig(renderCommand)
	require.NoError(t, err)

	// Flags beat config values; config beats defaults.
	assert.Equal(t, "from_flag.pdf", cfg.OutputFile)
	assert.Equal(t, 4.0, cfg.MarginTopMm)
}

func TestLayoutHint_NilWhenNothingConfigured(t *testing.T) {
	cfg := config.Config{Input: "resume.md", OutputFile: "resume.pdf", MaxTrials: 12}
	assert.Nil(t, layoutHint(&cfg))
}

func TestLayoutHint_CompactMode(t *testing.T) {
	cfg := config.Config{CompactMode: true}
	hint := layoutHint(&cfg)
	require.NotNil(t, hint)
	assert.True(t, hint.CompactMode)
	assert.Nil(t, hint.FontSizeScale)
	assert.InDelta(t, 0.92, hint.EffectiveFontSizeScale(), 1e-9)
}

func TestLayoutHint_PartialScales(t *testing.T) {
	cfg := config.Config{FontSizeScale: 0.95, MarginSideInch: 0.55}
	hint := layoutHint(&cfg)
	require.NotNil(t, hint)
	require.NotNil(t, hint.FontSizeScale)
	assert.InDelta(t, 0.95, *hint.FontSizeScale, 1e-9)
	assert.Nil(t, hint.LineHeightScale)
	assert.Equal(t, 0.55, hint.MarginSideInch)
	assert.Equal(t, layout.DefaultMarginTopMm, hint.MarginTopMm)
}
