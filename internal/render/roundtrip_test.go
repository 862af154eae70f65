package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-fitter/internal/layout"
	"github.com/jonathan/resume-fitter/internal/quality"
)

// Renders a real PDF and runs the quality checker over it. Only the
// structural checks are asserted; exact margin measurements depend on
// glyph metrics and are covered by the checker's own tests.
func TestRenderedPDFPassesStructuralChecks(t *testing.T) {
	path, err := NewRenderer().Render(sampleRecord(), layout.Default(), t.TempDir(), "resume.pdf")
	require.NoError(t, err)

	report, err := quality.NewChecker(quality.DefaultThresholds()).Check(path, quality.Options{})
	require.NoError(t, err)

	for _, name := range []string{
		quality.CheckPageCount,
		quality.CheckPageSize,
		quality.CheckTextLayer,
		quality.CheckHTMLLeak,
		quality.CheckPlaceholderContent,
		quality.CheckSectionCompleteness,
		quality.CheckContactInfo,
	} {
		check := report.CheckByName(name)
		require.NotNil(t, check, "check %s missing", name)
		assert.True(t, check.Passed, "check %s failed: %v", name, check.Detail)
	}
}

func TestRenderedPDFKeywordCoverage(t *testing.T) {
	path, err := NewRenderer().Render(sampleRecord(), layout.Default(), t.TempDir(), "resume.pdf")
	require.NoError(t, err)

	report, err := quality.NewChecker(quality.DefaultThresholds()).Check(path, quality.Options{
		Keywords: []string{"Kafka", "nonexistent-keyword"},
	})
	require.NoError(t, err)

	check := report.CheckByName(quality.CheckKeywordCoverage)
	require.NotNil(t, check)
	assert.False(t, check.Passed)
}
