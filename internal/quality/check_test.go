package quality

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func goodFeatures() *features {
	lines := []string{
		"JANE DOE",
		"Seattle, WA • +1 555-010-0199 • jane@example.com • linkedin.com/in/janedoe",
		"SUMMARY",
		"Backend engineer focused on data platforms.",
		"PROFESSIONAL EXPERIENCE",
		"Example Corp 2021 - Present",
		"• Reduced pipeline latency by 35% through incremental materialization.",
		"TECHNICAL SKILLS",
		"Languages: Go, Python",
		"EDUCATION",
		"Example University M.S. Computer Science",
	}
	text := ""
	for i, line := range lines {
		if i > 0 {
			text += "\n"
		}
		text += line
	}
	return &features{
		PageCount: 1,
		WidthMm:   210.0,
		HeightMm:  297.0,
		Text:      text,
		Lines:     lines,
		Margins:   &pageMargins{TopMm: 5.2, BottomMm: 6.1, LeftMm: 15.3, RightMm: 15.4},
	}
}

func TestBuildReport_AllChecksPass(t *testing.T) {
	report := buildReport(goodFeatures(), DefaultThresholds(), nil)

	assert.Equal(t, VerdictPass, report.Verdict)
	assert.Len(t, report.Checks, 12)
	for _, check := range report.Checks {
		assert.True(t, check.Passed, "check %s should pass", check.Name)
	}
}

func TestBuildReport_MultiPageFailsPageCount(t *testing.T) {
	feats := goodFeatures()
	feats.PageCount = 2

	report := buildReport(feats, DefaultThresholds(), nil)

	assert.Equal(t, VerdictNeedsAdjustment, report.Verdict)
	check := report.CheckByName(CheckPageCount)
	require.NotNil(t, check)
	assert.False(t, check.Passed)
	count, ok := check.DetailFloat("count")
	require.True(t, ok)
	assert.Equal(t, 2.0, count)
}

func TestBuildReport_NonA4FailsPageSize(t *testing.T) {
	feats := goodFeatures()
	feats.WidthMm = 215.9 // US Letter
	feats.HeightMm = 279.4

	report := buildReport(feats, DefaultThresholds(), nil)
	check := report.CheckByName(CheckPageSize)
	require.NotNil(t, check)
	assert.False(t, check.Passed)
}

func TestBuildReport_MarginThresholdsRecordedInDetail(t *testing.T) {
	feats := goodFeatures()
	feats.Margins.BottomMm = 24.7 // too much empty space

	report := buildReport(feats, DefaultThresholds(), nil)
	check := report.CheckByName(CheckBottomMargin)
	require.NotNil(t, check)
	assert.False(t, check.Passed)

	bottom, ok := check.DetailFloat("bottom_mm")
	require.True(t, ok)
	assert.Equal(t, 24.7, bottom)
	maxMm, ok := check.DetailFloat("max_mm")
	require.True(t, ok)
	assert.Equal(t, 8.0, maxMm)
	minMm, ok := check.DetailFloat("min_mm")
	require.True(t, ok)
	assert.Equal(t, 3.0, minMm)
}

func TestBuildReport_UnavailableMarginsPassAsUnverifiable(t *testing.T) {
	feats := goodFeatures()
	feats.Margins = nil

	report := buildReport(feats, DefaultThresholds(), nil)
	for _, name := range []string{CheckBottomMargin, CheckTopMargin, CheckSideMargins} {
		check := report.CheckByName(name)
		require.NotNil(t, check)
		assert.True(t, check.Passed, "%s should pass when unverifiable", name)
		assert.Equal(t, false, check.Detail["available"])
	}
}

func TestBuildReport_KeywordCoverage(t *testing.T) {
	feats := goodFeatures()

	report := buildReport(feats, DefaultThresholds(), []string{"Go", "Kafka"})
	check := report.CheckByName(CheckKeywordCoverage)
	require.NotNil(t, check)
	assert.False(t, check.Passed)
	assert.Equal(t, []string{"Kafka"}, check.Detail["missing"])

	report = buildReport(feats, DefaultThresholds(), []string{"Go", "Python"})
	check = report.CheckByName(CheckKeywordCoverage)
	require.NotNil(t, check)
	assert.True(t, check.Passed)
}

func TestBuildReport_LayoutWarningsNeverAffectVerdict(t *testing.T) {
	feats := goodFeatures()
	feats.Lines = append(feats.Lines, "duplicate line", "duplicate line")
	feats.Text += "\nduplicate line\nduplicate line"

	report := buildReport(feats, DefaultThresholds(), nil)
	assert.Equal(t, VerdictPass, report.Verdict)

	check := report.CheckByName(CheckLayoutWarnings)
	require.NotNil(t, check)
	assert.True(t, check.Passed)
	warnings, ok := check.Detail["warnings"].([]string)
	require.True(t, ok)
	assert.NotEmpty(t, warnings)
}

func TestCheckSets_DisjointAndCoverEleven(t *testing.T) {
	for name := range LayoutFixableChecks {
		assert.False(t, ContentOnlyChecks[name], "%s must not appear in both sets", name)
	}
	assert.Len(t, LayoutFixableChecks, 4)
	assert.Len(t, ContentOnlyChecks, 7)
	assert.False(t, LayoutFixableChecks[CheckLayoutWarnings])
	assert.False(t, ContentOnlyChecks[CheckLayoutWarnings])
}

func TestPartitionFailed(t *testing.T) {
	report := &Report{
		Verdict: VerdictNeedsAdjustment,
		Checks: []Check{
			{Name: CheckPageCount, Passed: false},
			{Name: CheckPlaceholderContent, Passed: false},
			{Name: CheckBottomMargin, Passed: true},
			{Name: CheckContactInfo, Passed: false},
			{Name: CheckLayoutWarnings, Passed: false}, // never partitioned
		},
	}

	layoutFixable, contentOnly := report.PartitionFailed()
	assert.Equal(t, []string{CheckPageCount}, layoutFixable)
	assert.Equal(t, []string{CheckPlaceholderContent, CheckContactInfo}, contentOnly)
}
