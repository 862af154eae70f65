// Package quality independently verifies rendered resume PDFs: page geometry,
// text extractability, margins, and content presence.
package quality

// Verdict is the aggregate classification of a quality report.
type Verdict string

// Report verdicts. A report passes only when every critical check passes.
const (
	VerdictPass            Verdict = "PASS"
	VerdictNeedsAdjustment Verdict = "NEEDS-ADJUSTMENT"
)

// Check names. The eleven critical checks are partitioned into layout-fixable
// and content-only sets; layout_warnings is informational and always passes.
const (
	CheckPageCount           = "page_count"
	CheckPageSize            = "page_size"
	CheckTextLayer           = "text_layer"
	CheckHTMLLeak            = "html_leak"
	CheckPlaceholderContent  = "placeholder_content"
	CheckBottomMargin        = "bottom_margin"
	CheckTopMargin           = "top_margin"
	CheckSideMargins         = "side_margins"
	CheckSectionCompleteness = "section_completeness"
	CheckContactInfo         = "contact_info"
	CheckKeywordCoverage     = "keyword_coverage"
	CheckLayoutWarnings      = "layout_warnings"
)

// LayoutFixableChecks are critical checks whose failure can potentially be
// resolved by changing spacing or margins alone.
var LayoutFixableChecks = map[string]bool{
	CheckPageCount:    true,
	CheckBottomMargin: true,
	CheckTopMargin:    true,
	CheckSideMargins:  true,
}

// ContentOnlyChecks are critical checks whose failure requires changing the
// underlying content, not the layout.
var ContentOnlyChecks = map[string]bool{
	CheckPageSize:            true,
	CheckTextLayer:           true,
	CheckHTMLLeak:            true,
	CheckPlaceholderContent:  true,
	CheckSectionCompleteness: true,
	CheckContactInfo:         true,
	CheckKeywordCoverage:     true,
}

// Check is a single named pass/fail result with a detail payload.
type Check struct {
	Name   string         `json:"name"`
	Passed bool           `json:"passed"`
	Detail map[string]any `json:"detail"`
}

// Report is the full quality report for one rendered PDF.
type Report struct {
	Verdict Verdict `json:"verdict"`
	Checks  []Check `json:"checks"`
}

// CheckByName returns the named check, or nil when absent.
func (r *Report) CheckByName(name string) *Check {
	for i := range r.Checks {
		if r.Checks[i].Name == name {
			return &r.Checks[i]
		}
	}
	return nil
}

// FailedChecks returns the names of all failed checks in report order.
func (r *Report) FailedChecks() []string {
	var failed []string
	for _, check := range r.Checks {
		if !check.Passed {
			failed = append(failed, check.Name)
		}
	}
	return failed
}

// PartitionFailed splits failed check names into layout-fixable and
// content-only groups, preserving report order. Non-critical checks are
// excluded from both.
func (r *Report) PartitionFailed() (layoutFixable, contentOnly []string) {
	for _, name := range r.FailedChecks() {
		switch {
		case LayoutFixableChecks[name]:
			layoutFixable = append(layoutFixable, name)
		case ContentOnlyChecks[name]:
			contentOnly = append(contentOnly, name)
		}
	}
	return layoutFixable, contentOnly
}

// DetailFloat reads a numeric detail value, tolerating the float64 shape
// JSON decoding produces as well as native ints.
func (c *Check) DetailFloat(key string) (float64, bool) {
	if c == nil || c.Detail == nil {
		return 0, false
	}
	switch v := c.Detail[key].(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}
