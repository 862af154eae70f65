// Package autofit implements the closed-loop layout search: render a
// candidate layout, check its quality, diagnose which direction the next
// candidate should move, and select the best trial by a deterministic
// multi-criterion ordering.
package autofit

import (
	"github.com/jonathan/resume-fitter/internal/quality"
)

// Direction is the corrective direction for the next layout candidates.
type Direction string

// Diagnosis outcomes.
const (
	DirectionShrink Direction = "SHRINK"
	DirectionExpand Direction = "EXPAND"
	DirectionPass   Direction = "PASS"
)

// Diagnose decides the corrective direction from a quality report. Pure
// function: first matching rule wins.
//
//  1. Page overflow always forces SHRINK, regardless of any other
//     failing check.
//  2. A failed bottom margin above its allowed maximum means too much
//     empty space: EXPAND.
//  3. A failed bottom margin below its allowed minimum means content
//     crowds the bottom edge: SHRINK.
//  4. Any other layout-fixable failure defaults to SHRINK.
//  5. Otherwise PASS: only content failures remain (or none), which no
//     layout change can fix.
//
// Margin bounds are read from the bottom_margin check's detail, falling
// back to policy when the detail does not carry them.
func Diagnose(report *quality.Report, policy quality.Thresholds) Direction {
	if pageCount := report.CheckByName(quality.CheckPageCount); pageCount != nil {
		if count, ok := pageCount.DetailFloat("count"); ok && count > 1 {
			return DirectionShrink
		}
	}

	bottom := report.CheckByName(quality.CheckBottomMargin)
	if bottom != nil && !bottom.Passed {
		if bottomMm, ok := bottom.DetailFloat("bottom_mm"); ok {
			maxMm, haveMax := bottom.DetailFloat("max_mm")
			if !haveMax {
				maxMm = policy.MaxBottomMm
			}
			minMm, haveMin := bottom.DetailFloat("min_mm")
			if !haveMin {
				minMm = policy.MinBottomMm
			}
			if bottomMm > maxMm {
				return DirectionExpand
			}
			if bottomMm < minMm {
				return DirectionShrink
			}
		}
		return DirectionShrink
	}

	layoutFixable, _ := report.PartitionFailed()
	if len(layoutFixable) > 0 {
		return DirectionShrink
	}
	return DirectionPass
}
