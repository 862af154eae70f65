package quality

import "fmt"

// CheckerError indicates the quality-checking oracle itself failed (the PDF
// could not be opened or parsed), as opposed to a report with failing checks.
// Callers use errors.As to distinguish a broken checker from a bad layout.
type CheckerError struct {
	Message string
	Cause   error
}

func (e *CheckerError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("quality checker error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("quality checker error: %s", e.Message)
}

func (e *CheckerError) Unwrap() error {
	return e.Cause
}
