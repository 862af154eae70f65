// Package content normalizes raw resume text into structured records,
// validates them, and runs layout-independent wording checks.
package content

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/xeipuuv/gojsonschema"

	"github.com/jonathan/resume-fitter/internal/types"
)

//go:embed resume.schema.json
var resumeSchemaJSON []byte

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidateRecord checks that a resume record has every required field with
// the right shape. Returns a descriptive error naming the first offending
// field, suitable for surfacing verbatim to the caller.
func ValidateRecord(record *types.ResumeRecord) error {
	if record == nil {
		return fmt.Errorf("resume content is nil")
	}

	err := validate.Struct(record)
	if err == nil {
		return nil
	}

	var errs validator.ValidationErrors
	if ok := asValidationErrors(err, &errs); ok && len(errs) > 0 {
		first := errs[0]
		return fmt.Errorf("resume content invalid: field %s failed %q validation", fieldPath(first), first.Tag())
	}
	return fmt.Errorf("resume content invalid: %w", err)
}

func asValidationErrors(err error, target *validator.ValidationErrors) bool {
	errs, ok := err.(validator.ValidationErrors)
	if ok {
		*target = errs
	}
	return ok
}

// fieldPath renders a validator namespace like
// "ResumeRecord.Experience[0].Bullets" without the root struct name.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		return ns[idx+1:]
	}
	return ns
}

// ParseJSON decodes and validates raw resume JSON. Schema validation runs
// first so malformed documents fail with precise messages before struct
// decoding.
func ParseJSON(data []byte) (*types.ResumeRecord, error) {
	schemaLoader := gojsonschema.NewBytesLoader(resumeSchemaJSON)
	documentLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return nil, fmt.Errorf("failed to validate resume JSON: %w", err)
	}
	if !result.Valid() {
		messages := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			messages = append(messages, desc.String())
		}
		return nil, fmt.Errorf("resume JSON does not match schema: %s", strings.Join(messages, "; "))
	}

	var record types.ResumeRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("failed to decode resume JSON: %w", err)
	}
	if err := ValidateRecord(&record); err != nil {
		return nil, err
	}
	return &record, nil
}
