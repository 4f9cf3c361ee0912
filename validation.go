package buildkit

import (
	"fmt"
	"strings"
)

// Validation rules

// ValidateNotBlank validates that a field is neither empty nor whitespace-only.
// Length is not bounded.
func ValidateNotBlank(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return NewValidationError(field, "cannot be empty")
	}
	return nil
}

// ValidateEach applies ValidateNotBlank to every value, reporting the
// offending index in the field name.
func ValidateEach(field string, values []string) error {
	for i, v := range values {
		if err := ValidateNotBlank(fmt.Sprintf("%s[%d]", field, i), v); err != nil {
			return err
		}
	}
	return nil
}

// ValidatePositive validates that a numeric field is strictly positive.
func ValidatePositive(field string, value int) error {
	if value <= 0 {
		return NewValidationError(field, "must be positive")
	}
	return nil
}

// ValidateOneOf validates that value is one of the allowed values.
func ValidateOneOf(field, value string, allowed ...string) error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return NewValidationError(field, fmt.Sprintf("must be one of %s", strings.Join(allowed, ", ")))
}
