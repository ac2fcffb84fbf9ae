package validation

import (
	"errors"
	"strings"
)

// Errors is the complete batch of violations of one request.
type Errors struct {
	Violations []Violation
}

func (e *Errors) Error() string {
	parts := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		parts[i] = v.String()
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// NewErrors returns nil when there is nothing to report.
func NewErrors(violations ...Violation) error {
	if len(violations) == 0 {
		return nil
	}
	return &Errors{Violations: violations}
}

// AsErrors unwraps a validation batch from err.
func AsErrors(err error) (*Errors, bool) {
	var verrs *Errors
	if errors.As(err, &verrs) {
		return verrs, true
	}
	return nil, false
}
