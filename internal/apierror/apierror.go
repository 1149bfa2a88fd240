// Package apierror provides the error taxonomy shared by the repository and
// service layers. Callers branch on these types instead of inspecting raw
// database errors, so internal details (driver errors, SQL state) never leak.
package apierror

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrNotFound is returned when a lookup by ID finds no matching record.
// Callers must treat "not found" as a first-class outcome, not a failure.
var ErrNotFound = errors.New("record not found")

// ValidationError wraps multiple field errors produced while constructing
// or persisting a model.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "validation failed", Fields: fields}
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Detail
	}
	parts := make([]string, 0, len(e.Fields))
	for field, reason := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, reason))
	}
	sort.Strings(parts)
	return e.Detail + ": " + strings.Join(parts, "; ")
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
