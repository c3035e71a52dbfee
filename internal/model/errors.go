package model

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError reports a rejected draft field. It is the only failure kind
// raised by the session and order operations themselves.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Message)
}

// NewValidationError returns a *ValidationError for field.
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// IsValidation reports whether err wraps a *ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
