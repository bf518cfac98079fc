package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the remote catalog boundary
var (
	// ErrNotFound indicates the referenced product does not exist
	ErrNotFound = errors.New("product not found")

	// ErrUnavailable indicates a transient network or service failure
	ErrUnavailable = errors.New("catalog service unavailable")
)

// ValidationError indicates malformed input to a create or update request
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Reason)
}

// IsValidation reports whether err is a ValidationError
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
