package service

import (
	"errors"
	"fmt"
)

// Caller-facing error taxonomy. Validation and authorization failures
// are resolved here and never reach the store; store-level failures are
// translated into this taxonomy on the way up.
var (
	// ErrNotFound reports a missing wishlist, item, or account. On the
	// public path this is indistinguishable from a denial.
	ErrNotFound = errors.New("not found")

	// ErrNotOwner is a generic authorization denial. It deliberately
	// carries no detail about why access was refused.
	ErrNotOwner = errors.New("you do not have access to this wishlist")

	// ErrStoreUnavailable wraps transient backend failures. Callers may
	// retry the operation.
	ErrStoreUnavailable = errors.New("storage temporarily unavailable")
)

// ValidationError reports invalid input with enough detail for a
// user-facing message. The operation was not applied, even partially.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func invalidf(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is a validation failure.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
