// Package error defines domain-specific errors for the Expense Tracker application.
package error

// ValidationError reports a field-level input problem. It is surfaced to the
// caller as a field/message pair for inline display and is never treated as a
// fault: the invoking layer is expected to let the user correct the input.
type ValidationError struct {
	Field   string
	Code    string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a new ValidationError for the given field.
func NewValidationError(field, code, message string, err error) *ValidationError {
	return &ValidationError{
		Field:   field,
		Code:    code,
		Message: message,
		Err:     err,
	}
}
