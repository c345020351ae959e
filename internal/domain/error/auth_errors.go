// Package error defines domain-specific errors for the Expense Tracker application.
package error

import "errors"

// Authentication errors.
var (
	// ErrInvalidCredentials is returned when the email/password pair does not
	// match the stored account or the built-in default account.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrEmailRequired is returned when the email is missing or malformed.
	ErrEmailRequired = errors.New("a valid email is required")

	// ErrPasswordTooShort is returned when the password is below the minimum length.
	ErrPasswordTooShort = errors.New("password too short")

	// ErrMissingToken is returned when no bearer token accompanies a request.
	ErrMissingToken = errors.New("missing authentication token")

	// ErrInvalidToken is returned when the bearer token is malformed or expired.
	ErrInvalidToken = errors.New("invalid or expired token")
)

// Authentication error codes.
// Format: AUTH-XXYYYY where XX is the error class and YYYY the specific error.
const (
	ErrCodeInvalidCredentials = "AUTH-010001"
	ErrCodeEmailRequired      = "AUTH-010002"
	ErrCodePasswordTooShort   = "AUTH-010003"
	ErrCodeMissingToken       = "AUTH-020001"
	ErrCodeInvalidToken       = "AUTH-020002"
)
