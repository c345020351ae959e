// Package error defines domain-specific errors for the Expense Tracker application.
package error

import "errors"

// API surface errors.
var (
	// ErrRateLimited is returned when a client exceeds the request budget.
	ErrRateLimited = errors.New("too many requests")
)

// API error codes.
// Format: API-XXYYYY where XX is the error class and YYYY the specific error.
const (
	ErrCodeRateLimited = "API-010001"
)
