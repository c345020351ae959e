// Package error defines domain-specific errors for the Expense Tracker application.
package error

import "errors"

// Category registry errors.
var (
	// ErrCategoryNameRequired is returned when the category name is empty.
	ErrCategoryNameRequired = errors.New("category name is required")

	// ErrCategoryNameTooShort is returned when the category name is below the minimum length.
	ErrCategoryNameTooShort = errors.New("category name too short")

	// ErrCategoryNameTooLong is returned when the category name exceeds the maximum length.
	ErrCategoryNameTooLong = errors.New("category name too long")

	// ErrCategoryNameExists is returned when attempting to add a category that already exists.
	ErrCategoryNameExists = errors.New("category name already exists")
)

// Category error codes.
// Format: CAT-XXYYYY where XX is the error class and YYYY the specific error.
const (
	ErrCodeCategoryNameRequired = "CAT-010001"
	ErrCodeCategoryNameTooShort = "CAT-010002"
	ErrCodeCategoryNameTooLong  = "CAT-010003"
	ErrCodeCategoryNameExists   = "CAT-010004"
)
