// Package error defines domain-specific errors for the Expense Tracker application.
package error

import "errors"

// Expense ledger errors.
var (
	// ErrDateRequired is returned when the expense date is missing.
	ErrDateRequired = errors.New("date is required")

	// ErrDateInvalid is returned when the expense date is not a valid ISO date.
	ErrDateInvalid = errors.New("date is not a valid ISO date")

	// ErrDateInFuture is returned when the expense date lies after today.
	ErrDateInFuture = errors.New("date must not be in the future")

	// ErrAmountTooSmall is returned when the amount is below the minimum of 1.
	ErrAmountTooSmall = errors.New("amount must be at least 1")

	// ErrDescriptionTooShort is returned when a non-empty description is
	// shorter than the minimum length.
	ErrDescriptionTooShort = errors.New("description too short")

	// ErrExpenseCategoryRequired is returned when the expense has no category.
	ErrExpenseCategoryRequired = errors.New("category is required")

	// ErrInvalidExpenseType is returned when the expense type is neither
	// personal nor group.
	ErrInvalidExpenseType = errors.New("invalid expense type")

	// ErrExpenseGroupRequired is returned when a group expense names no group.
	ErrExpenseGroupRequired = errors.New("group is required for group expenses")

	// ErrSplitTypeRequired is returned when a group expense has no split type.
	ErrSplitTypeRequired = errors.New("split type is required for group expenses")

	// ErrInvalidSplitType is returned when the split type is neither equal nor custom.
	ErrInvalidSplitType = errors.New("invalid split type")
)

// Expense error codes.
// Format: EXP-XXYYYY where XX is the error class and YYYY the specific error.
const (
	ErrCodeDateRequired            = "EXP-010001"
	ErrCodeDateInvalid             = "EXP-010002"
	ErrCodeDateInFuture            = "EXP-010003"
	ErrCodeAmountTooSmall          = "EXP-010004"
	ErrCodeDescriptionTooShort     = "EXP-010005"
	ErrCodeExpenseCategoryRequired = "EXP-010006"
	ErrCodeInvalidExpenseType      = "EXP-010007"
	ErrCodeExpenseGroupRequired    = "EXP-010008"
	ErrCodeSplitTypeRequired       = "EXP-010009"
	ErrCodeInvalidSplitType        = "EXP-010010"
)
