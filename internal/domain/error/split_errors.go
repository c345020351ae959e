// Package error defines domain-specific errors for the Expense Tracker application.
package error

import "errors"

// Split calculator errors.
var (
	// ErrSplitMismatch is returned when the custom split total does not equal
	// the declared expense amount. The comparison is exact; it blocks
	// submission only, never intermediate edits.
	ErrSplitMismatch = errors.New("split total does not match the expense amount")

	// ErrNoSplitMembers is returned when a split is requested over an empty
	// member list.
	ErrNoSplitMembers = errors.New("cannot split across zero members")

	// ErrUnknownSplitMember is returned when a custom split names someone who
	// is not a member of the group.
	ErrUnknownSplitMember = errors.New("split entry names a non-member")
)

// Split error codes.
// Format: SPL-XXYYYY where XX is the error class and YYYY the specific error.
const (
	ErrCodeSplitMismatch      = "SPL-010001"
	ErrCodeNoSplitMembers     = "SPL-010002"
	ErrCodeUnknownSplitMember = "SPL-010003"
)
