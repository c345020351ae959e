// Package error defines domain-specific errors for the Expense Tracker application.
package error

import "errors"

// Group registry errors.
var (
	// ErrGroupNameRequired is returned when the group name is empty.
	ErrGroupNameRequired = errors.New("group name is required")

	// ErrGroupNameTooShort is returned when the group name is below the minimum length.
	ErrGroupNameTooShort = errors.New("group name too short")

	// ErrGroupNameInvalid is returned when the group name contains characters
	// other than letters and spaces.
	ErrGroupNameInvalid = errors.New("group name must contain only letters")

	// ErrGroupNameExists is returned when a group with the same name already
	// exists (compared case-insensitively).
	ErrGroupNameExists = errors.New("group name already exists")

	// ErrGroupMembersRequired is returned when a group is created without members.
	ErrGroupMembersRequired = errors.New("group needs at least one member")

	// ErrGroupNotFound is returned when a referenced group does not exist.
	ErrGroupNotFound = errors.New("group not found")
)

// Group error codes.
// Format: GRP-XXYYYY where XX is the error class and YYYY the specific error.
const (
	ErrCodeGroupNameRequired    = "GRP-010001"
	ErrCodeGroupNameTooShort    = "GRP-010002"
	ErrCodeGroupNameInvalid     = "GRP-010003"
	ErrCodeGroupNameExists      = "GRP-010004"
	ErrCodeGroupMembersRequired = "GRP-010005"
	ErrCodeGroupNotFound        = "GRP-010006"
)
