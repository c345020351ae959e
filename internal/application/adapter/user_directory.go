// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "context"

// DirectoryUser is one member candidate from the external user directory.
type DirectoryUser struct {
	ID          int
	DisplayName string
}

// UserDirectory suggests member names for group creation. It is strictly
// best-effort: implementations may fail or return nothing, and callers must
// degrade to manual entry. Nothing in the registries depends on it.
type UserDirectory interface {
	// Suggest returns member candidates, possibly none.
	Suggest(ctx context.Context) ([]DirectoryUser, error)
}
