// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "context"

// SettingsRepository persists small UI conveniences, currently just the last
// category the user picked when adding an expense.
type SettingsRepository interface {
	// LastCategory returns the most recently chosen category, or "" when unset.
	LastCategory(ctx context.Context) (string, error)

	// SetLastCategory records the most recently chosen category.
	SetLastCategory(ctx context.Context, name string) error
}
