// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "context"

// CategoryRepository persists the category registry. Categories are plain
// labels kept in insertion order; every mutation rewrites the whole list.
type CategoryRepository interface {
	// List returns all categories in insertion order.
	List(ctx context.Context) ([]string, error)

	// Save replaces the stored category list.
	Save(ctx context.Context, categories []string) error
}
