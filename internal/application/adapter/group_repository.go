// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// GroupRepository persists the group registry.
type GroupRepository interface {
	// List returns all groups in creation order.
	List(ctx context.Context) ([]*entity.Group, error)

	// Save replaces the stored group list.
	Save(ctx context.Context, groups []*entity.Group) error
}

// StagingRepository persists the member staging list: names accumulated
// before a group is created. It is a working set, not part of any group.
type StagingRepository interface {
	// List returns the staged member names in the order they were added.
	List(ctx context.Context) ([]string, error)

	// Save replaces the staged member list.
	Save(ctx context.Context, members []string) error

	// Clear drops the staging list entirely.
	Clear(ctx context.Context) error
}
