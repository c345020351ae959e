package persistence

import (
	"context"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
)

// groupRepository implements the adapter.GroupRepository interface.
type groupRepository struct {
	store adapter.Store
}

// NewGroupRepository creates a new group repository instance.
func NewGroupRepository(store adapter.Store) adapter.GroupRepository {
	return &groupRepository{store: store}
}

// List returns all groups in creation order.
func (r *groupRepository) List(ctx context.Context) ([]*entity.Group, error) {
	return loadList[*entity.Group](ctx, r.store, keyGroups)
}

// Save replaces the stored group list.
func (r *groupRepository) Save(ctx context.Context, groups []*entity.Group) error {
	return saveList(ctx, r.store, keyGroups, groups)
}

// stagingRepository implements the adapter.StagingRepository interface.
type stagingRepository struct {
	store adapter.Store
}

// NewStagingRepository creates a new staging repository instance.
func NewStagingRepository(store adapter.Store) adapter.StagingRepository {
	return &stagingRepository{store: store}
}

// List returns the staged member names in the order they were added.
func (r *stagingRepository) List(ctx context.Context) ([]string, error) {
	return loadList[string](ctx, r.store, keyStaging)
}

// Save replaces the staged member list.
func (r *stagingRepository) Save(ctx context.Context, members []string) error {
	return saveList(ctx, r.store, keyStaging, members)
}

// Clear drops the staging list entirely.
func (r *stagingRepository) Clear(ctx context.Context) error {
	return r.store.Remove(ctx, keyStaging)
}
