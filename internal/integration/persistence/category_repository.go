package persistence

import (
	"context"

	"github.com/expense-tracker/backend/internal/application/adapter"
)

// categoryRepository implements the adapter.CategoryRepository interface.
type categoryRepository struct {
	store adapter.Store
}

// NewCategoryRepository creates a new category repository instance.
func NewCategoryRepository(store adapter.Store) adapter.CategoryRepository {
	return &categoryRepository{store: store}
}

// List returns all categories in insertion order.
func (r *categoryRepository) List(ctx context.Context) ([]string, error) {
	return loadList[string](ctx, r.store, keyCategories)
}

// Save replaces the stored category list.
func (r *categoryRepository) Save(ctx context.Context, categories []string) error {
	return saveList(ctx, r.store, keyCategories, categories)
}
