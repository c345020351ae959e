package category

import (
	"context"
	"fmt"

	"github.com/expense-tracker/backend/internal/application/adapter"
)

// RemoveCategoryInput represents the input for removing a category.
type RemoveCategoryInput struct {
	Name string
}

// RemoveCategoryUseCase handles category removal logic.
type RemoveCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewRemoveCategoryUseCase creates a new RemoveCategoryUseCase instance.
func NewRemoveCategoryUseCase(categoryRepo adapter.CategoryRepository) *RemoveCategoryUseCase {
	return &RemoveCategoryUseCase{categoryRepo: categoryRepo}
}

// Execute removes every occurrence of the named category. Removing a name
// that is not registered is a no-op. Expenses that reference the removed
// category keep their category string.
func (uc *RemoveCategoryUseCase) Execute(ctx context.Context, input RemoveCategoryInput) error {
	categories, err := uc.categoryRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to load categories: %w", err)
	}

	remaining := make([]string, 0, len(categories))
	for _, existing := range categories {
		if existing != input.Name {
			remaining = append(remaining, existing)
		}
	}

	if len(remaining) == len(categories) {
		return nil
	}

	if err := uc.categoryRepo.Save(ctx, remaining); err != nil {
		return fmt.Errorf("failed to save categories: %w", err)
	}
	return nil
}
