// Package category contains category-registry use cases.
package category

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/expense-tracker/backend/internal/application/adapter"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

const (
	// MinCategoryNameLength is the minimum allowed length for category names.
	MinCategoryNameLength = 3
	// MaxCategoryNameLength is the maximum allowed length for category names.
	MaxCategoryNameLength = 20
)

// AddCategoryInput represents the input for adding a category.
type AddCategoryInput struct {
	Name string
}

// AddCategoryOutput represents the output of adding a category.
type AddCategoryOutput struct {
	Name string
}

// AddCategoryUseCase handles category creation logic.
type AddCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewAddCategoryUseCase creates a new AddCategoryUseCase instance.
func NewAddCategoryUseCase(categoryRepo adapter.CategoryRepository) *AddCategoryUseCase {
	return &AddCategoryUseCase{categoryRepo: categoryRepo}
}

// Execute validates the name, appends it to the registry and persists the
// updated list. Duplicates are rejected with a case-sensitive comparison.
func (uc *AddCategoryUseCase) Execute(ctx context.Context, input AddCategoryInput) (*AddCategoryOutput, error) {
	name := strings.TrimSpace(input.Name)

	if name == "" {
		return nil, domainerror.NewValidationError(
			"name",
			domainerror.ErrCodeCategoryNameRequired,
			"Category name is required",
			domainerror.ErrCategoryNameRequired,
		)
	}
	if utf8.RuneCountInString(name) < MinCategoryNameLength {
		return nil, domainerror.NewValidationError(
			"name",
			domainerror.ErrCodeCategoryNameTooShort,
			fmt.Sprintf("Category must be at least %d characters", MinCategoryNameLength),
			domainerror.ErrCategoryNameTooShort,
		)
	}
	if utf8.RuneCountInString(name) > MaxCategoryNameLength {
		return nil, domainerror.NewValidationError(
			"name",
			domainerror.ErrCodeCategoryNameTooLong,
			fmt.Sprintf("Category must be less than %d characters", MaxCategoryNameLength),
			domainerror.ErrCategoryNameTooLong,
		)
	}

	categories, err := uc.categoryRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}

	for _, existing := range categories {
		if existing == name {
			return nil, domainerror.NewValidationError(
				"name",
				domainerror.ErrCodeCategoryNameExists,
				"A category with this name already exists",
				domainerror.ErrCategoryNameExists,
			)
		}
	}

	categories = append(categories, name)
	if err := uc.categoryRepo.Save(ctx, categories); err != nil {
		return nil, fmt.Errorf("failed to save categories: %w", err)
	}

	return &AddCategoryOutput{Name: name}, nil
}
