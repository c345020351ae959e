package expense

import (
	"context"
	"fmt"
	"strings"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	"github.com/expense-tracker/backend/internal/domain/valueobject"
)

// Filter narrows the ledger listing. Zero values mean "no constraint"; all
// set constraints must hold for a record to be returned.
type Filter struct {
	// Search matches case-insensitively against description, category and type.
	Search string

	// FromDate and ToDate bound the record date, both inclusive.
	FromDate valueobject.ISODate
	ToDate   valueobject.ISODate

	// Type restricts to personal or group records.
	Type entity.ExpenseType

	// Category requires an exact category match.
	Category string
}

// Matches reports whether the record satisfies every set constraint.
func (f Filter) Matches(e *entity.Expense) bool {
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(e.Description), needle) &&
			!strings.Contains(strings.ToLower(e.Category), needle) &&
			!strings.Contains(strings.ToLower(string(e.Type)), needle) {
			return false
		}
	}
	if f.FromDate != "" && e.Date.Before(f.FromDate) {
		return false
	}
	if f.ToDate != "" && e.Date.After(f.ToDate) {
		return false
	}
	if f.Type != "" && e.Type != f.Type {
		return false
	}
	if f.Category != "" && e.Category != f.Category {
		return false
	}
	return true
}

// ListExpensesInput represents the input for listing ledger records.
type ListExpensesInput struct {
	Filter Filter
}

// ListExpensesOutput represents the output of listing ledger records.
type ListExpensesOutput struct {
	Expenses []*entity.Expense
}

// ListExpensesUseCase handles expense listing logic.
type ListExpensesUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewListExpensesUseCase creates a new ListExpensesUseCase instance.
func NewListExpensesUseCase(expenseRepo adapter.ExpenseRepository) *ListExpensesUseCase {
	return &ListExpensesUseCase{expenseRepo: expenseRepo}
}

// Execute returns the ledger records matching the filter, in creation order.
func (uc *ListExpensesUseCase) Execute(ctx context.Context, input ListExpensesInput) (*ListExpensesOutput, error) {
	expenses, err := uc.expenseRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses: %w", err)
	}

	matched := make([]*entity.Expense, 0, len(expenses))
	for _, e := range expenses {
		if input.Filter.Matches(e) {
			matched = append(matched, e)
		}
	}
	return &ListExpensesOutput{Expenses: matched}, nil
}
