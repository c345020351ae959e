package expense

import (
	"context"
	"fmt"

	"github.com/expense-tracker/backend/internal/application/adapter"
)

// DeleteExpenseInput represents the input for deleting a ledger record.
type DeleteExpenseInput struct {
	ID string
}

// DeleteExpenseUseCase handles expense deletion logic.
type DeleteExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewDeleteExpenseUseCase creates a new DeleteExpenseUseCase instance.
func NewDeleteExpenseUseCase(expenseRepo adapter.ExpenseRepository) *DeleteExpenseUseCase {
	return &DeleteExpenseUseCase{expenseRepo: expenseRepo}
}

// Execute removes the record with the given ID. Deleting an unknown ID is a
// no-op; records are immutable, so delete and recreate is the only edit path.
func (uc *DeleteExpenseUseCase) Execute(ctx context.Context, input DeleteExpenseInput) error {
	expenses, err := uc.expenseRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to load expenses: %w", err)
	}

	remaining := expenses[:0]
	for _, e := range expenses {
		if e.ID != input.ID {
			remaining = append(remaining, e)
		}
	}

	if len(remaining) == len(expenses) {
		return nil
	}

	if err := uc.expenseRepo.Save(ctx, remaining); err != nil {
		return fmt.Errorf("failed to save expenses: %w", err)
	}
	return nil
}
