package persistence

import (
	"context"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
)

// expenseRepository implements the adapter.ExpenseRepository interface.
type expenseRepository struct {
	store adapter.Store
}

// NewExpenseRepository creates a new expense repository instance.
func NewExpenseRepository(store adapter.Store) adapter.ExpenseRepository {
	return &expenseRepository{store: store}
}

// List returns all expenses in creation order.
func (r *expenseRepository) List(ctx context.Context) ([]*entity.Expense, error) {
	return loadList[*entity.Expense](ctx, r.store, keyExpenses)
}

// Save replaces the stored ledger.
func (r *expenseRepository) Save(ctx context.Context, expenses []*entity.Expense) error {
	return saveList(ctx, r.store, keyExpenses, expenses)
}
