// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// ExpenseRepository persists the expense ledger.
type ExpenseRepository interface {
	// List returns all expenses in creation order.
	List(ctx context.Context) ([]*entity.Expense, error)

	// Save replaces the stored ledger.
	Save(ctx context.Context, expenses []*entity.Expense) error
}
