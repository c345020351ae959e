// Package summary contains read-side aggregation use cases. Everything here
// recomputes from the ledger on each call; no aggregate state is stored.
package summary

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
)

// CategoryTotal is one category's spending total.
type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
}

// CategoryTotalsInput represents the input for the personal category summary.
// Month is a "YYYY-MM" prefix; Search narrows by description or category.
type CategoryTotalsInput struct {
	Month  string
	Search string
}

// CategoryTotalsOutput represents the per-category totals plus their sum.
type CategoryTotalsOutput struct {
	Totals []CategoryTotal
	Sum    decimal.Decimal
}

// CategoryTotalsUseCase aggregates personal spending by category.
type CategoryTotalsUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewCategoryTotalsUseCase creates a new CategoryTotalsUseCase instance.
func NewCategoryTotalsUseCase(expenseRepo adapter.ExpenseRepository) *CategoryTotalsUseCase {
	return &CategoryTotalsUseCase{expenseRepo: expenseRepo}
}

// Execute sums personal expenses by category for the given month. Categories
// appear in first-seen ledger order.
func (uc *CategoryTotalsUseCase) Execute(ctx context.Context, input CategoryTotalsInput) (*CategoryTotalsOutput, error) {
	expenses, err := uc.expenseRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses: %w", err)
	}

	needle := strings.ToLower(input.Search)
	totals := make(map[string]decimal.Decimal)
	var order []string
	sum := decimal.Zero

	for _, e := range expenses {
		if e.Type != entity.ExpenseTypePersonal {
			continue
		}
		if input.Month != "" && !e.Date.InMonth(input.Month) {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(e.Description), needle) &&
			!strings.Contains(strings.ToLower(e.Category), needle) {
			continue
		}

		if _, seen := totals[e.Category]; !seen {
			order = append(order, e.Category)
		}
		totals[e.Category] = totals[e.Category].Add(e.Amount)
		sum = sum.Add(e.Amount)
	}

	out := &CategoryTotalsOutput{Sum: sum}
	for _, category := range order {
		out.Totals = append(out.Totals, CategoryTotal{Category: category, Total: totals[category]})
	}
	return out, nil
}
