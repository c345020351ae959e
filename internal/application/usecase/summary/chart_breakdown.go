package summary

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/adapter"
)

// ChartBreakdownInput represents the input for the chart breakdown.
// MonthOfYear is the two-digit month component ("01".."12"); expenses from
// that month of ANY year are included. Empty means all months.
type ChartBreakdownInput struct {
	MonthOfYear string
}

// ChartBreakdownOutput represents category totals across all expense types.
type ChartBreakdownOutput struct {
	Totals []CategoryTotal
	Sum    decimal.Decimal
}

// ChartBreakdownUseCase aggregates spending by category for chart rendering.
type ChartBreakdownUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewChartBreakdownUseCase creates a new ChartBreakdownUseCase instance.
func NewChartBreakdownUseCase(expenseRepo adapter.ExpenseRepository) *ChartBreakdownUseCase {
	return &ChartBreakdownUseCase{expenseRepo: expenseRepo}
}

// Execute sums personal and group expenses by category, optionally filtered
// to one month of the year across all years. Categories appear in first-seen
// ledger order.
func (uc *ChartBreakdownUseCase) Execute(ctx context.Context, input ChartBreakdownInput) (*ChartBreakdownOutput, error) {
	expenses, err := uc.expenseRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses: %w", err)
	}

	totals := make(map[string]decimal.Decimal)
	var order []string
	sum := decimal.Zero

	for _, e := range expenses {
		if input.MonthOfYear != "" && e.Date.MonthOfYear() != input.MonthOfYear {
			continue
		}
		if _, seen := totals[e.Category]; !seen {
			order = append(order, e.Category)
		}
		totals[e.Category] = totals[e.Category].Add(e.Amount)
		sum = sum.Add(e.Amount)
	}

	out := &ChartBreakdownOutput{Sum: sum}
	for _, category := range order {
		out.Totals = append(out.Totals, CategoryTotal{Category: category, Total: totals[category]})
	}
	return out, nil
}
