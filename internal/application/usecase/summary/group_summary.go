package summary

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
)

// GroupBucket aggregates the group expenses recorded under one groupId.
// Since every recorded group expense carries its own groupId, a bucket is
// one recorded expense in practice; the shape still tolerates older data
// where several records shared an id.
type GroupBucket struct {
	GroupID   string
	GroupName string
	SplitType entity.SplitType
	Total     decimal.Decimal
	YourShare decimal.Decimal
	OwedToYou decimal.Decimal
	Shares    map[string]decimal.Decimal
}

// GroupSummaryInput represents the input for the monthly group summary.
type GroupSummaryInput struct {
	Month string
}

// GroupSummaryOutput represents the per-group buckets plus overall totals.
type GroupSummaryOutput struct {
	Buckets        []*GroupBucket
	TotalYourShare decimal.Decimal
	TotalOwedToYou decimal.Decimal
}

// GroupSummaryUseCase aggregates group expenses for a month.
type GroupSummaryUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewGroupSummaryUseCase creates a new GroupSummaryUseCase instance.
func NewGroupSummaryUseCase(expenseRepo adapter.ExpenseRepository) *GroupSummaryUseCase {
	return &GroupSummaryUseCase{expenseRepo: expenseRepo}
}

// Execute buckets the month's group expenses by groupId in first-seen order.
// Shares come from the snapshots frozen at recording time, so the summary is
// stable even after the underlying group changes or disappears.
func (uc *GroupSummaryUseCase) Execute(ctx context.Context, input GroupSummaryInput) (*GroupSummaryOutput, error) {
	expenses, err := uc.expenseRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses: %w", err)
	}

	buckets := make(map[string]*GroupBucket)
	out := &GroupSummaryOutput{
		TotalYourShare: decimal.Zero,
		TotalOwedToYou: decimal.Zero,
	}

	for _, e := range expenses {
		if e.Type != entity.ExpenseTypeGroup {
			continue
		}
		if input.Month != "" && !e.Date.InMonth(input.Month) {
			continue
		}

		b, ok := buckets[e.GroupID]
		if !ok {
			b = &GroupBucket{
				GroupID:   e.GroupID,
				GroupName: e.Group,
				SplitType: e.SplitType,
				Total:     decimal.Zero,
				YourShare: decimal.Zero,
				OwedToYou: decimal.Zero,
				Shares:    make(map[string]decimal.Decimal),
			}
			buckets[e.GroupID] = b
			out.Buckets = append(out.Buckets, b)
		}

		b.Total = b.Total.Add(e.Amount)
		b.YourShare = b.YourShare.Add(e.YourShare())
		b.OwedToYou = b.OwedToYou.Add(e.OwedToYou())
		for member, share := range e.SplitAmounts {
			b.Shares[member] = b.Shares[member].Add(share)
		}

		out.TotalYourShare = out.TotalYourShare.Add(e.YourShare())
		out.TotalOwedToYou = out.TotalOwedToYou.Add(e.OwedToYou())
	}

	return out, nil
}
