package summary

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	"github.com/expense-tracker/backend/internal/domain/valueobject"
	"github.com/expense-tracker/backend/internal/infra/kv"
	"github.com/expense-tracker/backend/internal/integration/persistence"
)

func entityDate(s string) valueobject.ISODate {
	return valueobject.ISODate(s)
}

func seedLedger(t *testing.T, records []*entity.Expense) adapter.ExpenseRepository {
	t.Helper()
	repo := persistence.NewExpenseRepository(kv.NewMemory())
	require.NoError(t, repo.Save(context.Background(), records))
	return repo
}

func personal(id, date, category string, amount int64) *entity.Expense {
	return &entity.Expense{
		ID:       id,
		Date:     entityDate(date),
		Amount:   decimal.NewFromInt(amount),
		Category: category,
		Type:     entity.ExpenseTypePersonal,
	}
}

func grouped(id, date, groupID string, amount int64, shares map[string]int64) *entity.Expense {
	split := make(map[string]decimal.Decimal, len(shares))
	for member, v := range shares {
		split[member] = decimal.NewFromInt(v)
	}
	members := make([]string, 0, len(shares))
	for member := range shares {
		members = append(members, member)
	}
	return &entity.Expense{
		ID:           id,
		Date:         entityDate(date),
		Amount:       decimal.NewFromInt(amount),
		Category:     "Shared",
		Type:         entity.ExpenseTypeGroup,
		Group:        "Trip",
		GroupID:      groupID,
		GroupMembers: members,
		SplitType:    entity.SplitTypeEqual,
		SplitAmounts: split,
	}
}

func TestCategoryTotals(t *testing.T) {
	repo := seedLedger(t, []*entity.Expense{
		personal("R_1", "2026-08-01", "Food", 30),
		personal("R_2", "2026-08-05", "Travel", 50),
		personal("R_3", "2026-08-20", "Food", 20),
		personal("R_4", "2026-07-01", "Food", 99),
		grouped("R_5", "2026-08-10", "G_1", 100, map[string]int64{"You": 50, "Bob": 50}),
	})
	uc := NewCategoryTotalsUseCase(repo)

	out, err := uc.Execute(context.Background(), CategoryTotalsInput{Month: "2026-08"})
	require.NoError(t, err)
	require.Len(t, out.Totals, 2)
	assert.Equal(t, "Food", out.Totals[0].Category)
	assert.True(t, out.Totals[0].Total.Equal(decimal.NewFromInt(50)))
	assert.Equal(t, "Travel", out.Totals[1].Category)
	assert.True(t, out.Sum.Equal(decimal.NewFromInt(100)))
}

func TestCategoryTotalsSearch(t *testing.T) {
	repo := seedLedger(t, []*entity.Expense{
		personal("R_1", "2026-08-01", "Food", 30),
		personal("R_2", "2026-08-05", "Travel", 50),
	})
	uc := NewCategoryTotalsUseCase(repo)

	out, err := uc.Execute(context.Background(), CategoryTotalsInput{Month: "2026-08", Search: "trav"})
	require.NoError(t, err)
	require.Len(t, out.Totals, 1)
	assert.Equal(t, "Travel", out.Totals[0].Category)
}

func TestGroupSummary(t *testing.T) {
	repo := seedLedger(t, []*entity.Expense{
		grouped("R_1", "2026-08-01", "G_1", 100, map[string]int64{"You": 50, "Bob": 50}),
		grouped("R_2", "2026-08-15", "G_2", 90, map[string]int64{"You": 30, "Bob": 30, "Eve": 30}),
		grouped("R_3", "2026-07-01", "G_3", 999, map[string]int64{"You": 999}),
		personal("R_4", "2026-08-20", "Food", 10),
	})
	uc := NewGroupSummaryUseCase(repo)

	out, err := uc.Execute(context.Background(), GroupSummaryInput{Month: "2026-08"})
	require.NoError(t, err)
	require.Len(t, out.Buckets, 2)

	first := out.Buckets[0]
	assert.Equal(t, "G_1", first.GroupID)
	assert.True(t, first.Total.Equal(decimal.NewFromInt(100)))
	assert.True(t, first.YourShare.Equal(decimal.NewFromInt(50)))
	assert.True(t, first.OwedToYou.Equal(decimal.NewFromInt(50)))

	second := out.Buckets[1]
	assert.True(t, second.OwedToYou.Equal(decimal.NewFromInt(60)))

	assert.True(t, out.TotalYourShare.Equal(decimal.NewFromInt(80)))
	assert.True(t, out.TotalOwedToYou.Equal(decimal.NewFromInt(110)))
}

func TestChartBreakdownMonthOfYear(t *testing.T) {
	repo := seedLedger(t, []*entity.Expense{
		personal("R_1", "2025-08-01", "Food", 30),
		personal("R_2", "2026-08-05", "Food", 20),
		personal("R_3", "2026-07-01", "Travel", 40),
		grouped("R_4", "2026-08-10", "G_1", 100, map[string]int64{"You": 50, "Bob": 50}),
	})
	uc := NewChartBreakdownUseCase(repo)

	// August of any year, all expense types
	out, err := uc.Execute(context.Background(), ChartBreakdownInput{MonthOfYear: "08"})
	require.NoError(t, err)
	require.Len(t, out.Totals, 2)
	assert.Equal(t, "Food", out.Totals[0].Category)
	assert.True(t, out.Totals[0].Total.Equal(decimal.NewFromInt(50)))
	assert.Equal(t, "Shared", out.Totals[1].Category)
	assert.True(t, out.Sum.Equal(decimal.NewFromInt(150)))

	out, err = uc.Execute(context.Background(), ChartBreakdownInput{})
	require.NoError(t, err)
	assert.True(t, out.Sum.Equal(decimal.NewFromInt(190)))
}
