// Package valueobject holds small immutable domain values and the pure
// computations over them.
package valueobject

import (
	"github.com/shopspring/decimal"

	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// EqualSplit divides amount evenly across members and returns each member's
// share. Shares are intentionally left unrounded; rounding for display is a
// presentation concern.
func EqualSplit(amount decimal.Decimal, members []string) (map[string]decimal.Decimal, error) {
	if len(members) == 0 {
		return nil, domainerror.NewValidationError(
			"splitAmounts",
			domainerror.ErrCodeNoSplitMembers,
			"cannot split an amount across zero members",
			domainerror.ErrNoSplitMembers,
		)
	}

	share := amount.Div(decimal.NewFromInt(int64(len(members))))
	shares := make(map[string]decimal.Decimal, len(members))
	for _, member := range members {
		shares[member] = share
	}
	return shares, nil
}

// CustomSplit validates user-assigned shares against the declared amount and
// returns the shares rounded to two decimals for storage. Members missing
// from entries contribute zero; an entry naming a non-member is rejected.
// The sum check is exact: any deviation, over or under, fails.
func CustomSplit(amount decimal.Decimal, members []string, entries map[string]decimal.Decimal) (map[string]decimal.Decimal, error) {
	if len(members) == 0 {
		return nil, domainerror.NewValidationError(
			"splitAmounts",
			domainerror.ErrCodeNoSplitMembers,
			"cannot split an amount across zero members",
			domainerror.ErrNoSplitMembers,
		)
	}

	known := make(map[string]bool, len(members))
	for _, member := range members {
		known[member] = true
	}
	for name := range entries {
		if !known[name] {
			return nil, domainerror.NewValidationError(
				"splitAmounts",
				domainerror.ErrCodeUnknownSplitMember,
				name+" is not a member of the group",
				domainerror.ErrUnknownSplitMember,
			)
		}
	}

	if !Remainder(amount, entries).IsZero() {
		return nil, domainerror.NewValidationError(
			"splitAmounts",
			domainerror.ErrCodeSplitMismatch,
			"total split amount must match the total amount",
			domainerror.ErrSplitMismatch,
		)
	}

	shares := make(map[string]decimal.Decimal, len(members))
	for _, member := range members {
		shares[member] = entries[member].Round(2)
	}
	return shares, nil
}

// Remainder reports how much of amount is still unassigned given the entries
// so far. It exists for live feedback while the user is editing a custom
// split; a non-zero remainder only becomes an error at submission time.
func Remainder(amount decimal.Decimal, entries map[string]decimal.Decimal) decimal.Decimal {
	assigned := decimal.Zero
	for _, share := range entries {
		assigned = assigned.Add(share)
	}
	return amount.Sub(assigned)
}
