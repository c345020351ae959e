// Package entity defines the core business entities for the domain layer.
package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/domain/valueobject"
)

// ExpenseType distinguishes personal expenses from group expenses.
type ExpenseType string

const (
	ExpenseTypePersonal ExpenseType = "personal"
	ExpenseTypeGroup    ExpenseType = "group"
)

// SplitType selects how a group expense is divided across members.
type SplitType string

const (
	SplitTypeEqual  SplitType = "equal"
	SplitTypeCustom SplitType = "custom"
)

// Expense is one immutable ledger record. Records are created and deleted,
// never updated; correcting one means delete and recreate.
//
// For group expenses, GroupMembers and SplitAmounts are a snapshot taken when
// the record was created. They deliberately do not follow later edits or
// deletion of the Group, so a recorded split stays exactly what it was at the
// time of recording.
//
// The JSON tags match the persisted document layout.
type Expense struct {
	ID           string                     `json:"id"`
	Date         valueobject.ISODate        `json:"date"`
	Amount       decimal.Decimal            `json:"amount"`
	Description  string                     `json:"description"`
	Category     string                     `json:"category"`
	Type         ExpenseType                `json:"type"`
	Group        string                     `json:"group,omitempty"`
	GroupID      string                     `json:"groupId,omitempty"`
	GroupMembers []string                   `json:"groupMembers,omitempty"`
	SplitType    SplitType                  `json:"splitType,omitempty"`
	SplitAmounts map[string]decimal.Decimal `json:"splitAmounts,omitempty"`
}

// NewExpenseID returns a fresh ledger record ID ("R_" + unix milliseconds).
func NewExpenseID() string {
	return fmt.Sprintf("R_%d", time.Now().UnixMilli())
}

// NewGroupExpenseID returns a fresh group-expense reference ID ("G_" + unix
// milliseconds). Each group expense gets its own, so monthly summaries bucket
// per recorded expense rather than per live group.
func NewGroupExpenseID() string {
	return fmt.Sprintf("G_%d", time.Now().UnixMilli())
}

// YourShare returns the creator's share of a group expense, zero when absent.
func (e *Expense) YourShare() decimal.Decimal {
	return e.SplitAmounts[CreatorName]
}

// OwedToYou sums every member's share except the creator's.
func (e *Expense) OwedToYou() decimal.Decimal {
	owed := decimal.Zero
	for member, share := range e.SplitAmounts {
		if member == CreatorName {
			continue
		}
		owed = owed.Add(share)
	}
	return owed
}
