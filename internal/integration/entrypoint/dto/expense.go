package dto

import (
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// CreateExpenseRequest represents the request body for POST /expenses.
// Group, SplitType and SplitAmounts apply to group expenses only.
type CreateExpenseRequest struct {
	Date         string                     `json:"date" binding:"required"`
	Amount       decimal.Decimal            `json:"amount" binding:"required"`
	Description  string                     `json:"description"`
	Category     string                     `json:"category" binding:"required"`
	Type         string                     `json:"type" binding:"required"`
	Group        string                     `json:"group"`
	SplitType    string                     `json:"splitType"`
	SplitAmounts map[string]decimal.Decimal `json:"splitAmounts"`
}

// ExpenseResponse represents a single ledger record.
type ExpenseResponse struct {
	ID           string                     `json:"id"`
	Date         string                     `json:"date"`
	Amount       decimal.Decimal            `json:"amount"`
	Description  string                     `json:"description"`
	Category     string                     `json:"category"`
	Type         string                     `json:"type"`
	Group        string                     `json:"group,omitempty"`
	GroupID      string                     `json:"groupId,omitempty"`
	GroupMembers []string                   `json:"groupMembers,omitempty"`
	SplitType    string                     `json:"splitType,omitempty"`
	SplitAmounts map[string]decimal.Decimal `json:"splitAmounts,omitempty"`
}

// ExpenseListResponse represents the response body for GET /expenses.
type ExpenseListResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
}

// ToExpenseResponse converts an expense entity to its response payload.
func ToExpenseResponse(e *entity.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:           e.ID,
		Date:         e.Date.String(),
		Amount:       e.Amount,
		Description:  e.Description,
		Category:     e.Category,
		Type:         string(e.Type),
		Group:        e.Group,
		GroupID:      e.GroupID,
		GroupMembers: e.GroupMembers,
		SplitType:    string(e.SplitType),
		SplitAmounts: e.SplitAmounts,
	}
}

// ToExpenseListResponse converts expense entities to a list payload.
func ToExpenseListResponse(expenses []*entity.Expense) ExpenseListResponse {
	out := ExpenseListResponse{Expenses: make([]ExpenseResponse, 0, len(expenses))}
	for _, e := range expenses {
		out.Expenses = append(out.Expenses, ToExpenseResponse(e))
	}
	return out
}
