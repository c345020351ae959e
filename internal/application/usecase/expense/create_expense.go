// Package expense contains expense-ledger use cases.
package expense

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/domain/valueobject"
)

// MinDescriptionLength applies only to non-empty descriptions; an empty
// description is allowed.
const MinDescriptionLength = 3

// CreateExpenseInput represents the input for recording an expense.
// SplitAmounts is consulted only when SplitType is custom.
type CreateExpenseInput struct {
	Date         string
	Amount       decimal.Decimal
	Description  string
	Category     string
	Type         entity.ExpenseType
	Group        string
	SplitType    entity.SplitType
	SplitAmounts map[string]decimal.Decimal
}

// CreateExpenseOutput represents the output of recording an expense.
type CreateExpenseOutput struct {
	Expense *entity.Expense
}

// CreateExpenseUseCase handles expense creation logic.
type CreateExpenseUseCase struct {
	expenseRepo  adapter.ExpenseRepository
	groupRepo    adapter.GroupRepository
	settingsRepo adapter.SettingsRepository
	logger       *slog.Logger
}

// NewCreateExpenseUseCase creates a new CreateExpenseUseCase instance.
func NewCreateExpenseUseCase(
	expenseRepo adapter.ExpenseRepository,
	groupRepo adapter.GroupRepository,
	settingsRepo adapter.SettingsRepository,
	logger *slog.Logger,
) *CreateExpenseUseCase {
	return &CreateExpenseUseCase{
		expenseRepo:  expenseRepo,
		groupRepo:    groupRepo,
		settingsRepo: settingsRepo,
		logger:       logger,
	}
}

// Execute validates the input, computes the split for group expenses and
// appends the new record to the ledger. Group membership and split amounts
// are snapshotted into the record; later changes to the group do not touch it.
func (uc *CreateExpenseUseCase) Execute(ctx context.Context, input CreateExpenseInput) (*CreateExpenseOutput, error) {
	date, err := uc.validateDate(input.Date)
	if err != nil {
		return nil, err
	}

	if input.Amount.LessThan(decimal.NewFromInt(1)) {
		return nil, domainerror.NewValidationError(
			"amount",
			domainerror.ErrCodeAmountTooSmall,
			"Amount must be at least 1",
			domainerror.ErrAmountTooSmall,
		)
	}

	description := strings.TrimSpace(input.Description)
	if description != "" && len(description) < MinDescriptionLength {
		return nil, domainerror.NewValidationError(
			"description",
			domainerror.ErrCodeDescriptionTooShort,
			fmt.Sprintf("Description must be at least %d characters", MinDescriptionLength),
			domainerror.ErrDescriptionTooShort,
		)
	}

	if strings.TrimSpace(input.Category) == "" {
		return nil, domainerror.NewValidationError(
			"category",
			domainerror.ErrCodeExpenseCategoryRequired,
			"Category is required",
			domainerror.ErrExpenseCategoryRequired,
		)
	}

	record := &entity.Expense{
		ID:          entity.NewExpenseID(),
		Date:        date,
		Amount:      input.Amount,
		Description: description,
		Category:    input.Category,
		Type:        input.Type,
	}

	switch input.Type {
	case entity.ExpenseTypePersonal:
	case entity.ExpenseTypeGroup:
		if err := uc.fillGroupFields(ctx, record, input); err != nil {
			return nil, err
		}
	default:
		return nil, domainerror.NewValidationError(
			"type",
			domainerror.ErrCodeInvalidExpenseType,
			"Type must be personal or group",
			domainerror.ErrInvalidExpenseType,
		)
	}

	expenses, err := uc.expenseRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses: %w", err)
	}
	expenses = append(expenses, record)
	if err := uc.expenseRepo.Save(ctx, expenses); err != nil {
		return nil, fmt.Errorf("failed to save expenses: %w", err)
	}

	if err := uc.settingsRepo.SetLastCategory(ctx, record.Category); err != nil {
		uc.logger.Warn("failed to remember last category", "error", err)
	}

	return &CreateExpenseOutput{Expense: record}, nil
}

func (uc *CreateExpenseUseCase) validateDate(raw string) (valueobject.ISODate, error) {
	if strings.TrimSpace(raw) == "" {
		return "", domainerror.NewValidationError(
			"date",
			domainerror.ErrCodeDateRequired,
			"Date is required",
			domainerror.ErrDateRequired,
		)
	}
	date, err := valueobject.ParseISODate(raw)
	if err != nil {
		return "", domainerror.NewValidationError(
			"date",
			domainerror.ErrCodeDateInvalid,
			"Date must be a valid ISO date (YYYY-MM-DD)",
			domainerror.ErrDateInvalid,
		)
	}
	if date.After(valueobject.Today()) {
		return "", domainerror.NewValidationError(
			"date",
			domainerror.ErrCodeDateInFuture,
			"Date must not be in the future",
			domainerror.ErrDateInFuture,
		)
	}
	return date, nil
}

func (uc *CreateExpenseUseCase) fillGroupFields(ctx context.Context, record *entity.Expense, input CreateExpenseInput) error {
	if strings.TrimSpace(input.Group) == "" {
		return domainerror.NewValidationError(
			"group",
			domainerror.ErrCodeExpenseGroupRequired,
			"Group is required for group expenses",
			domainerror.ErrExpenseGroupRequired,
		)
	}

	groups, err := uc.groupRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to load groups: %w", err)
	}
	var members []string
	found := false
	for _, g := range groups {
		if g.Name == input.Group {
			members = g.Members
			found = true
			break
		}
	}
	if !found {
		return domainerror.NewValidationError(
			"group",
			domainerror.ErrCodeGroupNotFound,
			"Group does not exist",
			domainerror.ErrGroupNotFound,
		)
	}

	var split map[string]decimal.Decimal
	switch input.SplitType {
	case entity.SplitTypeEqual:
		split, err = valueobject.EqualSplit(input.Amount, members)
	case entity.SplitTypeCustom:
		split, err = valueobject.CustomSplit(input.Amount, members, input.SplitAmounts)
	case "":
		return domainerror.NewValidationError(
			"splitType",
			domainerror.ErrCodeSplitTypeRequired,
			"Split type is required for group expenses",
			domainerror.ErrSplitTypeRequired,
		)
	default:
		return domainerror.NewValidationError(
			"splitType",
			domainerror.ErrCodeInvalidSplitType,
			"Split type must be equal or custom",
			domainerror.ErrInvalidSplitType,
		)
	}
	if err != nil {
		return err
	}

	record.Group = input.Group
	record.GroupID = entity.NewGroupExpenseID()
	record.GroupMembers = append([]string(nil), members...)
	record.SplitType = input.SplitType
	record.SplitAmounts = split
	return nil
}
