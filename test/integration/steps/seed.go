package steps

import (
	"context"
	"fmt"
	"strings"

	"github.com/cucumber/godog"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/domain/entity"
	"github.com/expense-tracker/backend/internal/domain/valueobject"
	"github.com/expense-tracker/backend/test/integration/mock"
)

// registerSeedSteps registers steps that seed the scenario's store directly,
// bypassing the API.
func registerSeedSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the categories "([^"]*)" exist$`, theCategoriesExist)
	ctx.Step(`^a group "([^"]*)" with members "([^"]*)" exists$`, aGroupWithMembersExists)
	ctx.Step(`^the following expenses exist:$`, theFollowingExpensesExist)
	ctx.Step(`^the user directory returns:$`, theUserDirectoryReturns)
	ctx.Step(`^the user directory is down$`, theUserDirectoryIsDown)
}

func theCategoriesExist(ctx context.Context, list string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	var categories []string
	for _, name := range strings.Split(list, ",") {
		categories = append(categories, strings.TrimSpace(name))
	}
	return tc.categoryRepo.Save(ctx, categories)
}

func aGroupWithMembersExists(ctx context.Context, name, memberList string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	var members []string
	for _, member := range strings.Split(memberList, ",") {
		members = append(members, strings.TrimSpace(member))
	}

	groups, err := tc.groupRepo.List(ctx)
	if err != nil {
		return err
	}
	groups = append(groups, entity.NewGroup(name, members))
	return tc.groupRepo.Save(ctx, groups)
}

// theFollowingExpensesExist seeds ledger records from a table with columns:
// id, date, amount, description, category, type. Group expenses are seeded
// through the API instead so their snapshots are computed.
func theFollowingExpensesExist(ctx context.Context, table *godog.Table) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if len(table.Rows) < 2 {
		return fmt.Errorf("expense table needs a header row and at least one data row")
	}

	header := make([]string, len(table.Rows[0].Cells))
	for i, cell := range table.Rows[0].Cells {
		header[i] = cell.Value
	}

	expenses, err := tc.expenseRepo.List(ctx)
	if err != nil {
		return err
	}

	for _, row := range table.Rows[1:] {
		record := &entity.Expense{Type: entity.ExpenseTypePersonal}
		for i, cell := range row.Cells {
			switch header[i] {
			case "id":
				record.ID = cell.Value
			case "date":
				record.Date = valueobject.ISODate(cell.Value)
			case "amount":
				amount, err := decimal.NewFromString(cell.Value)
				if err != nil {
					return fmt.Errorf("bad amount %q: %w", cell.Value, err)
				}
				record.Amount = amount
			case "description":
				record.Description = cell.Value
			case "category":
				record.Category = cell.Value
			case "type":
				record.Type = entity.ExpenseType(cell.Value)
			default:
				return fmt.Errorf("unknown expense column %q", header[i])
			}
		}
		expenses = append(expenses, record)
	}

	return tc.expenseRepo.Save(ctx, expenses)
}

// theUserDirectoryReturns configures the directory mock from a table with
// columns: id, firstName, lastName.
func theUserDirectoryReturns(ctx context.Context, table *godog.Table) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if len(table.Rows) < 2 {
		return fmt.Errorf("directory table needs a header row and at least one data row")
	}

	var users []mock.DirectoryUser
	for _, row := range table.Rows[1:] {
		if len(row.Cells) != 3 {
			return fmt.Errorf("directory rows need id, firstName and lastName")
		}
		var user mock.DirectoryUser
		if _, err := fmt.Sscanf(row.Cells[0].Value, "%d", &user.ID); err != nil {
			return fmt.Errorf("bad directory user id %q: %w", row.Cells[0].Value, err)
		}
		user.FirstName = row.Cells[1].Value
		user.LastName = row.Cells[2].Value
		users = append(users, user)
	}

	tc.directory.SetUsers(users)
	return nil
}

func theUserDirectoryIsDown(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	tc.directory.SetFailing(true)
	return nil
}
