package group

import (
	"context"
	"fmt"

	"github.com/expense-tracker/backend/internal/application/adapter"
)

// DeleteGroupInput represents the input for deleting a group.
type DeleteGroupInput struct {
	ID int64
}

// DeleteGroupUseCase handles group deletion logic.
type DeleteGroupUseCase struct {
	groupRepo adapter.GroupRepository
}

// NewDeleteGroupUseCase creates a new DeleteGroupUseCase instance.
func NewDeleteGroupUseCase(groupRepo adapter.GroupRepository) *DeleteGroupUseCase {
	return &DeleteGroupUseCase{groupRepo: groupRepo}
}

// Execute removes the group with the given ID. Deleting an unknown ID is a
// no-op. Past group expenses keep their member and split snapshots.
func (uc *DeleteGroupUseCase) Execute(ctx context.Context, input DeleteGroupInput) error {
	groups, err := uc.groupRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to load groups: %w", err)
	}

	remaining := groups[:0]
	for _, g := range groups {
		if g.ID != input.ID {
			remaining = append(remaining, g)
		}
	}

	if len(remaining) == len(groups) {
		return nil
	}

	if err := uc.groupRepo.Save(ctx, remaining); err != nil {
		return fmt.Errorf("failed to save groups: %w", err)
	}
	return nil
}
