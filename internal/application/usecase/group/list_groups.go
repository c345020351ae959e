package group

import (
	"context"
	"fmt"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
)

// ListGroupsOutput represents the output of listing groups.
type ListGroupsOutput struct {
	Groups []*entity.Group
}

// ListGroupsUseCase handles group listing logic.
type ListGroupsUseCase struct {
	groupRepo adapter.GroupRepository
}

// NewListGroupsUseCase creates a new ListGroupsUseCase instance.
func NewListGroupsUseCase(groupRepo adapter.GroupRepository) *ListGroupsUseCase {
	return &ListGroupsUseCase{groupRepo: groupRepo}
}

// Execute returns all groups in creation order.
func (uc *ListGroupsUseCase) Execute(ctx context.Context) (*ListGroupsOutput, error) {
	groups, err := uc.groupRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load groups: %w", err)
	}
	return &ListGroupsOutput{Groups: groups}, nil
}
