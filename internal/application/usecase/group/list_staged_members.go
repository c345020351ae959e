package group

import (
	"context"
	"fmt"

	"github.com/expense-tracker/backend/internal/application/adapter"
)

// ListStagedMembersOutput represents the current staging list.
type ListStagedMembersOutput struct {
	Members []string
}

// ListStagedMembersUseCase handles staging list reads.
type ListStagedMembersUseCase struct {
	stagingRepo adapter.StagingRepository
}

// NewListStagedMembersUseCase creates a new ListStagedMembersUseCase instance.
func NewListStagedMembersUseCase(stagingRepo adapter.StagingRepository) *ListStagedMembersUseCase {
	return &ListStagedMembersUseCase{stagingRepo: stagingRepo}
}

// Execute returns the staged member names in the order they were added.
func (uc *ListStagedMembersUseCase) Execute(ctx context.Context) (*ListStagedMembersOutput, error) {
	staged, err := uc.stagingRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load staged members: %w", err)
	}
	return &ListStagedMembersOutput{Members: staged}, nil
}
