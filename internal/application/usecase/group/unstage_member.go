package group

import (
	"context"
	"fmt"

	"github.com/expense-tracker/backend/internal/application/adapter"
)

// UnstageMemberInput represents the input for removing a staged member.
type UnstageMemberInput struct {
	Name string
}

// UnstageMemberOutput represents the resulting staging list.
type UnstageMemberOutput struct {
	Members []string
}

// UnstageMemberUseCase removes names from the staging list.
type UnstageMemberUseCase struct {
	stagingRepo adapter.StagingRepository
}

// NewUnstageMemberUseCase creates a new UnstageMemberUseCase instance.
func NewUnstageMemberUseCase(stagingRepo adapter.StagingRepository) *UnstageMemberUseCase {
	return &UnstageMemberUseCase{stagingRepo: stagingRepo}
}

// Execute removes the exact name from the staging list. Removing a name that
// is not staged is a no-op.
func (uc *UnstageMemberUseCase) Execute(ctx context.Context, input UnstageMemberInput) (*UnstageMemberOutput, error) {
	staged, err := uc.stagingRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load staged members: %w", err)
	}

	remaining := make([]string, 0, len(staged))
	for _, n := range staged {
		if n != input.Name {
			remaining = append(remaining, n)
		}
	}

	if len(remaining) != len(staged) {
		if err := uc.stagingRepo.Save(ctx, remaining); err != nil {
			return nil, fmt.Errorf("failed to save staged members: %w", err)
		}
	}
	return &UnstageMemberOutput{Members: remaining}, nil
}
