package group

import (
	"context"
	"fmt"
	"strings"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
)

// StageMembersInput represents the input for staging member names. Raw is
// free text; commas separate multiple names.
type StageMembersInput struct {
	Raw string
}

// StageMembersOutput represents the resulting staging list.
type StageMembersOutput struct {
	Members []string
}

// StageMembersUseCase accumulates member names ahead of group creation.
type StageMembersUseCase struct {
	stagingRepo adapter.StagingRepository
}

// NewStageMembersUseCase creates a new StageMembersUseCase instance.
func NewStageMembersUseCase(stagingRepo adapter.StagingRepository) *StageMembersUseCase {
	return &StageMembersUseCase{stagingRepo: stagingRepo}
}

// Execute splits the raw text on commas, trims each name and appends the
// valid ones to the staging list. Empty names, names with characters other
// than letters and spaces, names already staged (case-insensitively) and the
// creator's own name are dropped silently; staging is a scratch pad, not a
// validation surface.
func (uc *StageMembersUseCase) Execute(ctx context.Context, input StageMembersInput) (*StageMembersOutput, error) {
	staged, err := uc.stagingRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load staged members: %w", err)
	}

	changed := false
	for _, raw := range strings.Split(input.Raw, ",") {
		name := strings.TrimSpace(raw)
		if name == "" || !namePattern.MatchString(name) || strings.EqualFold(name, entity.CreatorName) {
			continue
		}
		if containsFold(staged, name) {
			continue
		}
		staged = append(staged, name)
		changed = true
	}

	if changed {
		if err := uc.stagingRepo.Save(ctx, staged); err != nil {
			return nil, fmt.Errorf("failed to save staged members: %w", err)
		}
	}
	return &StageMembersOutput{Members: staged}, nil
}

func containsFold(names []string, name string) bool {
	for _, n := range names {
		if strings.EqualFold(n, name) {
			return true
		}
	}
	return false
}
