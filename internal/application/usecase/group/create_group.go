// Package group contains group-registry and member-staging use cases.
package group

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// MinGroupNameLength is the minimum allowed length for group names.
const MinGroupNameLength = 3

// namePattern constrains group names and staged member names alike.
var namePattern = regexp.MustCompile(`^[A-Za-z\s]+$`)

// CreateGroupInput represents the input for creating a group. Members may be
// empty, in which case the current staging list is used instead.
type CreateGroupInput struct {
	Name    string
	Members []string
}

// CreateGroupOutput represents the output of creating a group.
type CreateGroupOutput struct {
	Group *entity.Group
}

// CreateGroupUseCase handles group creation logic.
type CreateGroupUseCase struct {
	groupRepo   adapter.GroupRepository
	stagingRepo adapter.StagingRepository
	logger      *slog.Logger
}

// NewCreateGroupUseCase creates a new CreateGroupUseCase instance.
func NewCreateGroupUseCase(
	groupRepo adapter.GroupRepository,
	stagingRepo adapter.StagingRepository,
	logger *slog.Logger,
) *CreateGroupUseCase {
	return &CreateGroupUseCase{
		groupRepo:   groupRepo,
		stagingRepo: stagingRepo,
		logger:      logger,
	}
}

// Execute validates the name, resolves the member list (explicit input or the
// staging list), stores the new group and clears the staging list. Names are
// unique case-insensitively; the creator is always a member.
func (uc *CreateGroupUseCase) Execute(ctx context.Context, input CreateGroupInput) (*CreateGroupOutput, error) {
	name := strings.TrimSpace(input.Name)

	if name == "" {
		return nil, domainerror.NewValidationError(
			"name",
			domainerror.ErrCodeGroupNameRequired,
			"Group name is required",
			domainerror.ErrGroupNameRequired,
		)
	}
	if utf8.RuneCountInString(name) < MinGroupNameLength {
		return nil, domainerror.NewValidationError(
			"name",
			domainerror.ErrCodeGroupNameTooShort,
			fmt.Sprintf("Group name must be at least %d characters", MinGroupNameLength),
			domainerror.ErrGroupNameTooShort,
		)
	}
	if !namePattern.MatchString(name) {
		return nil, domainerror.NewValidationError(
			"name",
			domainerror.ErrCodeGroupNameInvalid,
			"Group name must contain only letters and spaces",
			domainerror.ErrGroupNameInvalid,
		)
	}

	groups, err := uc.groupRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load groups: %w", err)
	}
	for _, existing := range groups {
		if strings.EqualFold(existing.Name, name) {
			return nil, domainerror.NewValidationError(
				"name",
				domainerror.ErrCodeGroupNameExists,
				"A group with this name already exists",
				domainerror.ErrGroupNameExists,
			)
		}
	}

	members := input.Members
	if len(members) == 0 {
		members, err = uc.stagingRepo.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load staged members: %w", err)
		}
	}
	if len(members) == 0 {
		return nil, domainerror.NewValidationError(
			"members",
			domainerror.ErrCodeGroupMembersRequired,
			"Add at least one member to the group",
			domainerror.ErrGroupMembersRequired,
		)
	}

	created := entity.NewGroup(name, members)
	groups = append(groups, created)
	if err := uc.groupRepo.Save(ctx, groups); err != nil {
		return nil, fmt.Errorf("failed to save groups: %w", err)
	}

	if err := uc.stagingRepo.Clear(ctx); err != nil {
		uc.logger.Warn("failed to clear staged members after group creation", "error", err)
	}

	return &CreateGroupOutput{Group: created}, nil
}
