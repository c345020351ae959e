package group

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/infra/kv"
	"github.com/expense-tracker/backend/internal/integration/persistence"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newRepos(t *testing.T) (adapter.GroupRepository, adapter.StagingRepository) {
	t.Helper()
	store := kv.NewMemory()
	return persistence.NewGroupRepository(store), persistence.NewStagingRepository(store)
}

func TestCreateGroupValidation(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{name: "empty name", input: "  ", wantErr: domainerror.ErrGroupNameRequired},
		{name: "too short", input: "Gy", wantErr: domainerror.ErrGroupNameTooShort},
		{name: "digits rejected", input: "Trip 2024", wantErr: domainerror.ErrGroupNameInvalid},
		{name: "punctuation rejected", input: "Road-Trip", wantErr: domainerror.ErrGroupNameInvalid},
		{name: "letters and spaces accepted", input: "Road Trip"},
		{name: "minimum length accepted", input: "Gym"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			groupRepo, stagingRepo := newRepos(t)
			uc := NewCreateGroupUseCase(groupRepo, stagingRepo, discardLogger())

			out, err := uc.Execute(ctx, CreateGroupInput{Name: tt.input, Members: []string{"Bob"}})
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NotZero(t, out.Group.ID)
		})
	}
}

func TestCreateGroupRequiresMembers(t *testing.T) {
	ctx := context.Background()
	groupRepo, stagingRepo := newRepos(t)
	uc := NewCreateGroupUseCase(groupRepo, stagingRepo, discardLogger())

	// neither explicit members nor a staged list
	_, err := uc.Execute(ctx, CreateGroupInput{Name: "Trip"})
	require.ErrorIs(t, err, domainerror.ErrGroupMembersRequired)

	groups, err := groupRepo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, groups)

	// a staged list satisfies the requirement
	require.NoError(t, stagingRepo.Save(ctx, []string{"Bob"}))
	out, err := uc.Execute(ctx, CreateGroupInput{Name: "Trip"})
	require.NoError(t, err)
	assert.Equal(t, []string{entity.CreatorName, "Bob"}, out.Group.Members)
}

func TestCreateGroupDuplicateNameCaseInsensitive(t *testing.T) {
	ctx := context.Background()
	groupRepo, stagingRepo := newRepos(t)
	uc := NewCreateGroupUseCase(groupRepo, stagingRepo, discardLogger())

	_, err := uc.Execute(ctx, CreateGroupInput{Name: "Roommates", Members: []string{"Bob"}})
	require.NoError(t, err)

	_, err = uc.Execute(ctx, CreateGroupInput{Name: "ROOMMATES", Members: []string{"Eve"}})
	require.ErrorIs(t, err, domainerror.ErrGroupNameExists)
}

func TestCreateGroupIncludesCreator(t *testing.T) {
	ctx := context.Background()
	groupRepo, stagingRepo := newRepos(t)
	uc := NewCreateGroupUseCase(groupRepo, stagingRepo, discardLogger())

	out, err := uc.Execute(ctx, CreateGroupInput{Name: "Trip", Members: []string{"Bob", "Eve"}})
	require.NoError(t, err)
	assert.Equal(t, []string{entity.CreatorName, "Bob", "Eve"}, out.Group.Members)

	// an explicit creator entry is not duplicated
	out, err = uc.Execute(ctx, CreateGroupInput{Name: "Dinner", Members: []string{"you", "Bob"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"you", "Bob"}, out.Group.Members)
}

func TestCreateGroupConsumesStagingList(t *testing.T) {
	ctx := context.Background()
	groupRepo, stagingRepo := newRepos(t)
	require.NoError(t, stagingRepo.Save(ctx, []string{"Bob", "Eve"}))

	uc := NewCreateGroupUseCase(groupRepo, stagingRepo, discardLogger())
	out, err := uc.Execute(ctx, CreateGroupInput{Name: "Roommates"})
	require.NoError(t, err)
	assert.Equal(t, []string{entity.CreatorName, "Bob", "Eve"}, out.Group.Members)

	staged, err := stagingRepo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, staged)
}

func TestDeleteGroup(t *testing.T) {
	ctx := context.Background()
	groupRepo, stagingRepo := newRepos(t)
	uc := NewCreateGroupUseCase(groupRepo, stagingRepo, discardLogger())

	out, err := uc.Execute(ctx, CreateGroupInput{Name: "Trip", Members: []string{"Bob"}})
	require.NoError(t, err)

	del := NewDeleteGroupUseCase(groupRepo)
	require.NoError(t, del.Execute(ctx, DeleteGroupInput{ID: out.Group.ID}))

	groups, err := groupRepo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, groups)

	// unknown ID is a no-op
	require.NoError(t, del.Execute(ctx, DeleteGroupInput{ID: 42}))
}

func TestStageMembers(t *testing.T) {
	ctx := context.Background()
	_, stagingRepo := newRepos(t)
	uc := NewStageMembersUseCase(stagingRepo)

	out, err := uc.Execute(ctx, StageMembersInput{Raw: "Bob, Eve ,, You , bob"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Bob", "Eve"}, out.Members)

	// already-staged names are dropped silently
	out, err = uc.Execute(ctx, StageMembersInput{Raw: "EVE, Mallory"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Bob", "Eve", "Mallory"}, out.Members)

	// names outside letters-and-spaces are dropped silently
	out, err = uc.Execute(ctx, StageMembersInput{Raw: "B0b, Ann-Marie, Mary Jane"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Bob", "Eve", "Mallory", "Mary Jane"}, out.Members)
}

func TestUnstageMember(t *testing.T) {
	ctx := context.Background()
	_, stagingRepo := newRepos(t)
	require.NoError(t, stagingRepo.Save(ctx, []string{"Bob", "Eve"}))

	uc := NewUnstageMemberUseCase(stagingRepo)
	out, err := uc.Execute(ctx, UnstageMemberInput{Name: "Bob"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Eve"}, out.Members)

	out, err = uc.Execute(ctx, UnstageMemberInput{Name: "Bob"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Eve"}, out.Members)
}

type failingDirectory struct{}

func (failingDirectory) Suggest(ctx context.Context) ([]adapter.DirectoryUser, error) {
	return nil, errors.New("directory down")
}

type fixedDirectory struct{ users []adapter.DirectoryUser }

func (d fixedDirectory) Suggest(ctx context.Context) ([]adapter.DirectoryUser, error) {
	return d.users, nil
}

func TestSuggestMembers(t *testing.T) {
	ctx := context.Background()

	out, err := NewSuggestMembersUseCase(failingDirectory{}, discardLogger()).Execute(ctx)
	require.NoError(t, err)
	assert.Empty(t, out.Suggestions)

	users := []adapter.DirectoryUser{{ID: 1, DisplayName: "Terry Medhurst"}}
	out, err = NewSuggestMembersUseCase(fixedDirectory{users: users}, discardLogger()).Execute(ctx)
	require.NoError(t, err)
	assert.Equal(t, users, out.Suggestions)
}
