package category

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/expense-tracker/backend/internal/application/adapter"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/infra/kv"
	"github.com/expense-tracker/backend/internal/integration/persistence"
)

func newRepo(t *testing.T) adapter.CategoryRepository {
	t.Helper()
	return persistence.NewCategoryRepository(kv.NewMemory())
}

func TestAddCategory(t *testing.T) {
	tests := []struct {
		name     string
		existing []string
		input    string
		wantName string
		wantErr  error
	}{
		{
			name:     "valid name",
			input:    "Groceries",
			wantName: "Groceries",
		},
		{
			name:     "trims surrounding whitespace",
			input:    "  Travel  ",
			wantName: "Travel",
		},
		{
			name:    "empty name",
			input:   "   ",
			wantErr: domainerror.ErrCategoryNameRequired,
		},
		{
			name:    "too short",
			input:   "Fo",
			wantErr: domainerror.ErrCategoryNameTooShort,
		},
		{
			name:    "too long",
			input:   strings.Repeat("x", 21),
			wantErr: domainerror.ErrCategoryNameTooLong,
		},
		{
			name:    "length counts characters not bytes",
			input:   "éé",
			wantErr: domainerror.ErrCategoryNameTooShort,
		},
		{
			name:     "twenty multibyte characters accepted",
			input:    strings.Repeat("é", 20),
			wantName: strings.Repeat("é", 20),
		},
		{
			name:     "duplicate",
			existing: []string{"Food"},
			input:    "Food",
			wantErr:  domainerror.ErrCategoryNameExists,
		},
		{
			name:     "duplicate check is case sensitive",
			existing: []string{"Food"},
			input:    "food",
			wantName: "food",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			repo := newRepo(t)
			if tt.existing != nil {
				require.NoError(t, repo.Save(ctx, tt.existing))
			}

			out, err := NewAddCategoryUseCase(repo).Execute(ctx, AddCategoryInput{Name: tt.input})
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				var verr *domainerror.ValidationError
				require.ErrorAs(t, err, &verr)
				assert.Equal(t, "name", verr.Field)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, out.Name)

			stored, err := repo.List(ctx)
			require.NoError(t, err)
			assert.Contains(t, stored, tt.wantName)
		})
	}
}

func TestAddCategoryPreservesOrder(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)
	uc := NewAddCategoryUseCase(repo)

	for _, name := range []string{"Food", "Rent", "Travel"} {
		_, err := uc.Execute(ctx, AddCategoryInput{Name: name})
		require.NoError(t, err)
	}

	out, err := NewListCategoriesUseCase(repo).Execute(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Food", "Rent", "Travel"}, out.Categories)
}

func TestRemoveCategory(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)
	require.NoError(t, repo.Save(ctx, []string{"Food", "Rent", "Food"}))

	uc := NewRemoveCategoryUseCase(repo)
	require.NoError(t, uc.Execute(ctx, RemoveCategoryInput{Name: "Food"}))

	stored, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Rent"}, stored)

	// removing an unknown name is a no-op
	require.NoError(t, uc.Execute(ctx, RemoveCategoryInput{Name: "Food"}))
	stored, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Rent"}, stored)
}
