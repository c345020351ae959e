package persistence

import (
	"context"

	"github.com/expense-tracker/backend/internal/application/adapter"
)

// settingsRepository implements the adapter.SettingsRepository interface.
// The last-category value is stored raw, not JSON-wrapped, matching the
// original storage layout.
type settingsRepository struct {
	store adapter.Store
}

// NewSettingsRepository creates a new settings repository instance.
func NewSettingsRepository(store adapter.Store) adapter.SettingsRepository {
	return &settingsRepository{store: store}
}

// LastCategory returns the most recently chosen category, or "" when unset.
func (r *settingsRepository) LastCategory(ctx context.Context) (string, error) {
	raw, err := r.store.Get(ctx, keyLastCategory)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// SetLastCategory records the most recently chosen category.
func (r *settingsRepository) SetLastCategory(ctx context.Context, name string) error {
	return r.store.Set(ctx, keyLastCategory, []byte(name))
}
