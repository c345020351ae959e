package persistence

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
)

// userRepository implements the adapter.UserRepository interface.
type userRepository struct {
	store adapter.Store
}

// NewUserRepository creates a new user repository instance.
func NewUserRepository(store adapter.Store) adapter.UserRepository {
	return &userRepository{store: store}
}

// Find returns the stored account, or nil when none exists. A corrupt
// document is treated as no account.
func (r *userRepository) Find(ctx context.Context) (*entity.User, error) {
	raw, err := r.store.Get(ctx, keyUser)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, nil
	}

	var user entity.User
	if err := json.Unmarshal(raw, &user); err != nil {
		slog.Warn("Discarding corrupt document", "key", keyUser, "error", err)
		return nil, nil
	}
	return &user, nil
}

// Save stores the account, replacing any existing one.
func (r *userRepository) Save(ctx context.Context, user *entity.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, keyUser, raw)
}
