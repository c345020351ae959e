// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// UserRepository persists the single local account.
type UserRepository interface {
	// Find returns the stored account, or nil when none exists.
	Find(ctx context.Context) (*entity.User, error)

	// Save stores the account, replacing any existing one.
	Save(ctx context.Context, user *entity.User) error
}
