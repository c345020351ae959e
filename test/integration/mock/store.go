// Package mock provides test doubles for the integration suite.
package mock

import (
	"fmt"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/infra/kv"
)

// NewStore opens a fresh, isolated store for one scenario. The backend is
// selected via TEST_STORAGE_BACKEND so the same feature suite can run
// against every store implementation.
func NewStore(backend string) (adapter.Store, error) {
	switch backend {
	case "", "memory":
		return kv.NewMemory(), nil
	case "sqlite":
		return kv.NewSQLite(":memory:")
	case "redis":
		mini, err := miniredis.Run()
		if err != nil {
			return nil, fmt.Errorf("failed to start miniredis: %w", err)
		}
		client := redis.NewClient(&redis.Options{Addr: mini.Addr()})
		return kv.NewRedisWithClient(client), nil
	default:
		return nil, fmt.Errorf("unknown test storage backend %q", backend)
	}
}
