package kv

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/expense-tracker/backend/internal/application/adapter"
)

// testStoreContract exercises the behavior every backend must share.
func testStoreContract(t *testing.T, store adapter.Store) {
	t.Helper()
	ctx := context.Background()

	// Absent key reads back as nil, not an error.
	value, err := store.Get(ctx, "expenses")
	require.NoError(t, err)
	require.Nil(t, value)

	// Round trip.
	require.NoError(t, store.Set(ctx, "expenses", []byte(`[{"id":"R_1"}]`)))
	value, err = store.Get(ctx, "expenses")
	require.NoError(t, err)
	require.Equal(t, []byte(`[{"id":"R_1"}]`), value)

	// Overwrite replaces, never appends.
	require.NoError(t, store.Set(ctx, "expenses", []byte(`[]`)))
	value, err = store.Get(ctx, "expenses")
	require.NoError(t, err)
	require.Equal(t, []byte(`[]`), value)

	// Keys are independent.
	require.NoError(t, store.Set(ctx, "categories", []byte(`["Food"]`)))
	value, err = store.Get(ctx, "expenses")
	require.NoError(t, err)
	require.Equal(t, []byte(`[]`), value)

	// Remove is idempotent.
	require.NoError(t, store.Remove(ctx, "expenses"))
	value, err = store.Get(ctx, "expenses")
	require.NoError(t, err)
	require.Nil(t, value)
	require.NoError(t, store.Remove(ctx, "expenses"))
}

func TestMemoryStore(t *testing.T) {
	testStoreContract(t, NewMemory())
}

func TestSQLiteStore(t *testing.T) {
	store, err := NewSQLite(filepath.Join(t.TempDir(), "tracker.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	testStoreContract(t, store)
	require.True(t, store.HealthCheck())
}

func TestRedisStore(t *testing.T) {
	mr := miniredis.RunT(t)
	store := NewRedisWithClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { _ = store.Close() })

	testStoreContract(t, store)
	require.True(t, store.HealthCheck())
}
