// Package persistence implements the application repositories on top of the
// key/value store. Each repository owns exactly one key and rewrites its
// whole document on every mutation; the store layout mirrors what the
// browser UI persisted.
package persistence

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/expense-tracker/backend/internal/application/adapter"
)

// Persisted document keys.
const (
	keyExpenses     = "expenses"
	keyGroups       = "groupsList"
	keyStaging      = "membersList"
	keyCategories   = "categories"
	keyLastCategory = "lastCategory"
	keyUser         = "user"
)

// loadList decodes the JSON list stored under key. A missing key and a
// corrupt document both come back as an empty list: corruption is logged and
// otherwise swallowed, so a bad write can never wedge the application.
func loadList[T any](ctx context.Context, store adapter.Store, key string) ([]T, error) {
	raw, err := store.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, nil
	}

	var list []T
	if err := json.Unmarshal(raw, &list); err != nil {
		slog.Warn("Discarding corrupt document", "key", key, "error", err)
		return nil, nil
	}
	return list, nil
}

// saveList encodes list as JSON and stores it under key.
func saveList[T any](ctx context.Context, store adapter.Store, key string, list []T) error {
	raw, err := json.Marshal(list)
	if err != nil {
		return err
	}
	return store.Set(ctx, key, raw)
}
