// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "context"

// Store is a string-keyed document store, the only owner of persisted state.
// Values are opaque JSON blobs; a missing key yields a nil value and no
// error. Writes to different keys are independent: there is no transaction
// spanning keys and concurrent writers are last-writer-wins.
type Store interface {
	// Get returns the value stored under key, or nil when the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Remove deletes the key. Removing an absent key is a no-op.
	Remove(ctx context.Context, key string) error

	// Close releases any resources held by the store.
	Close() error
}
