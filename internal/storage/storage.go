// Package storage holds the key-value drivers the dashboard state can be
// persisted to. Every driver writes a batch of entries atomically.
package storage

import "context"

// Driver is a key-value backend. Load returns only the keys that exist.
type Driver interface {
	Name() string
	Load(ctx context.Context, keys []string) (map[string][]byte, error)
	Save(ctx context.Context, entries map[string][]byte) error
	Ping(ctx context.Context) error
}
