// Package credstore persists the authenticated session (token + user record)
// across client restarts. The store is a plain key-value surface so tests can
// swap the SQLite-backed implementation for an in-memory one.
package credstore

import "context"

// Store is durable key-value storage for credential entries.
//
// Get returns (nil, nil) when the key is absent; absence is not an error.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Clear(ctx context.Context) error
}
