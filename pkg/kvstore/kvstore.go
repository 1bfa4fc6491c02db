// Package kvstore provides the durable key-value cache behind session
// and roster snapshots. Backends serialize values as JSON; absence is
// reported as a boolean, not an error, so callers can fall back to
// seed data without inspecting error types.
package kvstore

import "context"

// Store is a pluggable key-value persistence capability.
type Store interface {
	// Get unmarshals the value stored under key into dest. The boolean
	// is false when the key is absent or the payload cannot be decoded.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	// Set stores the value under key, replacing any previous value.
	Set(ctx context.Context, key string, value interface{}) error
	// Delete removes the key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
