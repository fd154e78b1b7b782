package ghostwriter

import "context"

// Store is the key-value persistence primitive. Operations are atomic per
// key; no ordering or transactional guarantees are assumed across keys.
type Store interface {
	// Get returns the value under key, or nil if the key does not exist.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key.
	Set(ctx context.Context, key string, value []byte) error

	// GetMany returns the values of the keys that exist. Missing keys are
	// absent from the returned map.
	GetMany(ctx context.Context, keys []string) (map[string][]byte, error)

	// SetMany stores all entries.
	SetMany(ctx context.Context, entries map[string][]byte) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
