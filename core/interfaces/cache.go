// ABOUTME: Cache interface used by the GitHub activity service
// ABOUTME: Implementations can be in-memory, Redis, or SQLite

package interfaces

import (
	"context"
	"time"
)

// Cache defines the interface for cache operations.
// Implementations can be Redis, SQLite, in-memory, or any other caching solution.
//
// Values are whole-entry snapshots; overlapping writes to the same key are
// last-write-wins. Callers that need freshness semantics store their own
// timestamp inside the value and pass ttl 0, so stale entries stay
// readable as a fallback source.
type Cache interface {
	// Get retrieves a value from the cache by key.
	// Returns the cached data as []byte or an error if the key doesn't exist.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value in the cache with the given key and TTL.
	// If ttl is 0, the value should be stored indefinitely.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a value from the cache by key.
	// Returns nil if the key doesn't exist.
	Delete(ctx context.Context, key string) error
}
