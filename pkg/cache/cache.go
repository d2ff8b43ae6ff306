// Package cache provides result caching for graph analysis runs.
//
// Analysis output is deterministic for a given input and option set, so
// results are cached under a key derived from a hash of both. Three
// backends are provided: FileCache for local CLI use, RedisCache for the
// serve mode, and NullCache to disable caching entirely.
package cache

import (
	"context"
	"time"
)

// DefaultTTL is how long cached analysis results stay valid when the
// caller does not choose a TTL. Results never go stale on their own (the
// input hash pins them), so this mostly bounds disk usage.
const DefaultTTL = 7 * 24 * time.Hour

// Cache is the storage interface shared by all backends.
type Cache interface {
	// Get retrieves a value. The second result reports whether the key
	// was present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with the given TTL. A non-positive TTL stores
	// the entry without expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the backend.
	Close() error
}
