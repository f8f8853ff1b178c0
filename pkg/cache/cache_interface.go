package cache

import (
	"context"
	"time"
)

// Cache is the contract for the caching layer. Implementations JSON-encode
// values; a broken backend must degrade to cache misses rather than failing
// the request that tried to use it.
type Cache interface {
	// Get loads the value stored under key into dest.
	// found=false means cache miss and dest is left untouched.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Set stores value under key with the given TTL.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete removes the given keys.
	Delete(ctx context.Context, keys ...string) error

	// DeletePattern removes all keys matching a glob pattern.
	DeletePattern(ctx context.Context, pattern string) error

	// Ping verifies the backend connection.
	Ping(ctx context.Context) error
}
