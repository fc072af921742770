package cache

import (
	"context"
	"time"
)

// Cache is the storage-agnostic cache contract injected into repositories.
// The Redis implementation lives in internal/infrastructure/cache.
type Cache interface {
	// Get unmarshals the cached value into dest. Returns false on a miss.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	Delete(ctx context.Context, keys ...string) error

	// DeletePattern removes every key matching a glob pattern, used to
	// invalidate a whole entity namespace after a write.
	DeletePattern(ctx context.Context, pattern string) error

	Ping(ctx context.Context) error
}
