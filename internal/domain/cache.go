package domain

import (
	"context"
	"time"
)

// CacheError is a sentinel error type for cache lookups.
type CacheError string

func (e CacheError) Error() string {
	return string(e)
}

// ErrCacheMiss means the key holds no value.
const ErrCacheMiss = CacheError("cache: key not found")

// Cache is the key/value store used for derived data such as the category list.
// Values are opaque strings; callers own the encoding.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	// Set stores value under key. A zero expiration keeps it until deleted.
	Set(ctx context.Context, key string, value string, expiration time.Duration) error
	// Delete is a no-op for an absent key.
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
}
