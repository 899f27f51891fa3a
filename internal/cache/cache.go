// Package cache defines the byte-payload cache contract shared by the
// in-process and Redis tiers.
package cache

import (
	"context"
	"time"
)

type Store interface {
	// Get returns the cached payload and whether the key was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, val []byte, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
}
