// Package tiered layers the in-process LRU in front of Redis. Reads promote
// Redis hits into the LRU; writes go to both tiers.
package tiered

import (
	"context"
	"time"

	"github.com/geofront-jp/jismesh-grid/internal/cache"
	"github.com/geofront-jp/jismesh-grid/internal/observability"
)

type Store struct {
	local  cache.Store
	remote cache.Store // nil when the service runs without Redis
}

func New(local, remote cache.Store) *Store {
	return &Store{local: local, remote: remote}
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if v, ok, err := s.local.Get(ctx, key); err == nil && ok {
		observability.IncCacheHit("local")
		return v, true, nil
	}
	observability.IncCacheMiss("local")

	if s.remote == nil {
		return nil, false, nil
	}
	v, ok, err := s.remote.Get(ctx, key)
	if err != nil {
		return nil, false, err
	}
	if !ok {
		observability.IncCacheMiss("remote")
		return nil, false, nil
	}
	observability.IncCacheHit("remote")
	// promote; local tier keeps its own expiry policy
	_ = s.local.Set(ctx, key, v, 0)
	return v, true, nil
}

func (s *Store) Set(ctx context.Context, key string, val []byte, ttl time.Duration) error {
	if err := s.local.Set(ctx, key, val, ttl); err != nil {
		return err
	}
	if s.remote == nil {
		return nil
	}
	return s.remote.Set(ctx, key, val, ttl)
}

func (s *Store) Del(ctx context.Context, keys ...string) error {
	if err := s.local.Del(ctx, keys...); err != nil {
		return err
	}
	if s.remote == nil {
		return nil
	}
	return s.remote.Del(ctx, keys...)
}
