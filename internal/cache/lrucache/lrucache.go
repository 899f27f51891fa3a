// Package lrucache is the in-process cache tier, a fixed-size expirable LRU.
package lrucache

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

type Cache struct {
	lru *expirable.LRU[string, []byte]
}

// New builds a cache holding at most size entries, each expiring ttl after
// insertion. The per-call ttl on Set is ignored: the in-process tier keeps
// one policy and lets Redis carry per-entry lifetimes.
func New(size int, ttl time.Duration) *Cache {
	if size <= 0 {
		size = 128
	}
	return &Cache{lru: expirable.NewLRU[string, []byte](size, nil, ttl)}
}

func (c *Cache) Get(_ context.Context, key string) ([]byte, bool, error) {
	v, ok := c.lru.Get(key)
	return v, ok, nil
}

func (c *Cache) Set(_ context.Context, key string, val []byte, _ time.Duration) error {
	c.lru.Add(key, val)
	return nil
}

func (c *Cache) Del(_ context.Context, keys ...string) error {
	for _, k := range keys {
		c.lru.Remove(k)
	}
	return nil
}
