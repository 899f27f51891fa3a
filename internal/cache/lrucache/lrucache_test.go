package lrucache

import (
	"context"
	"fmt"
	"testing"
	"time"
)

func TestSetGetDel(t *testing.T) {
	c := New(8, time.Minute)
	ctx := context.Background()

	if err := c.Set(ctx, "k", []byte("v"), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, ok, err := c.Get(ctx, "k")
	if err != nil || !ok || string(got) != "v" {
		t.Fatalf("Get = %q, %v, %v; want v, true, nil", got, ok, err)
	}

	if err := c.Del(ctx, "k"); err != nil {
		t.Fatalf("Del: %v", err)
	}
	if _, ok, _ := c.Get(ctx, "k"); ok {
		t.Fatalf("k still present after Del")
	}
}

func TestEvictsBySize(t *testing.T) {
	c := New(2, time.Minute)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		key := fmt.Sprintf("k%d", i)
		if err := c.Set(ctx, key, []byte(key), 0); err != nil {
			t.Fatalf("Set %s: %v", key, err)
		}
	}

	if _, ok, _ := c.Get(ctx, "k0"); ok {
		t.Fatalf("oldest entry survived past the size cap")
	}
	if _, ok, _ := c.Get(ctx, "k2"); !ok {
		t.Fatalf("newest entry missing")
	}
}

func TestZeroSizeFallsBackToDefault(t *testing.T) {
	c := New(0, time.Minute)
	ctx := context.Background()

	if err := c.Set(ctx, "k", []byte("v"), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, ok, _ := c.Get(ctx, "k"); !ok {
		t.Fatalf("entry missing from default-sized cache")
	}
}
