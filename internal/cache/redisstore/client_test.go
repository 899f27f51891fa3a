package redisstore

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
)

func newMini(t *testing.T) *Client {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	t.Cleanup(cancel)

	rc, err := New(ctx, mr.Addr())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { _ = rc.Close() })
	return rc
}

func TestSetGetDel(t *testing.T) {
	rc := newMini(t)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	if err := rc.Set(ctx, "k1", []byte("v1"), 5*time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, ok, err := rc.Get(ctx, "k1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !ok || string(got) != "v1" {
		t.Fatalf("Get k1 = %q, ok=%v; want v1, true", got, ok)
	}

	if _, ok, err := rc.Get(ctx, "missing"); err != nil || ok {
		t.Fatalf("Get missing: ok=%v err=%v; want false, nil", ok, err)
	}

	if err := rc.Del(ctx, "k1"); err != nil {
		t.Fatalf("Del: %v", err)
	}
	if _, ok, _ := rc.Get(ctx, "k1"); ok {
		t.Fatalf("k1 still present after Del")
	}
}

func TestCounters(t *testing.T) {
	rc := newMini(t)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	if n, err := rc.GetInt64(ctx, "cnt"); err != nil || n != 0 {
		t.Fatalf("GetInt64 on missing key = %d, %v; want 0, nil", n, err)
	}

	if total, err := rc.IncrBy(ctx, "cnt", 3); err != nil || total != 3 {
		t.Fatalf("IncrBy = %d, %v; want 3, nil", total, err)
	}
	if total, err := rc.IncrBy(ctx, "cnt", 2); err != nil || total != 5 {
		t.Fatalf("second IncrBy = %d, %v; want 5, nil", total, err)
	}
	if n, err := rc.GetInt64(ctx, "cnt"); err != nil || n != 5 {
		t.Fatalf("GetInt64 = %d, %v; want 5, nil", n, err)
	}
}

func TestCanceledContext(t *testing.T) {
	rc := newMini(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := rc.Set(ctx, "k", []byte("v"), time.Second); err == nil {
		t.Fatalf("expected error on Set with canceled context")
	}
	if _, _, err := rc.Get(ctx, "k"); err == nil {
		t.Fatalf("expected error on Get with canceled context")
	}
	if err := rc.Del(ctx, "k"); err == nil {
		t.Fatalf("expected error on Del with canceled context")
	}
}

func TestNewRequiresAddr(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	if _, err := New(ctx, ""); err == nil {
		t.Fatalf("expected error for empty address")
	}
}
