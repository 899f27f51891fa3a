package tally

import (
	"context"
	"errors"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"

	"github.com/geofront-jp/jismesh-grid/internal/cache/redisstore"
)

func newCounter(t *testing.T, levels []int) *Counter {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	t.Cleanup(cancel)

	rc, err := redisstore.New(ctx, mr.Addr())
	if err != nil {
		t.Fatalf("redisstore.New: %v", err)
	}
	t.Cleanup(func() { _ = rc.Close() })
	return NewCounter(rc, levels)
}

func TestRecordCountsEveryLevel(t *testing.T) {
	c := newCounter(t, []int{1, 3})
	ctx := context.Background()

	// Tokyo Tower
	ev := Event{Lat: 35.6585805, Lon: 139.7454329, RecordedAt: time.Now()}
	if err := c.Record(ctx, ev); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if err := c.Record(ctx, ev); err != nil {
		t.Fatalf("second Record: %v", err)
	}

	if n, err := c.Count(ctx, "5339"); err != nil || n != 2 {
		t.Fatalf("Count(5339) = %d, %v; want 2, nil", n, err)
	}
	if n, err := c.Count(ctx, "53393599"); err != nil || n != 2 {
		t.Fatalf("Count(53393599) = %d, %v; want 2, nil", n, err)
	}
}

func TestCountUnseenCellIsZero(t *testing.T) {
	c := newCounter(t, []int{3})
	if n, err := c.Count(context.Background(), "53393600"); err != nil || n != 0 {
		t.Fatalf("Count = %d, %v; want 0, nil", n, err)
	}
}

func TestCountRejectsBadCode(t *testing.T) {
	c := newCounter(t, []int{3})
	if _, err := c.Count(context.Background(), "12345"); err == nil {
		t.Fatalf("expected error for malformed code")
	}
}

func TestRecordOutsideTerritory(t *testing.T) {
	c := newCounter(t, []int{3})
	ctx := context.Background()

	// valid coordinate, outside the covered box
	err := c.Record(ctx, Event{Lat: 10.0, Lon: 139.0})
	if !errors.Is(err, ErrOutsideTerritory) {
		t.Fatalf("err = %v, want ErrOutsideTerritory", err)
	}

	// not a coordinate at all
	err = c.Record(ctx, Event{Lat: 95.0, Lon: 139.0})
	if !errors.Is(err, ErrOutsideTerritory) {
		t.Fatalf("err = %v, want ErrOutsideTerritory", err)
	}
}

func TestDefaultLevels(t *testing.T) {
	c := newCounter(t, nil)
	if got := c.Levels(); len(got) != 1 || got[0] != 3 {
		t.Fatalf("Levels = %v, want [3]", got)
	}
}
