// Package tally counts location observations per mesh cell. Events arrive
// from Kafka, are binned with the mesh hierarchy at the configured levels,
// and accumulate in Redis counters.
package tally

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/geofront-jp/jismesh-grid/internal/cache/keys"
	"github.com/geofront-jp/jismesh-grid/internal/observability"
	"github.com/geofront-jp/jismesh-grid/pkg/jpmesh"
)

// Event is one location observation as published on the Kafka topic.
type Event struct {
	Lat        float64   `json:"lat"`
	Lon        float64   `json:"lon"`
	RecordedAt time.Time `json:"recorded_at"`
	Source     string    `json:"source,omitempty"`
}

// ErrOutsideTerritory marks events whose coordinate cannot be binned; the
// consumer counts and skips these rather than stalling the partition.
var ErrOutsideTerritory = errors.New("observation outside the mesh territory")

// CounterStore is the Redis surface the counter needs.
type CounterStore interface {
	IncrBy(ctx context.Context, key string, n int64) (int64, error)
	GetInt64(ctx context.Context, key string) (int64, error)
}

type Counter struct {
	store  CounterStore
	levels []int
}

// NewCounter counts each event once per level in levels.
func NewCounter(store CounterStore, levels []int) *Counter {
	if len(levels) == 0 {
		levels = []int{3}
	}
	return &Counter{store: store, levels: levels}
}

// Record bins ev at every configured level and increments the counters.
func (c *Counter) Record(ctx context.Context, ev Event) error {
	coord, err := jpmesh.NewCoordinate(ev.Lat, ev.Lon)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrOutsideTerritory, err)
	}
	for _, level := range c.levels {
		m, err := jpmesh.FromCoordinate(level, coord)
		observability.IncMeshOp("encode", level, err)
		if err != nil {
			var oor *jpmesh.OutOfRangeError
			if errors.As(err, &oor) {
				return fmt.Errorf("%w: %v", ErrOutsideTerritory, err)
			}
			return fmt.Errorf("bin level %d: %w", level, err)
		}
		if _, err := c.store.IncrBy(ctx, keys.Tally(level, m.Code()), 1); err != nil {
			return fmt.Errorf("count %s: %w", m.Code(), err)
		}
	}
	return nil
}

// Count reads the accumulated total for one mesh code; the level is implied
// by the code length. Unknown cells read as zero.
func (c *Counter) Count(ctx context.Context, code string) (int64, error) {
	m, err := jpmesh.ParseCode(code)
	if err != nil {
		return 0, err
	}
	return c.store.GetInt64(ctx, keys.Tally(m.Level(), m.Code()))
}

// Levels returns the levels this counter bins at.
func (c *Counter) Levels() []int { return c.levels }
