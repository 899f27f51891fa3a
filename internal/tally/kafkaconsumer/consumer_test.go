package kafkaconsumer

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/IBM/sarama"

	"github.com/geofront-jp/jismesh-grid/internal/tally"
)

type fakeRecorder struct {
	mu    sync.Mutex
	seen  []tally.Event
	err   error // returned on every call
	failN int   // fail this many calls before succeeding
}

func (f *fakeRecorder) Record(_ context.Context, ev tally.Event) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failN > 0 {
		f.failN--
		return errors.New("transient store failure")
	}
	if f.err != nil {
		return f.err
	}
	f.seen = append(f.seen, ev)
	return nil
}

type sess struct {
	ctx    context.Context
	mu     sync.Mutex
	marked []int64
}

func (s *sess) Claims() map[string][]int32 { return nil }
func (s *sess) MemberID() string           { return "" }
func (s *sess) GenerationID() int32        { return 0 }
func (s *sess) MarkMessage(m *sarama.ConsumerMessage, _ string) {
	s.mu.Lock()
	s.marked = append(s.marked, m.Offset)
	s.mu.Unlock()
}
func (s *sess) ResetOffset(_ string, _ int32, _ int64, _ string) {}
func (s *sess) MarkOffset(_ string, _ int32, _ int64, _ string)  {}
func (s *sess) Context() context.Context                         { return s.ctx }
func (s *sess) Errors() <-chan error                             { return nil }
func (s *sess) Commit()                                          {}

type claim struct {
	msgs chan *sarama.ConsumerMessage
}

func (c *claim) Topic() string                            { return "mesh-observations" }
func (c *claim) Partition() int32                         { return 0 }
func (c *claim) InitialOffset() int64                     { return 0 }
func (c *claim) HighWaterMarkOffset() int64               { return 0 }
func (c *claim) Messages() <-chan *sarama.ConsumerMessage { return c.msgs }

func observation(lat, lon float64) []byte {
	b, _ := json.Marshal(tally.Event{Lat: lat, Lon: lon, RecordedAt: time.Now().UTC()})
	return b
}

func newConsumerForTest(rec Recorder) *Consumer {
	cfg := Config{Brokers: []string{"x"}, Topic: "mesh-observations", GroupID: "g"}
	return New(cfg, slog.Default(), rec)
}

func TestClaimProcessesInOrderAndMarks(t *testing.T) {
	rec := &fakeRecorder{}
	c := newConsumerForTest(rec)
	g := &groupHandler{process: c.ProcessOne}

	s := &sess{ctx: context.Background()}
	ch := make(chan *sarama.ConsumerMessage, 2)
	ch <- &sarama.ConsumerMessage{Topic: "mesh-observations", Offset: 10, Value: observation(35.6585805, 139.7454329)}
	ch <- &sarama.ConsumerMessage{Topic: "mesh-observations", Offset: 11, Value: observation(34.7, 135.5)}
	close(ch)

	if err := g.ConsumeClaim(s, &claim{msgs: ch}); err != nil {
		t.Fatalf("ConsumeClaim: %v", err)
	}
	if len(s.marked) != 2 || s.marked[0] != 10 || s.marked[1] != 11 {
		t.Fatalf("marked offsets = %v, want [10 11]", s.marked)
	}
	if len(rec.seen) != 2 {
		t.Fatalf("recorded %d events, want 2", len(rec.seen))
	}
}

func TestUndecodablePayloadIsSkipped(t *testing.T) {
	rec := &fakeRecorder{}
	c := newConsumerForTest(rec)

	msg := &sarama.ConsumerMessage{Topic: "mesh-observations", Offset: 1, Value: []byte("{not json")}
	if err := c.ProcessOne(context.Background(), msg); err != nil {
		t.Fatalf("ProcessOne must skip bad payloads, got %v", err)
	}
	if len(rec.seen) != 0 {
		t.Fatalf("bad payload reached the recorder")
	}
}

func TestOutsideTerritoryIsSkipped(t *testing.T) {
	rec := &fakeRecorder{err: tally.ErrOutsideTerritory}
	c := newConsumerForTest(rec)

	msg := &sarama.ConsumerMessage{Topic: "mesh-observations", Offset: 1, Value: observation(10.0, 139.0)}
	if err := c.ProcessOne(context.Background(), msg); err != nil {
		t.Fatalf("ProcessOne must skip out-of-territory events, got %v", err)
	}
}

func TestStoreErrorRetries(t *testing.T) {
	rec := &fakeRecorder{failN: 1}
	c := newConsumerForTest(rec)

	msg := &sarama.ConsumerMessage{Topic: "mesh-observations", Offset: 5, Value: observation(35.6585805, 139.7454329)}
	if err := c.ProcessOne(context.Background(), msg); err == nil {
		t.Fatalf("expected store error to surface")
	}

	// the claim replays the message and marks it once it succeeds
	s := &sess{ctx: context.Background()}
	g := &groupHandler{process: c.ProcessOne}
	ch := make(chan *sarama.ConsumerMessage, 1)
	ch <- msg
	close(ch)
	if err := g.ConsumeClaim(s, &claim{msgs: ch}); err != nil {
		t.Fatalf("ConsumeClaim after retry: %v", err)
	}
	if len(s.marked) != 1 || s.marked[0] != 5 {
		t.Fatalf("marked = %v, want [5]", s.marked)
	}
}

func TestReadyTracksClaims(t *testing.T) {
	c := newConsumerForTest(&fakeRecorder{})
	g := &groupHandler{process: c.ProcessOne, onClaim: c.ready.Store}

	if c.Ready() {
		t.Fatalf("consumer ready before any claim")
	}
	_ = g.Setup(nil)
	if !c.Ready() {
		t.Fatalf("consumer not ready after Setup")
	}
	_ = g.Cleanup(nil)
	if c.Ready() {
		t.Fatalf("consumer still ready after Cleanup")
	}
}
