// Package kafkaconsumer feeds observation events from Kafka into the tally
// counters.
package kafkaconsumer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/IBM/sarama"

	"github.com/geofront-jp/jismesh-grid/internal/observability"
	"github.com/geofront-jp/jismesh-grid/internal/tally"
)

// Recorder is the tally surface the consumer writes into.
type Recorder interface {
	Record(ctx context.Context, ev tally.Event) error
}

type Consumer struct {
	cfg    Config
	logger *slog.Logger
	rec    Recorder
	ready  atomic.Bool
}

func New(cfg Config, logger *slog.Logger, rec Recorder) *Consumer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Consumer{cfg: cfg.Defaults(), logger: logger, rec: rec}
}

// Ready reports whether the consumer currently holds a partition claim.
func (c *Consumer) Ready() bool { return c.ready.Load() }

// Start joins the consumer group and processes messages until ctx is done.
func (c *Consumer) Start(ctx context.Context) error {
	if c.rec == nil {
		return errors.New("kafkaconsumer: missing recorder")
	}

	cfg := sarama.NewConfig()
	cfg.Version = sarama.V2_1_0_0
	cfg.Consumer.Group.Session.Timeout = c.cfg.SessionTimeout
	cfg.Consumer.Group.Heartbeat.Interval = c.cfg.Heartbeat
	cfg.Consumer.Group.Rebalance.Timeout = c.cfg.RebalanceTimeout
	if c.cfg.InitialOffsetOldest {
		cfg.Consumer.Offsets.Initial = sarama.OffsetOldest
	} else {
		cfg.Consumer.Offsets.Initial = sarama.OffsetNewest
	}
	cfg.Consumer.Offsets.AutoCommit.Enable = true

	group, err := sarama.NewConsumerGroup(c.cfg.Brokers, c.cfg.GroupID, cfg)
	if err != nil {
		return fmt.Errorf("create consumer group: %w", err)
	}
	defer func() { _ = group.Close() }()

	handler := &groupHandler{process: c.ProcessOne, onClaim: c.ready.Store}

	c.logger.Info("tally consumer starting",
		"brokers", c.cfg.Brokers, "topic", c.cfg.Topic, "group", c.cfg.GroupID)

	for {
		select {
		case <-ctx.Done():
			c.logger.Info("tally consumer shutting down")
			return nil
		default:
			if err := group.Consume(ctx, []string{c.cfg.Topic}, handler); err != nil {
				c.logger.Error("consumer error", "err", err, "topic", c.cfg.Topic)
				time.Sleep(2 * time.Second)
			}
		}
	}
}

// ProcessOne handles a single observation message. Undecodable payloads and
// coordinates outside the territory are counted and skipped so one bad
// message cannot stall the partition; counter-store failures are returned
// so the claim retries.
func (c *Consumer) ProcessOne(ctx context.Context, msg *sarama.ConsumerMessage) error {
	var ev tally.Event
	if err := json.Unmarshal(msg.Value, &ev); err != nil {
		observability.IncTallyEvent("decode_error")
		c.logger.Warn("dropping undecodable observation",
			"topic", msg.Topic, "partition", msg.Partition, "offset", msg.Offset, "err", err)
		return nil
	}

	err := c.rec.Record(ctx, ev)
	switch {
	case err == nil:
		observability.IncTallyEvent("recorded")
		return nil
	case errors.Is(err, tally.ErrOutsideTerritory):
		observability.IncTallyEvent("out_of_range")
		c.logger.Debug("dropping observation outside the territory",
			"lat", ev.Lat, "lon", ev.Lon)
		return nil
	default:
		observability.IncTallyEvent("store_error")
		return fmt.Errorf("record observation (topic=%s, part=%d, off=%d): %w",
			msg.Topic, msg.Partition, msg.Offset, err)
	}
}
