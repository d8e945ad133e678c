// Package recorder persists request events off the ad response path. Record
// is fire-and-forget with at-least-once semantics into the aggregation
// model: a full queue drops the event, and failures are logged, never
// surfaced to the caller.
package recorder

import (
	"context"
	"fmt"
	"hash/fnv"
	"log/slog"
	"sync"
	"time"

	"relay-ads/internal/aggregate"
	"relay-ads/internal/config/configs"
	"relay-ads/internal/core/domain"
	"relay-ads/internal/core/port"
	"relay-ads/internal/metrics"
)

// Recorder drains a bounded queue of request events into the event store
// and the hourly request-volume counter family.
type Recorder struct {
	events  port.EventRepository
	agg     *aggregate.Engine
	log     *slog.Logger
	timeout time.Duration

	queue chan domain.RequestEvent
	done  chan struct{}
	once  sync.Once
}

// New starts a recorder with the configured queue bound and per-write
// timeout.
func New(events port.EventRepository, agg *aggregate.Engine, log *slog.Logger, cfg configs.Recorder) *Recorder {
	r := &Recorder{
		events:  events,
		agg:     agg,
		log:     log,
		timeout: cfg.WriteTimeout,
		queue:   make(chan domain.RequestEvent, cfg.QueueSize),
		done:    make(chan struct{}),
	}
	go r.drain()
	return r
}

// Record enqueues the event without blocking. When the queue is full the
// event is dropped and counted.
func (r *Recorder) Record(ev domain.RequestEvent) {
	select {
	case r.queue <- ev:
	default:
		metrics.RecorderDroppedTotal.Inc()
		r.log.Warn("recorder queue full, event dropped",
			slog.String("correlation_id", ev.CorrelationID.String()))
	}
}

// Close stops intake and waits until the queue drains or ctx expires.
func (r *Recorder) Close(ctx context.Context) error {
	r.once.Do(func() { close(r.queue) })
	select {
	case <-r.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (r *Recorder) drain() {
	defer close(r.done)
	for ev := range r.queue {
		r.write(ev)
	}
}

func (r *Recorder) write(ev domain.RequestEvent) {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	if err := r.events.InsertRequestEvent(ctx, ev); err != nil {
		r.log.Error("request event write failed",
			slog.String("correlation_id", ev.CorrelationID.String()),
			slog.Any("error", err))
	}
	r.agg.WriteLogged(ctx, aggregate.RequestVolumeHourly,
		map[string]string{"hash": contentHash(ev.UserAgent, ev.ClientIP)},
		aggregate.MetricRequest, 1, ev.OccurredAt)
}

// contentHash fingerprints the requesting client for hourly volume
// counters. FNV-1a keeps the hot path allocation-free.
func contentHash(userAgent, clientIP string) string {
	h := fnv.New64a()
	h.Write([]byte(userAgent))
	h.Write([]byte{0})
	h.Write([]byte(clientIP))
	return fmt.Sprintf("%016x", h.Sum64())
}
