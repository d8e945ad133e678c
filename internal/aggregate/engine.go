package aggregate

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"relay-ads/internal/core/port"
	"relay-ads/internal/metrics"
)

// Engine validates and buckets events, then hands them to the counter store
// as single atomic upsert-increments. Counting is at-least-once: replaying a
// logical event adds to the count each time, and no deduplication exists at
// this layer.
type Engine struct {
	store port.CounterStore
	log   *slog.Logger
}

// NewEngine creates an engine over the given store.
func NewEngine(store port.CounterStore, log *slog.Logger) *Engine {
	return &Engine{store: store, log: log}
}

// Write records delta occurrences of metric for the dimension tuple at time
// at. Every dimension the family declares must be present and non-empty;
// violations return an AggregationError and nothing is written.
func (e *Engine) Write(ctx context.Context, fam Family, dims map[string]string, metric string, delta int64, at time.Time) error {
	for _, d := range fam.Dims {
		if dims[d] == "" {
			return port.AggregationError(fmt.Sprintf("family %s: missing dimension %q", fam.Name, d))
		}
	}
	if metric == "" {
		return port.AggregationError(fmt.Sprintf("family %s: empty metric", fam.Name))
	}
	op := port.CounterUpsert{
		Family: fam.Name,
		DimKey: fam.DimKey(dims),
		Dims:   dims,
		Metric: metric,
		Bucket: fam.Bucket(at),
		Delta:  delta,
		Seen:   at,
	}
	if err := e.store.Upsert(ctx, op); err != nil {
		return fmt.Errorf("aggregate %s/%s: %w", fam.Name, metric, err)
	}
	metrics.CounterWritesTotal.WithLabelValues(fam.Name).Inc()
	return nil
}

// WriteLogged is Write for best-effort call sites: errors are logged and
// swallowed so beacon paths never fail on counter trouble.
func (e *Engine) WriteLogged(ctx context.Context, fam Family, dims map[string]string, metric string, delta int64, at time.Time) {
	if err := e.Write(ctx, fam, dims, metric, delta, at); err != nil {
		e.log.Error("counter write failed", slog.Any("error", err))
	}
}
