package port

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// CounterUpsert is one atomic write against an aggregate counter. The
// (Family, DimKey, Metric, Bucket) tuple is the full counter identity.
type CounterUpsert struct {
	Family string
	DimKey string
	Dims   map[string]string
	Metric string
	Bucket time.Time
	Delta  int64
	Seen   time.Time
}

// CounterStore is the outbound port of the aggregation engine.
// Implementations must apply Upsert as a single atomic
// insert-or-increment — never a read followed by a write — because many
// requests target the same bucket concurrently.
type CounterStore interface {
	Upsert(ctx context.Context, op CounterUpsert) error
}

// CampaignDayStats is one day bucket of a campaign's funnel counters.
type CampaignDayStats struct {
	Day    time.Time `json:"day"`
	Views  int64     `json:"views"`
	Clicks int64     `json:"clicks"`
}

// StatsRepository reads aggregated counters back for reporting.
type StatsRepository interface {
	CampaignDaily(ctx context.Context, campaignID uuid.UUID, from, to time.Time) ([]CampaignDayStats, error)
}
