package postgres

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"relay-ads/internal/core/port"
)

// CounterRepository implements the CounterStore and StatsRepository ports
// over the aggregate_counters table.
type CounterRepository struct {
	pool *pgxpool.Pool
}

// NewCounterRepository returns a new repository instance.
func NewCounterRepository(pool *pgxpool.Pool) *CounterRepository {
	return &CounterRepository{pool: pool}
}

// Upsert applies one counter write as a single atomic statement. Contended
// buckets serialise on the row inside Postgres; there is no read-modify-write
// window, so concurrent increments never lose counts.
func (r *CounterRepository) Upsert(ctx context.Context, op port.CounterUpsert) error {
	dims, err := json.Marshal(op.Dims)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `
		INSERT INTO aggregate_counters (family, dim_key, metric, bucket, dims, count, last_seen)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		ON CONFLICT (family, dim_key, metric, bucket) DO UPDATE SET
		    count = aggregate_counters.count + EXCLUDED.count,
		    last_seen = GREATEST(aggregate_counters.last_seen, EXCLUDED.last_seen)`,
		op.Family, op.DimKey, op.Metric, op.Bucket, dims, op.Delta, op.Seen)
	return err
}

// CampaignDaily sums the campaign's daily view and click counters over the
// requested range, one row per day bucket.
func (r *CounterRepository) CampaignDaily(ctx context.Context, campaignID uuid.UUID, from, to time.Time) ([]port.CampaignDayStats, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT bucket,
		       COALESCE(SUM(count) FILTER (WHERE metric = 'view'), 0)::bigint,
		       COALESCE(SUM(count) FILTER (WHERE metric = 'click'), 0)::bigint
		FROM aggregate_counters
		WHERE family = 'campaign_creative_daily'
		  AND dims->>'campaign' = $1
		  AND bucket >= $2 AND bucket <= $3
		GROUP BY bucket
		ORDER BY bucket`,
		campaignID.String(), from, to)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (port.CampaignDayStats, error) {
		var s port.CampaignDayStats
		err := row.Scan(&s.Day, &s.Views, &s.Clicks)
		return s, err
	})
}
