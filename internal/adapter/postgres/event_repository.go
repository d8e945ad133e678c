package postgres

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"relay-ads/internal/core/domain"
	"relay-ads/internal/core/port"
)

// EventRepository stores per-delivery request events.
type EventRepository struct {
	pool *pgxpool.Pool
}

// NewEventRepository returns a new repository instance.
func NewEventRepository(pool *pgxpool.Pool) *EventRepository {
	return &EventRepository{pool: pool}
}

// InsertRequestEvent writes one immutable request event. Replays of the same
// correlation id are ignored rather than erroring.
func (r *EventRepository) InsertRequestEvent(ctx context.Context, ev domain.RequestEvent) error {
	custom, err := json.Marshal(ev.Custom)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `
		INSERT INTO request_events
		    (correlation_id, placement_id, campaign_id, creative_id, occurred_at,
		     bot_detected, bot_reason, bot_weight, custom, client_ip, user_agent)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
		ON CONFLICT (correlation_id) DO NOTHING`,
		ev.CorrelationID, ev.PlacementID, ev.CampaignID, ev.CreativeID, ev.OccurredAt,
		ev.Bot.Detected, ev.Bot.Reason, ev.Bot.Weight, custom, ev.ClientIP, ev.UserAgent)
	return err
}

// FindRequestEvent returns the event recorded for a correlation id.
func (r *EventRepository) FindRequestEvent(ctx context.Context, correlationID uuid.UUID) (*domain.RequestEvent, error) {
	var (
		ev     domain.RequestEvent
		custom []byte
	)
	err := r.pool.QueryRow(ctx, `
		SELECT correlation_id, placement_id, campaign_id, creative_id, occurred_at,
		       bot_detected, bot_reason, bot_weight, custom, client_ip, user_agent
		FROM request_events WHERE correlation_id = $1`, correlationID).
		Scan(&ev.CorrelationID, &ev.PlacementID, &ev.CampaignID, &ev.CreativeID, &ev.OccurredAt,
			&ev.Bot.Detected, &ev.Bot.Reason, &ev.Bot.Weight, &custom, &ev.ClientIP, &ev.UserAgent)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, port.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if len(custom) > 0 {
		if err := json.Unmarshal(custom, &ev.Custom); err != nil {
			return nil, err
		}
	}
	return &ev, nil
}
