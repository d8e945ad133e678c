package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"relay-ads/internal/core/domain"
	"relay-ads/internal/core/port"
)

// DeliveryRepository implements the read-only delivery port using pgxpool.
type DeliveryRepository struct {
	pool *pgxpool.Pool
}

// NewDeliveryRepository returns a new repository instance.
func NewDeliveryRepository(pool *pgxpool.Pool) *DeliveryRepository {
	return &DeliveryRepository{pool: pool}
}

// GetPlacement returns a placement by id.
func (r *DeliveryRepository) GetPlacement(ctx context.Context, id uuid.UUID) (*domain.Placement, error) {
	var p domain.Placement
	err := r.pool.QueryRow(ctx, `
		SELECT id, account_id, publisher, name, template_id, reserve_percent, created_at, updated_at
		FROM placements WHERE id = $1`, id).
		Scan(&p.ID, &p.AccountID, &p.Publisher, &p.Name, &p.TemplateID, &p.ReservePercent, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, port.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// GetAccount returns an account by id.
func (r *DeliveryRepository) GetAccount(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	var a domain.Account
	err := r.pool.QueryRow(ctx, `
		SELECT id, default_reserve_percent, required_creatives, created_at
		FROM accounts WHERE id = $1`, id).
		Scan(&a.ID, &a.DefaultReservePercent, &a.RequiredCreatives, &a.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, port.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// GetTemplate returns a template by id.
func (r *DeliveryRepository) GetTemplate(ctx context.Context, id uuid.UUID) (*domain.Template, error) {
	var t domain.Template
	err := r.pool.QueryRow(ctx, `
		SELECT id, account_id, name, primary_markup, fallback_markup, created_at, updated_at
		FROM templates WHERE id = $1`, id).
		Scan(&t.ID, &t.AccountID, &t.Name, &t.PrimaryMarkup, &t.FallbackMarkup, &t.CreatedAt, &t.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, port.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// FindEligibleCampaigns loads live campaigns for the placement at time at.
// Flags, schedule and placement membership are applied in SQL; creative
// counts and custom criteria are applied in Go after decoding the criteria
// document. Image references are deliberately not selected here.
func (r *DeliveryRepository) FindEligibleCampaigns(ctx context.Context, at time.Time, placementID uuid.UUID, custom map[string]string, accountDefaultRequired int) ([]domain.Campaign, error) {
	query := `
        SELECT
            c.id,
            c.account_id,
            c.advertiser,
            c.name,
            c.start_at,
            c.end_at,
            c.paused,
            c.ready,
            c.deleted,
            c.placement_ids,
            c.criteria,
            c.required_creatives,
            c.created_at,
            c.updated_at,
            cr.id,
            cr.title,
            cr.teaser,
            cr.landing_url,
            cr.position
        FROM campaigns c
        LEFT JOIN creatives cr
            ON cr.campaign_id = c.id AND cr.active AND NOT cr.deleted
        WHERE NOT c.deleted
          AND c.ready
          AND NOT c.paused
          AND c.start_at <= $1
          AND (c.end_at IS NULL OR c.end_at > $1)
          AND c.placement_ids @> to_jsonb($2::text)
        ORDER BY c.id, cr.position`
	rows, err := r.pool.Query(ctx, query, at, placementID.String())
	if err != nil {
		return nil, err
	}

	type rawRow struct {
		Camp         domain.Campaign
		PlacementRaw []byte
		CriteriaRaw  []byte
		CrID         *uuid.UUID
		CrTitle      *string
		CrTeaser     *string
		CrLandingURL *string
		CrPosition   *int
	}
	raw, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (rawRow, error) {
		var rr rawRow
		err := row.Scan(
			&rr.Camp.ID,
			&rr.Camp.AccountID,
			&rr.Camp.Advertiser,
			&rr.Camp.Name,
			&rr.Camp.StartAt,
			&rr.Camp.EndAt,
			&rr.Camp.Paused,
			&rr.Camp.Ready,
			&rr.Camp.Deleted,
			&rr.PlacementRaw,
			&rr.CriteriaRaw,
			&rr.Camp.RequiredCreatives,
			&rr.Camp.CreatedAt,
			&rr.Camp.UpdatedAt,
			&rr.CrID,
			&rr.CrTitle,
			&rr.CrTeaser,
			&rr.CrLandingURL,
			&rr.CrPosition,
		)
		return rr, err
	})
	if err != nil {
		return nil, err
	}

	// Group join rows into campaigns, skipping any with a malformed
	// placement or criteria document.
	var campaigns []domain.Campaign
	index := make(map[uuid.UUID]int)
	for _, rr := range raw {
		i, seen := index[rr.Camp.ID]
		if !seen {
			c := rr.Camp
			if err := json.Unmarshal(rr.PlacementRaw, &c.PlacementIDs); err != nil {
				continue
			}
			if len(rr.CriteriaRaw) > 0 {
				if err := json.Unmarshal(rr.CriteriaRaw, &c.Criteria); err != nil {
					continue
				}
			}
			campaigns = append(campaigns, c)
			i = len(campaigns) - 1
			index[rr.Camp.ID] = i
		}
		if rr.CrID != nil {
			campaigns[i].Creatives = append(campaigns[i].Creatives, domain.Creative{
				ID:         *rr.CrID,
				CampaignID: rr.Camp.ID,
				Title:      deref(rr.CrTitle),
				Teaser:     deref(rr.CrTeaser),
				LandingURL: deref(rr.CrLandingURL),
				Active:     true,
				Position:   deref(rr.CrPosition),
			})
		}
	}

	eligible := campaigns[:0]
	for _, c := range campaigns {
		if c.EligibleAt(at, placementID, accountDefaultRequired) && c.MatchesCriteria(custom) {
			eligible = append(eligible, c)
		}
	}
	return eligible, nil
}

// ResolveCreativeImage fetches the image reference of one chosen creative.
func (r *DeliveryRepository) ResolveCreativeImage(ctx context.Context, creativeID uuid.UUID) (domain.CreativeImage, error) {
	var img domain.CreativeImage
	err := r.pool.QueryRow(ctx, `
		SELECT image_url, focal_x, focal_y FROM creatives WHERE id = $1`, creativeID).
		Scan(&img.URL, &img.FocalX, &img.FocalY)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.CreativeImage{}, port.ErrNotFound
	}
	if err != nil {
		return domain.CreativeImage{}, fmt.Errorf("resolve image for creative %s: %w", creativeID, err)
	}
	return img, nil
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
