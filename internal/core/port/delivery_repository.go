package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"relay-ads/internal/core/domain"
)

// DeliveryRepository is the read-only outbound port over the externally
// owned entities. Entities are read fresh per request; this core keeps no
// cache of them. Lookups for missing entities return ErrNotFound.
type DeliveryRepository interface {
	GetPlacement(ctx context.Context, id uuid.UUID) (*domain.Placement, error)
	GetAccount(ctx context.Context, id uuid.UUID) (*domain.Account, error)
	GetTemplate(ctx context.Context, id uuid.UUID) (*domain.Template, error)

	// FindEligibleCampaigns returns the campaigns that satisfy the full
	// eligibility invariant for the placement at time at, intersected with
	// the cleaned custom targeting values. Creatives are joined without
	// their image references; no ordering is implied.
	FindEligibleCampaigns(ctx context.Context, at time.Time, placementID uuid.UUID, custom map[string]string, accountDefaultRequired int) ([]domain.Campaign, error)

	// ResolveCreativeImage fetches the image reference of a single chosen
	// creative. Unchosen creatives' images are never resolved.
	ResolveCreativeImage(ctx context.Context, creativeID uuid.UUID) (domain.CreativeImage, error)
}

// EventRepository persists and reads back per-delivery request events.
type EventRepository interface {
	InsertRequestEvent(ctx context.Context, ev domain.RequestEvent) error
	FindRequestEvent(ctx context.Context, correlationID uuid.UUID) (*domain.RequestEvent, error)
}
