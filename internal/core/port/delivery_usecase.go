package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"relay-ads/internal/core/domain"
)

// Delivery is the primary inbound port of the ad engine. One call selects
// eligible campaigns (or falls back), rotates creatives, renders tracked
// markup and records request events.
type Delivery interface {
	Deliver(ctx context.Context, req DeliveryRequest) ([]SlotResult, error)
}

// DeliveryRequest describes one placement request. Slots must lie in [1,10].
// At overrides the evaluation time for testing and backfill; a nil At means
// now. Custom values are cleaned before use.
type DeliveryRequest struct {
	PlacementID  string
	At           *time.Time
	Slots        int
	Custom       map[string]any
	FallbackVars map[string]any
	Image        domain.ImageOptions
	ClientIP     string
	UserAgent    string
}

// SlotResult is one rendered slot. Exactly one of fallback or
// campaign-backed applies: fallback results carry nil campaign and creative
// ids, campaign results carry both.
type SlotResult struct {
	Fallback   bool       `json:"fallback"`
	HTML       string     `json:"html"`
	CampaignID *uuid.UUID `json:"campaign_id"`
	CreativeID *uuid.UUID `json:"creative_id"`
}

// EventRecorder dispatches request events off the response path. Record
// never blocks and never reports failure to the caller; delivery is
// at-least-once into the aggregation model.
type EventRecorder interface {
	Record(ev domain.RequestEvent)
}

// BotDetector classifies a user-agent string as automated traffic.
type BotDetector interface {
	Classify(userAgent string) domain.BotVerdict
}
