package domain

import (
	"time"

	"github.com/google/uuid"
)

// BotVerdict is the classification of a request's user-agent as automated
// traffic, produced by an external classifier.
type BotVerdict struct {
	Detected bool
	Reason   string
	Weight   float64
	Value    string
}

// RequestEvent is the ephemeral record of one delivered slot. It is created
// once and never mutated; view and click beacons reuse its correlation id so
// funnel analysis can join them later.
type RequestEvent struct {
	CorrelationID uuid.UUID
	PlacementID   uuid.UUID
	CampaignID    *uuid.UUID
	CreativeID    *uuid.UUID
	OccurredAt    time.Time
	Bot           BotVerdict
	Custom        map[string]string
	ClientIP      string
	UserAgent     string
}
