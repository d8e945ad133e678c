package domain

import (
	"time"

	"github.com/google/uuid"
)

// Account carries tenant-level delivery defaults.
type Account struct {
	ID uuid.UUID

	// DefaultReservePercent is the fraction of requests diverted to the
	// fallback unit when the placement has no override.
	DefaultReservePercent int

	// RequiredCreatives is the minimum number of live creatives a campaign
	// needs before it may serve, unless the campaign overrides it.
	RequiredCreatives int

	CreatedAt time.Time
}
