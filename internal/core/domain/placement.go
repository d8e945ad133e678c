package domain

import (
	"time"

	"github.com/google/uuid"
)

// Placement is a named ad slot on a publisher surface. It binds a template
// and may override the account-level reserve percentage.
type Placement struct {
	ID         uuid.UUID
	AccountID  uuid.UUID
	Publisher  string
	Name       string
	TemplateID uuid.UUID

	// ReservePercent, when set and within [0,100], overrides the account
	// default reserve percentage for this placement.
	ReservePercent *int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// EffectiveReserve resolves the reserve percentage for this placement:
// placement override when present and within [0,100], else the account
// default when within range, else zero.
func (p Placement) EffectiveReserve(a Account) int {
	if p.ReservePercent != nil && *p.ReservePercent >= 0 && *p.ReservePercent <= 100 {
		return *p.ReservePercent
	}
	if a.DefaultReservePercent >= 0 && a.DefaultReservePercent <= 100 {
		return a.DefaultReservePercent
	}
	return 0
}
