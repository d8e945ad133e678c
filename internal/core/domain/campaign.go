package domain

import (
	"time"

	"github.com/google/uuid"
)

// Campaign represents an advertiser's time-bounded unit of delivery. A
// campaign targets a set of placements, optionally narrowed by exact-match
// custom criteria, and carries an ordered list of creatives. Campaigns are
// owned by the persistence layer; the delivery engine only reads them.
type Campaign struct {
	ID         uuid.UUID
	AccountID  uuid.UUID
	Advertiser string
	Name       string

	StartAt time.Time
	EndAt   *time.Time

	Paused  bool
	Ready   bool
	Deleted bool

	// PlacementIDs is the set of placements this campaign may serve on.
	PlacementIDs []uuid.UUID

	// Criteria are optional exact-match key/value targeting constraints.
	// An empty map matches every request.
	Criteria map[string]string

	// RequiredCreatives overrides the account-level minimum count of live
	// creatives a campaign needs before it may serve.
	RequiredCreatives *int

	Creatives []Creative

	CreatedAt time.Time
	UpdatedAt time.Time
}

// LiveCreatives returns the creatives that may be rendered: active and not
// deleted, in stored order.
func (c *Campaign) LiveCreatives() []Creative {
	live := make([]Creative, 0, len(c.Creatives))
	for _, cr := range c.Creatives {
		if cr.Renderable() {
			live = append(live, cr)
		}
	}
	return live
}

// Targets reports whether the campaign's placement set contains id.
func (c *Campaign) Targets(id uuid.UUID) bool {
	for _, p := range c.PlacementIDs {
		if p == id {
			return true
		}
	}
	return false
}

// requiredCreatives resolves the campaign override against the account
// default. Values below one never make a campaign ineligible.
func (c *Campaign) requiredCreatives(accountDefault int) int {
	n := accountDefault
	if c.RequiredCreatives != nil {
		n = *c.RequiredCreatives
	}
	if n < 1 {
		n = 1
	}
	return n
}

// EligibleAt reports whether the campaign may serve on the given placement
// at time t. All flag, schedule, targeting and creative-count conditions
// must hold; an absent end date means the campaign runs indefinitely.
func (c *Campaign) EligibleAt(t time.Time, placementID uuid.UUID, accountDefaultRequired int) bool {
	if c.Deleted || !c.Ready || c.Paused {
		return false
	}
	if c.StartAt.After(t) {
		return false
	}
	if c.EndAt != nil && !c.EndAt.After(t) {
		return false
	}
	if !c.Targets(placementID) {
		return false
	}
	return len(c.LiveCreatives()) >= c.requiredCreatives(accountDefaultRequired)
}

// MatchesCriteria reports whether the cleaned request values satisfy the
// campaign's custom targeting. Every campaign-side key must be present in
// the request with an identical value; a campaign with no criteria matches
// all requests.
func (c *Campaign) MatchesCriteria(custom map[string]string) bool {
	for k, want := range c.Criteria {
		if custom[k] != want {
			return false
		}
	}
	return true
}
