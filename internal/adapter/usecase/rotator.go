package usecase

import "relay-ads/internal/core/domain"

// rotate picks one live creative uniformly at random. Nil means the campaign
// has no renderable creative and the slot must fall back. Image resolution
// is deliberately left to the caller so only the chosen creative is fetched.
func (u *DeliveryUseCase) rotate(c *domain.Campaign) *domain.Creative {
	live := c.LiveCreatives()
	if len(live) == 0 {
		return nil
	}
	return &live[u.rnd.Intn(len(live))]
}
