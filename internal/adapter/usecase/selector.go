package usecase

import "relay-ads/internal/core/domain"

// slot marks one response position: a real campaign, or the fallback unit
// when campaign is nil.
type slot struct {
	campaign *domain.Campaign
}

// selectSlots shuffles the eligible set unbiased and takes the first n;
// positions beyond the eligible set are filled with fallback markers. The
// returned order is the shuffle order and carries no stability guarantee.
func (u *DeliveryUseCase) selectSlots(eligible []domain.Campaign, n int) []slot {
	shuffled := make([]domain.Campaign, len(eligible))
	copy(shuffled, eligible)
	u.rnd.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	slots := make([]slot, n)
	for i := 0; i < n && i < len(shuffled); i++ {
		slots[i].campaign = &shuffled[i]
	}
	return slots
}
