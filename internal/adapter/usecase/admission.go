package usecase

import (
	"math/rand"
	"sync"
	"time"
)

// lockedRand is the injected random source behind admission draws, slot
// shuffling and creative rotation. A fixed seed makes delivery reproducible
// in tests; the mutex makes it safe across concurrent requests.
type lockedRand struct {
	mu sync.Mutex
	r  *rand.Rand
}

func newLockedRand(seed int64) *lockedRand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &lockedRand{r: rand.New(rand.NewSource(seed))}
}

func (l *lockedRand) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Float64()
}

func (l *lockedRand) Intn(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Intn(n)
}

func (l *lockedRand) Shuffle(n int, swap func(i, j int)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.r.Shuffle(n, swap)
}

// admit performs the single uniform admission draw for a request. The draw
// happens once per request, not per slot: when the draw lands inside the
// reserve fraction the entire batch falls back together and the eligibility
// query is never issued.
func (u *DeliveryUseCase) admit(reservePercent int) bool {
	if reservePercent <= 0 {
		return true
	}
	if reservePercent >= 100 {
		return false
	}
	return u.rnd.Float64() >= float64(reservePercent)/100
}
