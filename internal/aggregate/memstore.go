package aggregate

import (
	"context"
	"sync"
	"time"

	"relay-ads/internal/core/port"
)

// Counter is one materialised counter row in the in-memory store.
type Counter struct {
	Dims     map[string]string
	Count    int64
	LastSeen time.Time
}

// MemStore is an in-memory CounterStore honouring the same atomicity
// contract as the Postgres implementation. It backs unit tests and local
// development without a database.
type MemStore struct {
	mu       sync.Mutex
	counters map[memKey]*Counter
}

type memKey struct {
	family string
	dimKey string
	metric string
	bucket time.Time
}

// NewMemStore returns an empty store.
func NewMemStore() *MemStore {
	return &MemStore{counters: make(map[memKey]*Counter)}
}

// Upsert applies one insert-or-increment under the store mutex.
func (s *MemStore) Upsert(_ context.Context, op port.CounterUpsert) error {
	key := memKey{family: op.Family, dimKey: op.DimKey, metric: op.Metric, bucket: op.Bucket}
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.counters[key]
	if !ok {
		c = &Counter{Dims: op.Dims}
		s.counters[key] = c
	}
	c.Count += op.Delta
	if op.Seen.After(c.LastSeen) {
		c.LastSeen = op.Seen
	}
	return nil
}

// Get returns a copy of the counter for the given identity, if present.
func (s *MemStore) Get(family, dimKey, metric string, bucket time.Time) (Counter, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.counters[memKey{family: family, dimKey: dimKey, metric: metric, bucket: bucket}]
	if !ok {
		return Counter{}, false
	}
	return *c, true
}

// Len reports how many distinct counter rows exist.
func (s *MemStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.counters)
}
