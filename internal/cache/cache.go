package cache

import (
	"sync"
	"time"
)

type item[V any] struct {
	value     V
	expiresAt time.Time
}

// Store is an in-memory TTL map. Expiry is checked lazily on every read;
// a background sweep reclaims entries nobody reads again.
type Store[V any] struct {
	mu    sync.Mutex
	items map[string]item[V]
}

func New[V any]() *Store[V] {
	s := &Store[V]{
		items: make(map[string]item[V]),
	}

	// Sweep expired items periodically so unread keys don't pile up.
	go s.sweepLoop(time.Minute)

	return s
}

func (s *Store[V]) Set(key string, value V, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items[key] = item[V]{
		value:     value,
		expiresAt: time.Now().Add(ttl),
	}
}

func (s *Store[V]) Get(key string) (V, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	it, exists := s.items[key]
	if !exists {
		var zero V
		return zero, false
	}

	if time.Now().After(it.expiresAt) {
		delete(s.items, key)
		var zero V
		return zero, false
	}

	return it.value, true
}

func (s *Store[V]) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, key)
}

func (s *Store[V]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

func (s *Store[V]) sweepLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		s.sweep()
	}
}

func (s *Store[V]) sweep() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	for key, it := range s.items {
		if now.After(it.expiresAt) {
			delete(s.items, key)
		}
	}
}
