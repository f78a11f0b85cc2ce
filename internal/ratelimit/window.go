package ratelimit

import (
	"sync"
	"time"
)

type counter struct {
	count       int
	windowStart time.Time
}

// FixedWindowStore counts requests per identifier inside a fixed time window.
// It implements echo's middleware.RateLimiterStore so it can be plugged into
// middleware.RateLimiterWithConfig.
type FixedWindowStore struct {
	limit  int
	window time.Duration

	mu       sync.Mutex
	counters map[string]*counter

	now func() time.Time
}

func NewFixedWindowStore(limit int, window time.Duration) *FixedWindowStore {
	return &FixedWindowStore{
		limit:    limit,
		window:   window,
		counters: make(map[string]*counter),
		now:      time.Now,
	}
}

// Allow reports whether the identifier may make another request in the current
// window. Counters from past windows are reset in place; other stale entries
// are swept opportunistically to keep the map bounded.
func (s *FixedWindowStore) Allow(identifier string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()

	c, ok := s.counters[identifier]
	if !ok || now.Sub(c.windowStart) >= s.window {
		s.counters[identifier] = &counter{count: 1, windowStart: now}
		s.sweep(now)
		return true, nil
	}

	if c.count >= s.limit {
		return false, nil
	}
	c.count++
	return true, nil
}

func (s *FixedWindowStore) sweep(now time.Time) {
	for id, c := range s.counters {
		if now.Sub(c.windowStart) >= s.window {
			delete(s.counters, id)
		}
	}
}
