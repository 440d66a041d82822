package auth

import (
	"context"
	"sync"
	"time"
)

// SlidingWindowStore implements sliding window rate limiting in process
// memory. It satisfies the application's rate-limit port for single-instance
// deployments; counts are best-effort and reset on restart.
type SlidingWindowStore struct {
	mu      sync.Mutex
	windows map[string]*window
}

type window struct {
	requests []time.Time
	mu       sync.Mutex
}

// NewSlidingWindowStore creates an empty store and starts the janitor that
// drops idle windows.
func NewSlidingWindowStore() *SlidingWindowStore {
	s := &SlidingWindowStore{windows: make(map[string]*window)}
	go s.cleanup()
	return s
}

// Hit records one request for key and reports whether it is within limit for
// the window. retryAfter is how long until the oldest counted request leaves
// the window; it is meaningful only on rejection.
func (s *SlidingWindowStore) Hit(ctx context.Context, key string, limit int, windowSize time.Duration) (bool, time.Duration, error) {
	s.mu.Lock()
	w, exists := s.windows[key]
	if !exists {
		w = &window{requests: make([]time.Time, 0, limit)}
		s.windows[key] = w
	}
	s.mu.Unlock()

	w.mu.Lock()
	defer w.mu.Unlock()

	now := time.Now()
	windowStart := now.Add(-windowSize)

	valid := w.requests[:0]
	for _, t := range w.requests {
		if t.After(windowStart) {
			valid = append(valid, t)
		}
	}
	w.requests = valid

	if len(w.requests) >= limit {
		retryAfter := w.requests[0].Add(windowSize).Sub(now)
		if retryAfter < 0 {
			retryAfter = 0
		}
		return false, retryAfter, nil
	}

	w.requests = append(w.requests, now)
	return true, 0, nil
}

// Reset clears the accounting for a key.
func (s *SlidingWindowStore) Reset(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.windows, key)
	return nil
}

// cleanup removes windows with no recent requests.
func (s *SlidingWindowStore) cleanup() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		cutoff := time.Now().Add(-1 * time.Hour)
		s.mu.Lock()
		for key, w := range s.windows {
			w.mu.Lock()
			idle := len(w.requests) == 0 || w.requests[len(w.requests)-1].Before(cutoff)
			w.mu.Unlock()
			if idle {
				delete(s.windows, key)
			}
		}
		s.mu.Unlock()
	}
}
