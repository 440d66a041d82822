package config

import "sync/atomic"

// Store publishes the live configuration. Readers take an immutable snapshot
// with Current; reloads swap the pointer atomically, so in-flight requests
// keep the view they started with.
type Store struct {
	v atomic.Pointer[Config]
}

// NewStore creates a store seeded with the boot configuration.
func NewStore(cfg *Config) *Store {
	s := &Store{}
	s.v.Store(cfg)
	return s
}

// Current returns the live configuration snapshot.
func (s *Store) Current() *Config {
	return s.v.Load()
}

// Replace publishes a new configuration snapshot.
func (s *Store) Replace(cfg *Config) {
	s.v.Store(cfg)
}
