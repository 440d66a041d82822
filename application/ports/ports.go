package ports

import (
	"context"
	"time"
)

// RateLimitStore defines the interface for request-rate accounting.
// This is a port in hexagonal architecture - the application doesn't know
// about the implementation. The in-memory store covers single-instance
// deployments; a shared cache can replace it behind the same interface.
type RateLimitStore interface {
	// Hit records one request for key and reports whether it is within the
	// limit for the sliding window. retryAfter is meaningful only when the
	// request is rejected.
	Hit(ctx context.Context, key string, limit int, window time.Duration) (allowed bool, retryAfter time.Duration, err error)

	// Reset clears the accounting for a key.
	Reset(ctx context.Context, key string) error
}

// NotifyMessage is an outbound portal notification.
type NotifyMessage struct {
	Company string
	Layout  string
	Preview string
}

// NotifyRelay forwards portal notifications to the configured external form
// endpoint.
type NotifyRelay interface {
	Send(ctx context.Context, msg NotifyMessage) error
}
