package common

import (
	"context"
)

// ContextKey represents a context key type
type ContextKey string

// Context keys
const (
	ContextKeyClientIP      ContextKey = "client_ip"
	ContextKeyAuthenticated ContextKey = "authenticated"
)

// WithClientIP adds the resolved client address to context
func WithClientIP(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, ContextKeyClientIP, ip)
}

// GetClientIP extracts the resolved client address from context
func GetClientIP(ctx context.Context) (string, bool) {
	ip, ok := ctx.Value(ContextKeyClientIP).(string)
	return ip, ok
}

// WithAuthenticated marks the context as carrying a valid portal session
func WithAuthenticated(ctx context.Context) context.Context {
	return context.WithValue(ctx, ContextKeyAuthenticated, true)
}

// IsAuthenticated reports whether the context carries a valid portal session
func IsAuthenticated(ctx context.Context) bool {
	v, _ := ctx.Value(ContextKeyAuthenticated).(bool)
	return v
}
