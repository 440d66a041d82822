package middleware

import (
	"net"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"nextsite-backend/application/ports"
	"nextsite-backend/infrastructure/observability"
	"nextsite-backend/pkg/common"
)

// RateLimit enforces a per-client request budget for a route scope. Keys are
// "scope:ip" so the generate, notify and login scopes count independently.
// The limit is read per request so configuration reloads take effect without
// a restart.
func RateLimit(store ports.RateLimitStore, metrics *observability.Metrics, scope string, limit func() int, window time.Duration, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := clientIP(r)
			key := scope + ":" + ip

			allowed, retryAfter, err := store.Hit(r.Context(), key, limit(), window)
			if err != nil {
				logger.Error("rate limit store failure",
					zap.String("scope", scope),
					zap.Error(err),
				)
				next.ServeHTTP(w, r)
				return
			}
			if !allowed {
				metrics.RateLimited.WithLabelValues(scope).Inc()
				logger.Warn("request rate limited",
					zap.String("scope", scope),
					zap.String("client_ip", ip),
				)
				seconds := int(retryAfter.Seconds())
				if seconds < 1 {
					seconds = 1
				}
				w.Header().Set("Retry-After", strconv.Itoa(seconds))
				common.RespondError(w, http.StatusTooManyRequests, common.StandardErrorCodes.TooManyRequests, "too many requests")
				return
			}

			next.ServeHTTP(w, r.WithContext(common.WithClientIP(r.Context(), ip)))
		})
	}
}

// clientIP trusts RemoteAddr, which the RealIP middleware has already
// rewritten from forwarding headers.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
