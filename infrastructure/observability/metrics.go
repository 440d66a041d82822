package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics bundles the service's Prometheus collectors.
type Metrics struct {
	registry *prometheus.Registry

	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	SpecsGenerated  *prometheus.CounterVec
	NotifyRelayed   *prometheus.CounterVec
	LoginAttempts   *prometheus.CounterVec
	RateLimited     *prometheus.CounterVec
}

// NewMetrics creates and registers all collectors on a private registry.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "nextsite_http_requests_total",
			Help: "HTTP requests by route, method and status.",
		}, []string{"route", "method", "status"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "nextsite_http_request_duration_seconds",
			Help:    "HTTP request latency by route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
		SpecsGenerated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "nextsite_specs_generated_total",
			Help: "Generated site specifications by archetype.",
		}, []string{"archetype"}),
		NotifyRelayed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "nextsite_notifications_total",
			Help: "Notification relay attempts by outcome.",
		}, []string{"outcome"}),
		LoginAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "nextsite_login_attempts_total",
			Help: "Portal login attempts by outcome.",
		}, []string{"outcome"}),
		RateLimited: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "nextsite_rate_limited_total",
			Help: "Requests rejected by the rate limiter, by scope.",
		}, []string{"scope"}),
	}

	registry.MustRegister(
		m.RequestsTotal,
		m.RequestDuration,
		m.SpecsGenerated,
		m.NotifyRelayed,
		m.LoginAttempts,
		m.RateLimited,
	)

	return m
}

// Handler exposes the metrics endpoint.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Middleware records request counts and latency per route pattern.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		route := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				route = pattern
			}
		}

		m.RequestsTotal.WithLabelValues(route, r.Method, strconv.Itoa(ww.Status())).Inc()
		m.RequestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	})
}
