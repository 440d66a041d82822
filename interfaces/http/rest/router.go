package rest

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"nextsite-backend/application/ports"
	appservices "nextsite-backend/application/services"
	"nextsite-backend/infrastructure/config"
	"nextsite-backend/infrastructure/observability"
	"nextsite-backend/interfaces/http/rest/handlers"
	"nextsite-backend/interfaces/http/rest/middleware"
)

// rateWindow is the window every per-route limit counts over.
const rateWindow = time.Minute

// Router creates and configures the HTTP router
type Router struct {
	live        *config.Store
	logger      *zap.Logger
	metrics     *observability.Metrics
	rateStore   ports.RateLimitStore
	authService *appservices.AuthService

	sites   *handlers.SiteHandler
	auth    *handlers.AuthHandler
	notify  *handlers.NotifyHandler
	presets *handlers.PresetHandler
}

// NewRouter creates a new router instance
func NewRouter(
	live *config.Store,
	logger *zap.Logger,
	metrics *observability.Metrics,
	rateStore ports.RateLimitStore,
	authService *appservices.AuthService,
	sites *handlers.SiteHandler,
	auth *handlers.AuthHandler,
	notify *handlers.NotifyHandler,
	presets *handlers.PresetHandler,
) *Router {
	return &Router{
		live:        live,
		logger:      logger,
		metrics:     metrics,
		rateStore:   rateStore,
		authService: authService,
		sites:       sites,
		auth:        auth,
		notify:      notify,
		presets:     presets,
	}
}

// Setup configures all routes and middleware. Structural toggles such as
// CORS and metrics are read once at startup; rate limits and the notify
// token are read per request from the live store so reloads apply.
func (rt *Router) Setup() http.Handler {
	cfg := rt.live.Current()
	router := chi.NewRouter()

	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.Logger(rt.logger))
	if cfg.EnableMetrics {
		router.Use(rt.metrics.Middleware)
	}

	if cfg.EnableCORS {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   cfg.CORSOrigins,
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID", middleware.NotifyTokenHeader},
			ExposedHeaders:   []string{"X-Request-ID", "Retry-After"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	router.Get("/health", rt.healthCheck)
	if cfg.EnableMetrics {
		router.Handle("/metrics", rt.metrics.Handler())
	}

	generateLimit := func() int { return rt.live.Current().GenerateRateLimit }
	loginLimit := func() int { return rt.live.Current().LoginRateLimit }
	notifyLimit := func() int { return rt.live.Current().NotifyRateLimit }
	notifyToken := func() string { return rt.live.Current().NotifyToken }

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/sites", func(r chi.Router) {
			r.Use(middleware.RateLimit(rt.rateStore, rt.metrics, "generate", generateLimit, rateWindow, rt.logger))
			r.Post("/generate", rt.sites.GenerateSite)
			r.Post("/preview", rt.sites.PreviewSite)
		})

		r.Get("/presets", rt.presets.ListPresets)

		r.Route("/auth", func(r chi.Router) {
			r.With(middleware.RateLimit(rt.rateStore, rt.metrics, "login", loginLimit, rateWindow, rt.logger)).
				Post("/login", rt.auth.Login)
			r.Post("/logout", rt.auth.Logout)
		})

		r.Route("/notify", func(r chi.Router) {
			r.Use(middleware.RateLimit(rt.rateStore, rt.metrics, "notify", notifyLimit, rateWindow, rt.logger))
			r.Use(middleware.RequireSessionOrToken(rt.authService, notifyToken, rt.logger))
			r.Post("/", rt.notify.Notify)
		})
	})

	return router
}

// healthCheck handles health check requests
func (rt *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy"}`))
}
