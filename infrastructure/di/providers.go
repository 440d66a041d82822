package di

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	appservices "nextsite-backend/application/services"
	"nextsite-backend/domain/core/validators"
	domainservices "nextsite-backend/domain/services"
	"nextsite-backend/infrastructure/config"
	"nextsite-backend/infrastructure/notify"
	"nextsite-backend/infrastructure/observability"
	"nextsite-backend/interfaces/http/rest/handlers"
	"nextsite-backend/interfaces/render"
	"nextsite-backend/pkg/auth"
	apperrors "nextsite-backend/pkg/errors"
)

// ProvideLogger creates the application logger. Production gets JSON output,
// everything else the development console encoder.
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		level = zapcore.InfoLevel
	}

	var zcfg zap.Config
	if cfg.IsProduction() {
		zcfg = zap.NewProductionConfig()
	} else {
		zcfg = zap.NewDevelopmentConfig()
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)

	return zcfg.Build()
}

// ProvideErrorHandler creates the shared HTTP error handler.
func ProvideErrorHandler(cfg *config.Config, logger *zap.Logger) *apperrors.ErrorHandler {
	return apperrors.NewErrorHandler(logger, cfg.IsDevelopment())
}

// ProvideSessionManager creates the portal session manager.
func ProvideSessionManager(cfg *config.Config) *auth.SessionManager {
	return auth.NewSessionManager(cfg.SessionSecret, cfg.SessionTTL)
}

// ProvideSpecAssembler wires the generation pipeline.
func ProvideSpecAssembler() *domainservices.SpecAssembler {
	return domainservices.NewSpecAssembler(
		domainservices.NewPersonalitySelector(),
		domainservices.NewThemeResolver(),
		domainservices.NewCopyBuilder(),
		domainservices.NewSectionPlanner(),
		domainservices.NewLayoutResolver(),
	)
}

// ProvideGeneratorService creates the generation application service.
func ProvideGeneratorService(assembler *domainservices.SpecAssembler, logger *zap.Logger) *appservices.GeneratorService {
	return appservices.NewGeneratorService(assembler, validators.NewBriefValidator(), logger)
}

// ProvideConfigStore seeds the live configuration store the watcher and
// per-request readers share.
func ProvideConfigStore(cfg *config.Config) *config.Store {
	return config.NewStore(cfg)
}

// ProvideNotifyService creates the notification service over the form relay.
func ProvideNotifyService(live *config.Store, logger *zap.Logger) *appservices.NotifyService {
	relay := notify.NewFormRelay(func() string { return live.Current().NotifyEndpoint }, logger)
	return appservices.NewNotifyService(relay, logger)
}

// ProvideAuthService creates the portal auth service.
func ProvideAuthService(cfg *config.Config, sessions *auth.SessionManager, logger *zap.Logger) *appservices.AuthService {
	return appservices.NewAuthService(cfg.PortalPassword, sessions, logger)
}

// ProvideRenderer parses the preview template set.
func ProvideRenderer() (*render.Renderer, error) {
	return render.NewRenderer()
}

// ProvideMetrics creates the Prometheus collectors.
func ProvideMetrics() *observability.Metrics {
	return observability.NewMetrics()
}

// ProvideRateLimitStore creates the in-memory sliding window store.
func ProvideRateLimitStore() *auth.SlidingWindowStore {
	return auth.NewSlidingWindowStore()
}

// ProvideSiteHandler creates the generation endpoints handler.
func ProvideSiteHandler(
	generator *appservices.GeneratorService,
	renderer *render.Renderer,
	metrics *observability.Metrics,
	errorHandler *apperrors.ErrorHandler,
	logger *zap.Logger,
) *handlers.SiteHandler {
	return handlers.NewSiteHandler(generator, renderer, metrics, errorHandler, logger)
}

// ProvideAuthHandler creates the login handler.
func ProvideAuthHandler(
	cfg *config.Config,
	authService *appservices.AuthService,
	sessions *auth.SessionManager,
	metrics *observability.Metrics,
	errorHandler *apperrors.ErrorHandler,
	logger *zap.Logger,
) *handlers.AuthHandler {
	return handlers.NewAuthHandler(authService, sessions, cfg.IsProduction(), metrics, errorHandler, logger)
}

// ProvideNotifyHandler creates the notification handler.
func ProvideNotifyHandler(
	notifyService *appservices.NotifyService,
	metrics *observability.Metrics,
	errorHandler *apperrors.ErrorHandler,
	logger *zap.Logger,
) *handlers.NotifyHandler {
	return handlers.NewNotifyHandler(notifyService, metrics, errorHandler, logger)
}

// ProvidePresetHandler creates the preset handler.
func ProvidePresetHandler() *handlers.PresetHandler {
	return handlers.NewPresetHandler()
}
