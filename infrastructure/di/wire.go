//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"
	"go.uber.org/zap"

	"nextsite-backend/application/ports"
	appservices "nextsite-backend/application/services"
	"nextsite-backend/infrastructure/config"
	"nextsite-backend/infrastructure/observability"
	"nextsite-backend/interfaces/http/rest"
	"nextsite-backend/pkg/auth"
)

// Container holds all application dependencies
type Container struct {
	Config      *config.Config
	ConfigStore *config.Store
	Logger      *zap.Logger
	Metrics     *observability.Metrics
	AuthService *appservices.AuthService
	RateStore   ports.RateLimitStore
	Router      *rest.Router
}

// SuperSet is the main provider set containing all providers
var SuperSet = wire.NewSet(
	ProvideLogger,
	ProvideConfigStore,
	ProvideErrorHandler,
	ProvideSessionManager,
	ProvideSpecAssembler,
	ProvideGeneratorService,
	ProvideNotifyService,
	ProvideAuthService,
	ProvideRenderer,
	ProvideMetrics,
	ProvideRateLimitStore,
	wire.Bind(new(ports.RateLimitStore), new(*auth.SlidingWindowStore)),
	ProvideSiteHandler,
	ProvideAuthHandler,
	ProvideNotifyHandler,
	ProvidePresetHandler,
	rest.NewRouter,
	wire.Struct(new(Container), "*"),
)

// InitializeContainer creates a fully wired container
func InitializeContainer(cfg *config.Config) (*Container, error) {
	wire.Build(SuperSet)
	return nil, nil // Wire will replace this
}
