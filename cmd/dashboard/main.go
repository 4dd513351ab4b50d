package main

import (
	"context"
	"log/slog"
	"os"

	"dashboard/config"
	"dashboard/internal/delivery"
	"dashboard/internal/delivery/http"
	"dashboard/internal/delivery/http/middleware"
	"dashboard/internal/delivery/http/router/handler"
	"dashboard/internal/delivery/worker"
	workerhandler "dashboard/internal/delivery/worker/handler"
	"dashboard/internal/domain/entity"
	"dashboard/internal/domain/repository"
	"dashboard/internal/domain/service"
	"dashboard/internal/infra/auth"
	logs "dashboard/internal/infra/log"
	"dashboard/internal/infra/metrics"
	"dashboard/internal/infra/notification"
	"dashboard/internal/infra/persistence/postgres"
	"dashboard/internal/infra/realtime"
	"dashboard/internal/usecase"
	"dashboard/internal/usecase/impl"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
			metrics.NewRegistry,
			newMetricsRecorder,
			notification.NewAlertService,
		),
		realtime.Module,
	)
}

// newMetricsRecorder registers the dashboard collectors on the served registry.
func newMetricsRecorder(reg *prometheus.Registry) service.MetricsRecorder {
	return metrics.NewCollector(reg)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewProfileRepository,
			postgres.NewNotificationRepository,
			postgres.NewAuthRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			newPasswordHasher,
			newTokenVerifier,
			newSessionProvider,
		),
	)
}

func newPasswordHasher(cfg *config.Config) service.PasswordHasher {
	return auth.NewBcryptHasher(cfg.Auth.BcryptCost)
}

// newTokenVerifier prefers OIDC discovery when an issuer is configured and
// falls back to the shared-secret JWT service otherwise.
func newTokenVerifier(ctx context.Context, cfg *config.Config, tokens service.TokenService) (service.TokenVerifier, error) {
	if cfg.Auth.OIDC == nil || cfg.Auth.OIDC.IssuerURL == "" {
		return tokens, nil
	}

	return auth.NewOIDCVerifier(ctx, cfg.Auth.OIDC.IssuerURL, cfg.Auth.OIDC.Audience)
}

func newSessionProvider(logger *slog.Logger, cfg *config.Config, verifier service.TokenVerifier) service.SessionProvider {
	return auth.NewFileSessionStore(logger, cfg.Auth.SessionFile, verifier)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			newProfileCache,
			impl.NewProfileResolver,
			newNotificationChannel,
			newSessionResolver,
			impl.NewSignInService,
			impl.NewNotificationDispatcher,
		),
	)
}

func newProfileCache(cfg *config.Config) *impl.ProfileCache {
	return impl.NewProfileCache(cfg.Auth.ProfileCacheTTL)
}

func newNotificationChannel(
	logger *slog.Logger,
	push service.PushChannel,
	repo repository.NotificationRepository,
	publisher service.EventPublisher,
	recorder service.MetricsRecorder,
	cfg *config.Config,
) usecase.NotificationUsecase {
	return impl.NewNotificationChannel(logger, push, repo, publisher, recorder, impl.NotificationChannelConfig{
		InitialLoadLimit: cfg.Realtime.InitialLoadLimit,
	})
}

func newSessionResolver(
	logger *slog.Logger,
	provider service.SessionProvider,
	profiles usecase.ProfileUsecase,
	channel usecase.NotificationUsecase,
	cfg *config.Config,
) usecase.SessionUsecase {
	return impl.NewSessionResolver(logger, provider, profiles, channel, impl.SessionResolverConfig{
		SessionCheckTimeout: cfg.Auth.SessionCheckTimeout,
	})
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewRouteGuard,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			entity.DefaultSections,
			handler.NewAuthHandler,
			handler.NewNotificationHandler,
			handler.NewDashboardHandler,
			handler.NewAdminHandler,
			handler.NewHealthHandler,
			workerhandler.NewWatchdog,
			workerhandler.NewAlertForwarder,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				worker.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
