// Package realtime implements the notification push channel and the matching
// event publisher over an in-process broker, PostgreSQL LISTEN/NOTIFY or
// Google Cloud Pub/Sub.
package realtime

import (
	"context"
	"log/slog"

	"dashboard/config"
	"dashboard/internal/domain/constants"
	"dashboard/internal/domain/service"
	"dashboard/internal/errors"

	"go.uber.org/fx"
)

// Broker is a transport that can both deliver and publish notification events.
type Broker interface {
	service.PushChannel
	service.EventPublisher
}

// Params holds dependencies for the broker, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// Result exposes the broker under both domain interfaces.
type Result struct {
	fx.Out

	Broker    Broker
	Push      service.PushChannel
	Publisher service.EventPublisher
}

// New creates the broker selected by realtime.provider. An empty provider means memory.
func New(params Params) (Result, error) {
	broker, err := NewBroker(params.Ctx, params.Config.Realtime, params.Logger)
	if err != nil {
		return Result{}, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			params.Logger.Info("Closing realtime broker")

			return broker.Close()
		},
	})

	return Result{Broker: broker, Push: broker, Publisher: broker}, nil
}

// NewBroker builds a broker without lifecycle wiring; callers own Close.
func NewBroker(ctx context.Context, cfg *config.RealtimeConfig, logger *slog.Logger) (Broker, error) {
	if cfg == nil {
		cfg = &config.RealtimeConfig{}
	}

	switch cfg.Provider {
	case "", constants.RealtimeProviderMemory:
		logger.Info("Using in-process realtime broker",
			slog.Duration("heartbeat_interval", cfg.HeartbeatInterval),
		)

		return NewMemoryBroker(logger, cfg.HeartbeatInterval), nil

	case constants.RealtimeProviderPostgres:
		logger.Info("Using PostgreSQL LISTEN/NOTIFY realtime broker",
			slog.String("channel", cfg.Channel),
		)

		broker, err := NewPostgresBroker(ctx, logger, cfg.PostgresDSN, cfg.Channel, cfg.HeartbeatInterval)
		if err != nil {
			return nil, err
		}

		return broker, nil

	case constants.RealtimeProviderGoogle:
		broker, err := NewGoogleBroker(ctx, logger, cfg.ProjectID, cfg.TopicID, cfg.SubscriptionID, cfg.HeartbeatInterval)
		if err != nil {
			return nil, err
		}

		return broker, nil

	default:
		return nil, errors.Errorf("unknown realtime provider: %s", cfg.Provider)
	}
}

// Module provides the realtime FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(New),
)
