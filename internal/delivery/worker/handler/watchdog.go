// Package handler contains the background jobs of the dashboard agent.
package handler

import (
	"context"
	"log/slog"
	"time"

	"dashboard/config"
	"dashboard/internal/errors"
	"dashboard/internal/usecase"
)

// Watchdog reopens the notification subscription when it dropped or went silent.
type Watchdog struct {
	logger     *slog.Logger
	sessions   usecase.SessionUsecase
	channel    usecase.NotificationUsecase
	maxSilence time.Duration
}

// NewWatchdog is the constructor for Watchdog, injected by Fx.
func NewWatchdog(
	logger *slog.Logger,
	sessions usecase.SessionUsecase,
	channel usecase.NotificationUsecase,
	cfg *config.Config,
) *Watchdog {
	return &Watchdog{
		logger:     logger.With(slog.String("component", "watchdog")),
		sessions:   sessions,
		channel:    channel,
		maxSilence: cfg.Realtime.MaxSilence,
	}
}

// Check reopens the channel for the signed-in identity when it is stale. The
// reopen goes through the session resolver so it is ordered against sign-in
// and sign-out. It reports whether a reconnect was attempted.
func (w *Watchdog) Check(ctx context.Context) (bool, error) {
	state := w.sessions.Current()
	if !state.SignedIn() {
		return false, nil
	}
	if !w.channel.Stale(w.maxSilence) {
		return false, nil
	}

	health := w.channel.Health()
	w.logger.WarnContext(ctx, "notification channel stale, reconnecting",
		slog.String("identity_id", state.Identity.ID),
		slog.Bool("dropped", health.Dropped),
		slog.Time("last_activity", health.LastActivity),
	)

	if err := w.sessions.Reconnect(ctx); err != nil {
		return true, errors.Wrap(err, "reconnect notification channel")
	}

	return true, nil
}
