package handler

import (
	"context"
	"log/slog"

	"dashboard/internal/domain/entity"
	"dashboard/internal/domain/lifecycle"
	"dashboard/internal/domain/service"
	"dashboard/internal/usecase"
)

// AlertListenerKey is the fixed listener key, so re-registration replaces.
const AlertListenerKey = "alerts"

// AlertForwarder hands newly inserted notifications to the alert service.
type AlertForwarder struct {
	logger   *slog.Logger
	sessions usecase.SessionUsecase
	channel  usecase.NotificationUsecase
	alerts   service.AlertService
}

// NewAlertForwarder is the constructor for AlertForwarder, injected by Fx.
func NewAlertForwarder(
	logger *slog.Logger,
	sessions usecase.SessionUsecase,
	channel usecase.NotificationUsecase,
	alerts service.AlertService,
) *AlertForwarder {
	return &AlertForwarder{
		logger:   logger.With(slog.String("component", "alert_forwarder")),
		sessions: sessions,
		channel:  channel,
		alerts:   alerts,
	}
}

// Run registers the alert listener on every signed-in state until ctx ends.
// Sign-out discards channel listeners, so each sign-in needs a fresh registration.
func (f *AlertForwarder) Run(ctx context.Context) {
	for state := range f.sessions.Watch(ctx) {
		if state.SignedIn() {
			f.channel.OnEvent(AlertListenerKey, f.forward)
		}
	}
}

func (f *AlertForwarder) forward(kind service.PushEventKind, notification *entity.Notification) {
	if kind != service.PushEventInsert || notification == nil {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
		defer cancel()

		if err := f.alerts.Alert(ctx, notification); err != nil {
			f.logger.WarnContext(ctx, "failed to forward alert",
				slog.String("notification_id", notification.ID),
				slog.Any("error", err),
			)
		}
	}()
}
