package usecase

import (
	"context"
	"time"

	"dashboard/internal/domain/entity"
	"dashboard/internal/domain/service"
)

// NotificationListener receives each notification event delivered to the channel.
type NotificationListener func(kind service.PushEventKind, notification *entity.Notification)

// ListenerHandle is the registration returned by OnEvent.
type ListenerHandle interface {
	Key() string
	// Dispose removes the registration unless it has since been replaced under the same key.
	Dispose()
}

// ChannelHealth describes the push subscription for staleness checks.
type ChannelHealth struct {
	Open         bool      `json:"open"`
	RecipientID  string    `json:"recipient_id,omitempty"`
	LastActivity time.Time `json:"last_activity"`
	Dropped      bool      `json:"dropped"`
}

// NotificationUsecase is the realtime notification channel for the signed-in identity.
type NotificationUsecase interface {
	// Initialize closes any open subscription and opens exactly one for recipientID.
	Initialize(ctx context.Context, recipientID string) error

	// Cleanup closes the subscription and discards listeners and known events.
	Cleanup()

	OnEvent(key string, listener NotificationListener) ListenerHandle
	RemoveListener(key string)

	// MarkAsRead flips one notification; on error local state is unchanged.
	MarkAsRead(ctx context.Context, notificationID string) error

	// MarkAllAsRead flips every locally known unread notification.
	MarkAllAsRead(ctx context.Context) error

	UnreadCount() int

	// Notifications returns the known notifications, newest first.
	Notifications() []*entity.Notification

	Health() ChannelHealth

	// Stale reports whether the subscription dropped or has been silent longer than maxSilence.
	Stale(maxSilence time.Duration) bool
}

// DispatchInput describes a notification to fan out to recipients.
type DispatchInput struct {
	RecipientIDs []string                    `json:"recipient_ids" validate:"required,min=1,dive,required"`
	Title        string                      `json:"title" validate:"required,max=200"`
	Message      string                      `json:"message" validate:"required"`
	Category     entity.NotificationCategory `json:"category" validate:"required"`
	Priority     entity.NotificationPriority `json:"priority"`
	ActionURL    string                      `json:"action_url,omitempty" validate:"omitempty,url"`
	Metadata     map[string]any              `json:"metadata,omitempty"`
}

// NotificationDispatcher is the server-side actor that creates notifications.
type NotificationDispatcher interface {
	Dispatch(ctx context.Context, input *DispatchInput) ([]*entity.Notification, error)
}
