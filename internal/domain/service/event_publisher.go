package service

import (
	"context"
)

// EventPublisher publishes notification changes onto the push channel's transport.
type EventPublisher interface {
	// PublishNotificationEvent publishes one insert or update event.
	PublishNotificationEvent(ctx context.Context, event *PushEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
