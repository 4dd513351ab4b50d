// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"
	"time"

	"dashboard/internal/domain/entity"
)

// ErrNotificationNotFound is returned when a notification does not exist for the recipient.
var ErrNotificationNotFound = errors.New("notification not found")

// NotificationRepository defines notification persistence and read-state mutations.
type NotificationRepository interface {
	// CreateNotifications persists new notifications. IDs and CreatedAt are filled in place.
	CreateNotifications(ctx context.Context, notifications []*entity.Notification) error

	// ListByRecipient returns the newest notifications of a recipient, newest first.
	ListByRecipient(ctx context.Context, recipientID string, limit int) ([]*entity.Notification, error)

	// MarkRead flips is_read for exactly one notification owned by the recipient.
	// It returns ErrNotificationNotFound when the row does not belong to the recipient.
	MarkRead(ctx context.Context, recipientID, id string, readAt time.Time) error

	// MarkManyRead flips is_read for the given notifications owned by the recipient.
	// IDs that are already read or not owned by the recipient are skipped.
	MarkManyRead(ctx context.Context, recipientID string, ids []string, readAt time.Time) error
}
