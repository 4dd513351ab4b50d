package service

import (
	"context"

	"dashboard/internal/domain/entity"
)

// AlertService renders an ephemeral alert for a delivered notification
// (a device push, a desktop toast, a log line).
type AlertService interface {
	Alert(ctx context.Context, notification *entity.Notification) error
}
