package notification

import (
	"context"
	"log/slog"

	"dashboard/internal/domain/entity"
	"dashboard/internal/domain/service"
)

type logService struct {
	logger *slog.Logger
}

// NewLogService returns an alert sink that writes each alert as a log line.
func NewLogService(logger *slog.Logger) service.AlertService {
	return &logService{logger: logger}
}

func (s *logService) Alert(ctx context.Context, n *entity.Notification) error {
	if n == nil {
		return nil
	}

	level := slog.LevelInfo
	if n.Priority == entity.NotificationPriorityUrgent {
		level = slog.LevelWarn
	}

	s.logger.LogAttrs(ctx, level, "notification alert",
		slog.String("notification_id", n.ID),
		slog.String("title", n.Title),
		slog.String("category", string(n.Category)),
		slog.String("priority", string(n.Priority)),
	)

	return nil
}
