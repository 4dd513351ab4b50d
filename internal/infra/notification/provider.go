package notification

import (
	"context"
	"log/slog"

	"dashboard/config"
	"dashboard/internal/domain/service"
)

// NewAlertService picks the Firebase sink when credentials are configured and
// falls back to the log sink otherwise.
func NewAlertService(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.AlertService, error) {
	fb := cfg.Firebase
	if fb == nil || fb.CredentialsPath == "" {
		logger.Info("Firebase not configured, alerts go to the log")

		return NewLogService(logger), nil
	}

	return NewFirebaseService(ctx, logger, fb.ProjectID, fb.CredentialsPath, fb.DeviceTokens)
}
