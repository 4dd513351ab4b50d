// Package notification implements the alert sinks that surface delivered
// notifications outside the dashboard: Firebase device pushes and log lines.
package notification

import (
	"context"
	"log/slog"

	"dashboard/internal/domain/entity"
	"dashboard/internal/domain/service"
	"dashboard/internal/errors"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// maxMulticastTokens is Firebase's per-request device token limit.
const maxMulticastTokens = 500

type firebaseService struct {
	client *messaging.Client
	logger *slog.Logger
	tokens []string
}

// NewFirebaseService creates an alert sink that pushes to the configured device tokens.
func NewFirebaseService(ctx context.Context, logger *slog.Logger, projectID, credentialsPath string, tokens []string) (service.AlertService, error) {
	if len(tokens) > maxMulticastTokens {
		return nil, errors.Errorf("token count exceeds limit: %d (max %d)", len(tokens), maxMulticastTokens)
	}

	var appConfig *firebase.Config
	if projectID != "" {
		appConfig = &firebase.Config{ProjectID: projectID}
	}

	app, err := firebase.NewApp(ctx, appConfig, option.WithCredentialsFile(credentialsPath))
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &firebaseService{
		client: client,
		logger: logger,
		tokens: tokens,
	}, nil
}

// Alert pushes the notification to every device token. Invalid or
// unregistered tokens are logged, not returned.
func (s *firebaseService) Alert(ctx context.Context, n *entity.Notification) error {
	if n == nil || len(s.tokens) == 0 {
		return nil
	}

	response, err := s.client.SendEachForMulticast(ctx, buildMulticast(s.tokens, n))
	if err != nil {
		return errors.Wrap(err, "failed to send multicast notification")
	}

	invalidTokens := make([]string, 0)
	for idx, sendResponse := range response.Responses {
		if sendResponse.Error == nil {
			continue
		}
		if messaging.IsInvalidArgument(sendResponse.Error) || messaging.IsUnregistered(sendResponse.Error) {
			invalidTokens = append(invalidTokens, s.tokens[idx])
		}
	}

	s.logger.DebugContext(ctx, "firebase alert sent",
		slog.String("notification_id", n.ID),
		slog.Int("success_count", response.SuccessCount),
		slog.Int("failure_count", response.FailureCount),
		slog.Any("invalid_tokens", invalidTokens),
	)

	return nil
}

func buildMulticast(tokens []string, n *entity.Notification) *messaging.MulticastMessage {
	data := map[string]string{
		"notification_id": n.ID,
		"category":        string(n.Category),
		"priority":        string(n.Priority),
	}
	if n.ActionURL != "" {
		data["action_url"] = n.ActionURL
	}

	androidPriority := "normal"
	if n.Priority == entity.NotificationPriorityUrgent || n.Priority == entity.NotificationPriorityHigh {
		androidPriority = "high"
	}

	return &messaging.MulticastMessage{
		Tokens: tokens,
		Notification: &messaging.Notification{
			Title: n.Title,
			Body:  n.Message,
		},
		Data:    data,
		Android: &messaging.AndroidConfig{Priority: androidPriority},
	}
}
