package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "dashboard/internal/delivery/context"
	"dashboard/internal/domain/entity"
	domainerrors "dashboard/internal/domain/errors"
	"dashboard/internal/domain/repository"
	"dashboard/internal/domain/service"
	"dashboard/internal/errors"
	"dashboard/internal/usecase"
)

type notificationDispatcher struct {
	logger    *slog.Logger
	txManager repository.TransactionManager
	publisher service.EventPublisher
}

// NewNotificationDispatcher creates the server-side notification producer.
func NewNotificationDispatcher(
	logger *slog.Logger,
	txManager repository.TransactionManager,
	publisher service.EventPublisher,
) usecase.NotificationDispatcher {
	return &notificationDispatcher{
		logger:    logger,
		txManager: txManager,
		publisher: publisher,
	}
}

func (d *notificationDispatcher) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, d.logger)
}

// Dispatch stores one notification per distinct recipient in a single transaction
// and publishes an insert event for each row after commit.
func (d *notificationDispatcher) Dispatch(ctx context.Context, input *usecase.DispatchInput) ([]*entity.Notification, error) {
	if err := validateDispatchInput(input); err != nil {
		return nil, err
	}

	priority := input.Priority
	if priority == "" {
		priority = entity.NotificationPriorityNormal
	}

	recipients := uniqueRecipients(input.RecipientIDs)
	notifications := make([]*entity.Notification, 0, len(recipients))
	for _, recipientID := range recipients {
		notifications = append(notifications, &entity.Notification{
			RecipientID: recipientID,
			Title:       input.Title,
			Message:     input.Message,
			Category:    input.Category,
			Priority:    priority,
			ActionURL:   input.ActionURL,
			Metadata:    input.Metadata,
		})
	}

	err := d.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.NotificationRepo().CreateNotifications(ctx, notifications)
	})
	if err != nil {
		return nil, errors.Wrapf(domainerrors.ErrNotificationDispatchFailed, "create notifications: %v", err)
	}

	published := 0
	for _, n := range notifications {
		event := &service.PushEvent{Kind: service.PushEventInsert, Notification: n}
		if err := d.publisher.PublishNotificationEvent(ctx, event); err != nil {
			d.log(ctx).Warn("failed to publish notification",
				slog.String("notification_id", n.ID),
				slog.String("recipient_id", n.RecipientID),
				slog.Any("error", err),
			)

			continue
		}
		published++
	}

	d.log(ctx).Info("notifications dispatched",
		slog.Int("created", len(notifications)),
		slog.Int("published", published),
		slog.String("category", string(input.Category)),
	)

	return notifications, nil
}

func validateDispatchInput(input *usecase.DispatchInput) error {
	switch {
	case input == nil:
		return errors.Wrap(domainerrors.ErrValidationFailed, "dispatch input is required")
	case len(uniqueRecipients(input.RecipientIDs)) == 0:
		return errors.Wrap(domainerrors.ErrValidationFailed, "at least one recipient is required")
	case strings.TrimSpace(input.Title) == "":
		return errors.Wrap(domainerrors.ErrValidationFailed, "title is required")
	case !input.Category.IsValid():
		return errors.Wrapf(domainerrors.ErrValidationFailed, "unknown category %q", input.Category)
	case input.Priority != "" && !input.Priority.IsValid():
		return errors.Wrapf(domainerrors.ErrValidationFailed, "unknown priority %q", input.Priority)
	}

	return nil
}

func uniqueRecipients(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	result := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}

	return result
}
