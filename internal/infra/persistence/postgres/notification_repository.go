package postgres

import (
	"context"
	"time"

	"dashboard/internal/domain/entity"
	domainerrors "dashboard/internal/domain/errors"
	"dashboard/internal/domain/repository"
	"dashboard/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// notificationRepository implements the repository.NotificationRepository interface.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepository{
		db: db,
	}
}

// CreateNotifications persists the batch in one statement. IDs are assigned
// client-side so callers can publish the rows after commit without a re-read.
func (repo *notificationRepository) CreateNotifications(ctx context.Context, notifications []*entity.Notification) error {
	if len(notifications) == 0 {
		return nil
	}

	models := make([]*model.NotificationModel, 0, len(notifications))
	for _, n := range notifications {
		m := fromNotificationDomain(n)
		if m.ID == uuid.Nil {
			id, err := uuid.NewV7()
			if err != nil {
				return domainerrors.NewDatabaseExecuteError(err, "failed to generate notification id")
			}
			m.ID = id
		}
		models = append(models, m)
	}

	if err := repo.db.WithContext(ctx).Create(&models).Error; err != nil {
		if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required notification information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create notifications")
	}

	for i, m := range models {
		notifications[i].ID = m.ID.String()
		notifications[i].CreatedAt = m.CreatedAt
	}

	return nil
}

// ListByRecipient returns up to limit notifications, newest first. A non-positive limit means no limit.
func (repo *notificationRepository) ListByRecipient(ctx context.Context, recipientID string, limit int) ([]*entity.Notification, error) {
	var notificationModels []*model.NotificationModel

	query := repo.db.WithContext(ctx).
		Where("recipient_id = ?", recipientID).
		Order("created_at DESC").
		Order("id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&notificationModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list notifications by recipient")
	}

	result := make([]*entity.Notification, 0, len(notificationModels))
	for _, m := range notificationModels {
		result = append(result, toNotificationDomain(m))
	}

	return result, nil
}

// MarkRead is idempotent: an already-read row keeps its original read_at.
func (repo *notificationRepository) MarkRead(ctx context.Context, recipientID, id string, readAt time.Time) error {
	notificationID, err := uuid.Parse(id)
	if err != nil {
		return repository.ErrNotificationNotFound
	}

	result := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("id = ? AND recipient_id = ?", notificationID, recipientID).
		Updates(readUpdates(readAt))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to mark notification as read")
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotificationNotFound
	}

	return nil
}

// MarkManyRead only touches unread rows owned by the recipient.
func (repo *notificationRepository) MarkManyRead(ctx context.Context, recipientID string, ids []string, readAt time.Time) error {
	notificationIDs := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if parsed, err := uuid.Parse(id); err == nil {
			notificationIDs = append(notificationIDs, parsed)
		}
	}
	if len(notificationIDs) == 0 {
		return nil
	}

	err := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("recipient_id = ? AND id IN ? AND is_read = ?", recipientID, notificationIDs, false).
		Updates(readUpdates(readAt)).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to mark notifications as read")
	}

	return nil
}

func readUpdates(readAt time.Time) map[string]any {
	return map[string]any{
		"is_read": true,
		"read_at": gorm.Expr("COALESCE(read_at, ?)", readAt),
	}
}

func toNotificationDomain(data *model.NotificationModel) *entity.Notification {
	if data == nil {
		return nil
	}

	n := &entity.Notification{
		ID:          data.ID.String(),
		RecipientID: data.RecipientID,
		Title:       data.Title,
		Message:     data.Message,
		Category:    entity.NotificationCategory(data.Category),
		Priority:    entity.NotificationPriority(data.Priority),
		IsRead:      data.IsRead,
		CreatedAt:   data.CreatedAt,
		ReadAt:      data.ReadAt,
	}
	if data.ActionURL != nil {
		n.ActionURL = *data.ActionURL
	}
	if len(data.Metadata) > 0 {
		n.Metadata = map[string]any(data.Metadata)
	}

	return n
}

func fromNotificationDomain(data *entity.Notification) *model.NotificationModel {
	if data == nil {
		return nil
	}

	m := &model.NotificationModel{
		RecipientID: data.RecipientID,
		Title:       data.Title,
		Message:     data.Message,
		Category:    string(data.Category),
		Priority:    string(data.Priority),
		IsRead:      data.IsRead,
		CreatedAt:   data.CreatedAt,
		ReadAt:      data.ReadAt,
	}
	if id, err := uuid.Parse(data.ID); err == nil {
		m.ID = id
	}
	if data.ActionURL != "" {
		actionURL := data.ActionURL
		m.ActionURL = &actionURL
	}
	if len(data.Metadata) > 0 {
		m.Metadata = datatypes.JSONMap(data.Metadata)
	}

	return m
}
