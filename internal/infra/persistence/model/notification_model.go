package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// NotificationModel mirrors the 'notifications' table.
// The (recipient_id, created_at) index backs the newest-first initial load.
type NotificationModel struct {
	ID          uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	RecipientID string            `gorm:"type:text;not null;index:idx_notifications_recipient_created,priority:1"`
	Title       string            `gorm:"type:varchar(255);not null"`
	Message     string            `gorm:"type:text;not null"`
	Category    string            `gorm:"type:varchar(32);not null"`
	Priority    string            `gorm:"type:varchar(16);not null;default:'normal'"`
	IsRead      bool              `gorm:"not null;default:false"`
	ActionURL   *string           `gorm:"type:text"`
	Metadata    datatypes.JSONMap `gorm:"type:jsonb"`
	CreatedAt   time.Time         `gorm:"index:idx_notifications_recipient_created,priority:2,sort:desc"`
	ReadAt      *time.Time
}

// TableName explicitly sets the table name for GORM.
func (NotificationModel) TableName() string {
	return "notifications"
}
