package model

import "time"

// ProfileModel mirrors the 'profiles' table. ID is the identity ID issued by the
// session provider, so it is stored as text rather than a generated UUID.
type ProfileModel struct {
	ID          string  `gorm:"type:text;primaryKey"`
	Role        string  `gorm:"type:varchar(32);not null;default:'staff'"`
	AccountType string  `gorm:"type:varchar(32);not null;default:'staff'"`
	FullName    *string `gorm:"type:varchar(255)"`
	Email       *string `gorm:"type:varchar(255)"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "profiles"
}
