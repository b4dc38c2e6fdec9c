package models

import "time"

const (
	NotificationSuccess = "success"
	NotificationError   = "error"
	NotificationInfo    = "info"
)

type Notification struct {
	ID             uint `gorm:"primaryKey" json:"id"`
	OrganizationID uint `gorm:"index:idx_notification_owner;not null" json:"organization_id"`
	UserID         uint `gorm:"index:idx_notification_owner;not null" json:"user_id"`

	Type    string `gorm:"size:10;not null" json:"type"`
	Title   string `gorm:"size:100;not null" json:"title"`
	Message string `gorm:"size:500" json:"message"`
	Read    bool   `gorm:"column:is_read;default:false" json:"read"`

	CreatedAt time.Time `json:"created_at"`
}
