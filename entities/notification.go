package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NotificationTypeInfo is the default notification type; the alert pipeline
// also emits "warning" and "error".
const (
	NotificationTypeInfo    = "info"
	NotificationTypeWarning = "warning"
	NotificationTypeError   = "error"
)

type Notification struct {
	ID          string         `gorm:"type:text;primaryKey" json:"id"`
	RecipientID string         `gorm:"index;not null" json:"recipient_id"`
	Message     string         `gorm:"not null" json:"message"`
	Type        string         `gorm:"not null;default:info" json:"type"`
	IsRead      bool           `gorm:"not null;default:false" json:"is_read"`
	PumpID      string         `gorm:"index" json:"pump_id,omitempty"`
	CreatedAt   string         `json:"created_at"`
	UpdatedAt   string         `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (n *Notification) BeforeCreate(tx *gorm.DB) (err error) {
	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	if n.Type == "" {
		n.Type = NotificationTypeInfo
	}
	n.CreatedAt = time.Now().Format(time.RFC3339)
	n.UpdatedAt = n.CreatedAt
	return
}
