package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Pump status values.
const (
	PumpStatusOn          = "on"
	PumpStatusOff         = "off"
	PumpStatusMaintenance = "maintenance"
)

type Pump struct {
	ID          string         `gorm:"type:text;primaryKey" json:"id"`
	Name        string         `gorm:"not null" json:"name"`
	Status      string         `gorm:"not null;default:off" json:"status"`
	Longitude   float64        `json:"longitude"`
	Latitude    float64        `json:"latitude"`
	Description string         `json:"description"`
	UserID      string         `gorm:"index;not null" json:"user_id"`
	CreatedAt   string         `json:"created_at"`
	UpdatedAt   string         `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (p *Pump) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if p.Status == "" {
		p.Status = PumpStatusOff
	}
	p.CreatedAt = time.Now().Format(time.RFC3339)
	p.UpdatedAt = p.CreatedAt
	return
}

// IsValidPumpStatus reports whether s is one of the pump status values.
func IsValidPumpStatus(s string) bool {
	switch s {
	case PumpStatusOn, PumpStatusOff, PumpStatusMaintenance:
		return true
	}
	return false
}
