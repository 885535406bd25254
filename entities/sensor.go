package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Sensor status values.
const (
	SensorStatusActive   = "active"
	SensorStatusInactive = "inactive"
	SensorStatusError    = "error"
)

type Sensor struct {
	ID            string         `gorm:"type:text;primaryKey" json:"id"`
	Name          string         `gorm:"not null" json:"name"`
	Temperature   float64        `json:"temperature"`
	Humidity      float64        `json:"humidity"`
	WaterCapacity float64        `json:"water_capacity"`
	Status        string         `gorm:"not null;default:active" json:"status"`
	Longitude     float64        `json:"longitude"`
	Latitude      float64        `json:"latitude"`
	Description   string         `json:"description"`
	UserID        string         `gorm:"index;not null" json:"user_id"`
	PumpID        string         `gorm:"index" json:"pump_id,omitempty"`
	CreatedAt     string         `json:"created_at"`
	UpdatedAt     string         `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (s *Sensor) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	if s.Status == "" {
		s.Status = SensorStatusActive
	}
	s.CreatedAt = time.Now().Format(time.RFC3339)
	s.UpdatedAt = s.CreatedAt
	return
}

// IsValidSensorStatus reports whether s is one of the sensor status values.
func IsValidSensorStatus(s string) bool {
	switch s {
	case SensorStatusActive, SensorStatusInactive, SensorStatusError:
		return true
	}
	return false
}
