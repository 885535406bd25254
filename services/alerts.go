package services

import (
	"fmt"
	"log"
	"time"

	"agriwise-server/cache"
	"agriwise-server/entities"
	"agriwise-server/usecases"
)

// Alert conditions recognized by the sweep.
const (
	conditionLowWater = "low_water"
	conditionHighTemp = "high_temp"
	conditionError    = "error"
)

// AlertService watches sensor readings and turns threshold crossings into
// notifications for the owning technician.
type AlertService struct {
	buffer        *cache.ReadingBuffer
	notifications *usecases.NotificationService
	waterMin      float64
	tempMax       float64
	interval      time.Duration
}

func NewAlertService(notifications *usecases.NotificationService, waterMin, tempMax float64, sweepEvery time.Duration) *AlertService {
	if sweepEvery <= 0 {
		sweepEvery = 5 * time.Minute
	}
	return &AlertService{
		buffer:        cache.NewReadingBuffer(),
		notifications: notifications,
		waterMin:      waterMin,
		tempMax:       tempMax,
		interval:      sweepEvery,
	}
}

// Start prunes stale readings in the background.
func (s *AlertService) Start() {
	ticker := time.NewTicker(s.interval)
	go func() {
		for range ticker.C {
			if removed := s.buffer.Prune(24 * time.Hour); removed > 0 {
				log.Printf("pruned %d stale sensor readings", removed)
			}
		}
	}()
}

// Observe records a fresh reading and emits a notification when the sensor
// crosses into an alert condition. A sensor stays silenced for a condition
// until the condition clears.
func (s *AlertService) Observe(sensor *entities.Sensor) {
	if sensor == nil {
		return
	}
	s.buffer.Add(*sensor)

	condition, ntype, message := s.evaluate(sensor)
	if condition == s.buffer.LastAlerted(sensor.ID) {
		return
	}
	s.buffer.MarkAlerted(sensor.ID, condition)
	if condition == "" {
		return
	}

	if _, err := s.notifications.Create(sensor.UserID, sensor.UserID, message, ntype, sensor.PumpID); err != nil {
		log.Printf("failed to create alert notification for sensor %s: %v", sensor.ID, err)
	}
}

func (s *AlertService) evaluate(sensor *entities.Sensor) (condition, ntype, message string) {
	switch {
	case sensor.Status == entities.SensorStatusError:
		return conditionError, entities.NotificationTypeError,
			fmt.Sprintf("Sensor %q reported an error state", sensor.Name)
	case sensor.WaterCapacity < s.waterMin:
		return conditionLowWater, entities.NotificationTypeWarning,
			fmt.Sprintf("Sensor %q reports low water capacity (%.1f%%)", sensor.Name, sensor.WaterCapacity)
	case sensor.Temperature > s.tempMax:
		return conditionHighTemp, entities.NotificationTypeWarning,
			fmt.Sprintf("Sensor %q reports high temperature (%.1f°C)", sensor.Name, sensor.Temperature)
	}
	return "", "", ""
}

// Stats exposes buffer counters for the health endpoint.
func (s *AlertService) Stats() map[string]interface{} {
	return s.buffer.Stats()
}
