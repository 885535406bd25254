package cache

import (
	"sync"
	"time"

	"agriwise-server/entities"
)

type ReadingPoint struct {
	Sensor    entities.Sensor
	Timestamp time.Time
}

// ReadingBuffer keeps recent sensor readings in memory so the alert sweep can
// compare against the last observed values without re-querying the store.
type ReadingBuffer struct {
	mu       sync.RWMutex
	readings map[string][]ReadingPoint // map[sensorID][]points
	alerted  map[string]string         // map[sensorID]last alerted condition
}

func NewReadingBuffer() *ReadingBuffer {
	return &ReadingBuffer{
		readings: make(map[string][]ReadingPoint),
		alerted:  make(map[string]string),
	}
}

// Add appends a reading for the sensor.
func (b *ReadingBuffer) Add(sensor entities.Sensor) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.readings[sensor.ID] = append(b.readings[sensor.ID], ReadingPoint{
		Sensor:    sensor,
		Timestamp: time.Now(),
	})
}

// Latest returns the most recent reading for the sensor, if any.
func (b *ReadingBuffer) Latest(sensorID string) (entities.Sensor, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	points := b.readings[sensorID]
	if len(points) == 0 {
		return entities.Sensor{}, false
	}
	return points[len(points)-1].Sensor, true
}

// MarkAlerted records the condition last alerted for the sensor so repeated
// readings under the same condition do not spam the owner.
func (b *ReadingBuffer) MarkAlerted(sensorID, condition string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if condition == "" {
		delete(b.alerted, sensorID)
		return
	}
	b.alerted[sensorID] = condition
}

// LastAlerted returns the condition last alerted for the sensor.
func (b *ReadingBuffer) LastAlerted(sensorID string) string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.alerted[sensorID]
}

// Prune drops readings older than maxAge and returns how many were removed.
func (b *ReadingBuffer) Prune(maxAge time.Duration) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	cutoff := time.Now().Add(-maxAge)
	removed := 0
	for sensorID, points := range b.readings {
		kept := points[:0]
		for _, p := range points {
			if p.Timestamp.After(cutoff) {
				kept = append(kept, p)
			} else {
				removed++
			}
		}
		if len(kept) == 0 {
			delete(b.readings, sensorID)
		} else {
			b.readings[sensorID] = kept
		}
	}
	return removed
}

// Stats returns counts about the current buffer contents.
func (b *ReadingBuffer) Stats() map[string]interface{} {
	b.mu.RLock()
	defer b.mu.RUnlock()

	totalPoints := 0
	for _, points := range b.readings {
		totalPoints += len(points)
	}
	return map[string]interface{}{
		"total_sensors":  len(b.readings),
		"total_readings": totalPoints,
	}
}
