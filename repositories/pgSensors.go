package repositories

import (
	"time"

	"agriwise-server/db"
	"agriwise-server/entities"

	"gorm.io/gorm"
)

type sensorPgRepository struct {
	db db.Database
}

func NewSensorPgRepository(database db.Database) SensorRepository {
	return &sensorPgRepository{db: database}
}

func (r *sensorPgRepository) Create(sensor *entities.Sensor) error {
	return r.db.GetDB().Create(sensor).Error
}

func (r *sensorPgRepository) GetByIDAndOwner(id, userID string) (*entities.Sensor, error) {
	var sensor entities.Sensor
	err := r.db.GetDB().Where("id = ? AND user_id = ?", id, userID).First(&sensor).Error
	if err != nil {
		return nil, err
	}
	return &sensor, nil
}

func (r *sensorPgRepository) GetByUserID(userID string) ([]entities.Sensor, error) {
	var sensors []entities.Sensor
	err := r.db.GetDB().Where("user_id = ?", userID).Order("created_at DESC").Find(&sensors).Error
	return sensors, err
}

func (r *sensorPgRepository) GetByPumpID(pumpID string) ([]entities.Sensor, error) {
	var sensors []entities.Sensor
	err := r.db.GetDB().Where("pump_id = ?", pumpID).Order("created_at DESC").Find(&sensors).Error
	return sensors, err
}

func (r *sensorPgRepository) Update(sensor *entities.Sensor) error {
	sensor.UpdatedAt = time.Now().Format(time.RFC3339)
	return r.db.GetDB().Save(sensor).Error
}

func (r *sensorPgRepository) UpdateStatus(id, userID, status string) (*entities.Sensor, error) {
	res := r.db.GetDB().Model(&entities.Sensor{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now().Format(time.RFC3339),
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByIDAndOwner(id, userID)
}

func (r *sensorPgRepository) DeleteByIDAndOwner(id, userID string) error {
	res := r.db.GetDB().Where("id = ? AND user_id = ?", id, userID).Delete(&entities.Sensor{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
