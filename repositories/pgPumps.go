package repositories

import (
	"time"

	"agriwise-server/db"
	"agriwise-server/entities"

	"gorm.io/gorm"
)

type pumpPgRepository struct {
	db db.Database
}

func NewPumpPgRepository(database db.Database) PumpRepository {
	return &pumpPgRepository{db: database}
}

func (r *pumpPgRepository) Create(pump *entities.Pump) error {
	return r.db.GetDB().Create(pump).Error
}

func (r *pumpPgRepository) GetByIDAndOwner(id, userID string) (*entities.Pump, error) {
	var pump entities.Pump
	err := r.db.GetDB().Where("id = ? AND user_id = ?", id, userID).First(&pump).Error
	if err != nil {
		return nil, err
	}
	return &pump, nil
}

func (r *pumpPgRepository) GetByUserID(userID string) ([]entities.Pump, error) {
	var pumps []entities.Pump
	err := r.db.GetDB().Where("user_id = ?", userID).Order("created_at DESC").Find(&pumps).Error
	return pumps, err
}

func (r *pumpPgRepository) Update(pump *entities.Pump) error {
	pump.UpdatedAt = time.Now().Format(time.RFC3339)
	return r.db.GetDB().Save(pump).Error
}

func (r *pumpPgRepository) UpdateStatus(id, userID, status string) (*entities.Pump, error) {
	res := r.db.GetDB().Model(&entities.Pump{}).
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

func (r *pumpPgRepository) DeleteByIDAndOwner(id, userID string) error {
	res := r.db.GetDB().Where("id = ? AND user_id = ?", id, userID).Delete(&entities.Pump{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
