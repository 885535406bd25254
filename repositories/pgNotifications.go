package repositories

import (
	"time"

	"agriwise-server/db"
	"agriwise-server/entities"

	"gorm.io/gorm"
)

type notificationPgRepository struct {
	db db.Database
}

func NewNotificationPgRepository(database db.Database) NotificationRepository {
	return &notificationPgRepository{db: database}
}

func (r *notificationPgRepository) Create(n *entities.Notification) error {
	return r.db.GetDB().Create(n).Error
}

func (r *notificationPgRepository) GetByIDAndRecipient(id, recipientID string) (*entities.Notification, error) {
	var n entities.Notification
	err := r.db.GetDB().Where("id = ? AND recipient_id = ?", id, recipientID).First(&n).Error
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *notificationPgRepository) GetByRecipient(recipientID string) ([]entities.Notification, error) {
	var notifications []entities.Notification
	err := r.db.GetDB().
		Where("recipient_id = ?", recipientID).
		Order("created_at DESC").
		Find(&notifications).Error
	return notifications, err
}

func (r *notificationPgRepository) MarkRead(id, recipientID string) (*entities.Notification, error) {
	res := r.db.GetDB().Model(&entities.Notification{}).
		Where("id = ? AND recipient_id = ?", id, recipientID).
		Updates(map[string]interface{}{
			"is_read":    true,
			"updated_at": time.Now().Format(time.RFC3339),
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByIDAndRecipient(id, recipientID)
}

func (r *notificationPgRepository) MarkAllRead(recipientID string) error {
	// Single bulk UPDATE; concurrent creations keep their own is_read value.
	return r.db.GetDB().Model(&entities.Notification{}).
		Where("recipient_id = ? AND is_read = ?", recipientID, false).
		Updates(map[string]interface{}{
			"is_read":    true,
			"updated_at": time.Now().Format(time.RFC3339),
		}).Error
}

func (r *notificationPgRepository) DeleteByIDAndRecipient(id, recipientID string) error {
	res := r.db.GetDB().Where("id = ? AND recipient_id = ?", id, recipientID).Delete(&entities.Notification{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
