package repositories

import (
	"time"

	"agriwise-server/entities"
)

type UserRepository interface {
	Create(user *entities.User) error
	GetByID(id string) (*entities.User, error)
	GetByEmail(email string) (*entities.User, error)
	// GetByResetToken finds the user holding the given reset token hash with an
	// expiry later than now.
	GetByResetToken(tokenHash string, now time.Time) (*entities.User, error)
	Update(user *entities.User) error
	Delete(id string) error
}

type PumpRepository interface {
	Create(pump *entities.Pump) error
	// GetByIDAndOwner is the single guarded lookup: a pump that exists but is
	// owned by someone else is indistinguishable from a missing one.
	GetByIDAndOwner(id, userID string) (*entities.Pump, error)
	GetByUserID(userID string) ([]entities.Pump, error)
	Update(pump *entities.Pump) error
	// UpdateStatus applies the status as one conditional UPDATE filtered by id
	// and owner, so concurrent writers cannot interleave a read-modify-write.
	UpdateStatus(id, userID, status string) (*entities.Pump, error)
	DeleteByIDAndOwner(id, userID string) error
}

type SensorRepository interface {
	Create(sensor *entities.Sensor) error
	GetByIDAndOwner(id, userID string) (*entities.Sensor, error)
	GetByUserID(userID string) ([]entities.Sensor, error)
	GetByPumpID(pumpID string) ([]entities.Sensor, error)
	Update(sensor *entities.Sensor) error
	UpdateStatus(id, userID, status string) (*entities.Sensor, error)
	DeleteByIDAndOwner(id, userID string) error
}

type NotificationRepository interface {
	Create(n *entities.Notification) error
	GetByIDAndRecipient(id, recipientID string) (*entities.Notification, error)
	// GetByRecipient returns the recipient's notifications newest first.
	GetByRecipient(recipientID string) ([]entities.Notification, error)
	MarkRead(id, recipientID string) (*entities.Notification, error)
	// MarkAllRead flips every unread notification for the recipient in a single
	// bulk UPDATE.
	MarkAllRead(recipientID string) error
	DeleteByIDAndRecipient(id, recipientID string) error
}
