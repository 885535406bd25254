package usecases

import (
	"encoding/json"
	"fmt"
	"log"

	"agriwise-server/entities"
	"agriwise-server/repositories"
)

// Notifier pushes a payload to a connected recipient. Delivery is best-effort;
// the stored notification is the source of truth.
type Notifier interface {
	SendToUser(userID string, payload []byte) error
}

type NotificationService struct {
	Notifications repositories.NotificationRepository
	Pumps         repositories.PumpRepository
	Notifier      Notifier
}

func NewNotificationService(notifications repositories.NotificationRepository, pumps repositories.PumpRepository, notifier Notifier) *NotificationService {
	return &NotificationService{
		Notifications: notifications,
		Pumps:         pumps,
		Notifier:      notifier,
	}
}

// Create stores a notification. A source pump reference must resolve to a
// pump owned by the acting user, otherwise the request reports not found.
func (uc *NotificationService) Create(actingUserID, recipientID, message, ntype, pumpID string) (*entities.Notification, error) {
	if message == "" {
		return nil, fmt.Errorf("%w: message is required", ErrValidation)
	}
	if pumpID != "" {
		if _, err := uc.Pumps.GetByIDAndOwner(pumpID, actingUserID); err != nil {
			return nil, translateStoreErr(err)
		}
	}
	if recipientID == "" {
		recipientID = actingUserID
	}

	n := &entities.Notification{
		RecipientID: recipientID,
		Message:     message,
		Type:        ntype,
		PumpID:      pumpID,
	}
	if err := uc.Notifications.Create(n); err != nil {
		return nil, ErrInternal
	}

	uc.push(n)
	return n, nil
}

// push sends the notification over the recipient's websocket when connected.
func (uc *NotificationService) push(n *entities.Notification) {
	if uc.Notifier == nil {
		return
	}
	payload, err := json.Marshal(n)
	if err != nil {
		return
	}
	if err := uc.Notifier.SendToUser(n.RecipientID, payload); err != nil {
		log.Printf("notification push skipped for user %s: %v", n.RecipientID, err)
	}
}

// List returns the recipient's notifications newest first.
func (uc *NotificationService) List(recipientID string) ([]entities.Notification, error) {
	notifications, err := uc.Notifications.GetByRecipient(recipientID)
	if err != nil {
		return nil, ErrInternal
	}
	return notifications, nil
}

func (uc *NotificationService) MarkRead(id, recipientID string) (*entities.Notification, error) {
	n, err := uc.Notifications.MarkRead(id, recipientID)
	if err != nil {
		return nil, translateStoreErr(err)
	}
	return n, nil
}

// MarkAllRead flips every unread notification for the recipient in one atomic
// bulk update, never a loop of single writes.
func (uc *NotificationService) MarkAllRead(recipientID string) error {
	if err := uc.Notifications.MarkAllRead(recipientID); err != nil {
		return ErrInternal
	}
	return nil
}

func (uc *NotificationService) Delete(id, recipientID string) error {
	if err := uc.Notifications.DeleteByIDAndRecipient(id, recipientID); err != nil {
		return translateStoreErr(err)
	}
	return nil
}
