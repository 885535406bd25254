package usecases

import (
	"errors"
	"sync"
	"time"

	"agriwise-server/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// In-memory repository fakes. They store copies so service-side mutations
// only become visible through Update, like the real store.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*entities.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entities.User)}
}

func (r *fakeUserRepo) Create(u *entities.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.users {
		if e.Email == u.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) GetByResetToken(tokenHash string, now time.Time) (*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.ResetPasswordToken != nil && *u.ResetPasswordToken == tokenHash &&
			u.ResetPasswordExpire != nil && u.ResetPasswordExpire.After(now) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) Update(u *entities.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[u.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.users, id)
	return nil
}

type sentMail struct {
	To      string
	Subject string
	Body    string
}

type fakeMailer struct {
	mu   sync.Mutex
	Sent []sentMail
	Fail bool
}

func (m *fakeMailer) Send(to, subject, htmlBody string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Fail {
		return errors.New("smtp transport down")
	}
	m.Sent = append(m.Sent, sentMail{To: to, Subject: subject, Body: htmlBody})
	return nil
}

type fakePumpRepo struct {
	mu    sync.Mutex
	pumps map[string]*entities.Pump
}

func newFakePumpRepo() *fakePumpRepo {
	return &fakePumpRepo{pumps: make(map[string]*entities.Pump)}
}

func (r *fakePumpRepo) Create(p *entities.Pump) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if p.Status == "" {
		p.Status = entities.PumpStatusOff
	}
	cp := *p
	r.pumps[p.ID] = &cp
	return nil
}

func (r *fakePumpRepo) GetByIDAndOwner(id, userID string) (*entities.Pump, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.pumps[id]
	if !ok || p.UserID != userID {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *fakePumpRepo) GetByUserID(userID string) ([]entities.Pump, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entities.Pump
	for _, p := range r.pumps {
		if p.UserID == userID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakePumpRepo) Update(p *entities.Pump) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.pumps[p.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *p
	r.pumps[p.ID] = &cp
	return nil
}

func (r *fakePumpRepo) UpdateStatus(id, userID, status string) (*entities.Pump, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.pumps[id]
	if !ok || p.UserID != userID {
		return nil, gorm.ErrRecordNotFound
	}
	p.Status = status
	cp := *p
	return &cp, nil
}

func (r *fakePumpRepo) DeleteByIDAndOwner(id, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.pumps[id]
	if !ok || p.UserID != userID {
		return gorm.ErrRecordNotFound
	}
	delete(r.pumps, id)
	return nil
}

type fakeSensorRepo struct {
	mu      sync.Mutex
	sensors map[string]*entities.Sensor
}

func newFakeSensorRepo() *fakeSensorRepo {
	return &fakeSensorRepo{sensors: make(map[string]*entities.Sensor)}
}

func (r *fakeSensorRepo) Create(s *entities.Sensor) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	if s.Status == "" {
		s.Status = entities.SensorStatusActive
	}
	cp := *s
	r.sensors[s.ID] = &cp
	return nil
}

func (r *fakeSensorRepo) GetByIDAndOwner(id, userID string) (*entities.Sensor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sensors[id]
	if !ok || s.UserID != userID {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *s
	return &cp, nil
}

func (r *fakeSensorRepo) GetByUserID(userID string) ([]entities.Sensor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entities.Sensor
	for _, s := range r.sensors {
		if s.UserID == userID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *fakeSensorRepo) GetByPumpID(pumpID string) ([]entities.Sensor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entities.Sensor
	for _, s := range r.sensors {
		if s.PumpID == pumpID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *fakeSensorRepo) Update(s *entities.Sensor) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sensors[s.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *s
	r.sensors[s.ID] = &cp
	return nil
}

func (r *fakeSensorRepo) UpdateStatus(id, userID, status string) (*entities.Sensor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sensors[id]
	if !ok || s.UserID != userID {
		return nil, gorm.ErrRecordNotFound
	}
	s.Status = status
	cp := *s
	return &cp, nil
}

func (r *fakeSensorRepo) DeleteByIDAndOwner(id, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sensors[id]
	if !ok || s.UserID != userID {
		return gorm.ErrRecordNotFound
	}
	delete(r.sensors, id)
	return nil
}

type fakeNotificationRepo struct {
	mu            sync.Mutex
	notifications map[string]*entities.Notification
	order         []string
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{notifications: make(map[string]*entities.Notification)}
}

func (r *fakeNotificationRepo) Create(n *entities.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	if n.Type == "" {
		n.Type = entities.NotificationTypeInfo
	}
	cp := *n
	r.notifications[n.ID] = &cp
	r.order = append(r.order, n.ID)
	return nil
}

func (r *fakeNotificationRepo) GetByIDAndRecipient(id, recipientID string) (*entities.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n, ok := r.notifications[id]
	if !ok || n.RecipientID != recipientID {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *n
	return &cp, nil
}

func (r *fakeNotificationRepo) GetByRecipient(recipientID string) ([]entities.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entities.Notification
	// insertion order reversed, i.e. newest first
	for i := len(r.order) - 1; i >= 0; i-- {
		if n, ok := r.notifications[r.order[i]]; ok && n.RecipientID == recipientID {
			out = append(out, *n)
		}
	}
	return out, nil
}

func (r *fakeNotificationRepo) MarkRead(id, recipientID string) (*entities.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n, ok := r.notifications[id]
	if !ok || n.RecipientID != recipientID {
		return nil, gorm.ErrRecordNotFound
	}
	n.IsRead = true
	cp := *n
	return &cp, nil
}

func (r *fakeNotificationRepo) MarkAllRead(recipientID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, n := range r.notifications {
		if n.RecipientID == recipientID && !n.IsRead {
			n.IsRead = true
		}
	}
	return nil
}

func (r *fakeNotificationRepo) DeleteByIDAndRecipient(id, recipientID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	n, ok := r.notifications[id]
	if !ok || n.RecipientID != recipientID {
		return gorm.ErrRecordNotFound
	}
	delete(r.notifications, id)
	return nil
}

type fakeNotifier struct {
	mu     sync.Mutex
	Pushed map[string][][]byte
}

func newFakeNotifier() *fakeNotifier {
	return &fakeNotifier{Pushed: make(map[string][][]byte)}
}

func (f *fakeNotifier) SendToUser(userID string, payload []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Pushed[userID] = append(f.Pushed[userID], payload)
	return nil
}
