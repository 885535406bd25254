package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is a field technician account. The password is only ever stored as a
// bcrypt hash, and the reset token only as its sha256 digest.
type User struct {
	ID                  string         `gorm:"type:text;primaryKey" json:"id"`
	Name                string         `gorm:"not null" json:"name"`
	Email               string         `gorm:"unique;not null" json:"email"`
	PasswordHash        string         `gorm:"not null" json:"-"`
	PhoneNumber         string         `json:"phone_number,omitempty"`
	ResetPasswordToken  *string        `gorm:"index" json:"-"`
	ResetPasswordExpire *time.Time     `json:"-"`
	CreatedAt           string         `json:"created_at"`
	UpdatedAt           string         `json:"updated_at"`
	DeletedAt           gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	u.CreatedAt = time.Now().Format(time.RFC3339)
	u.UpdatedAt = u.CreatedAt
	return
}

// ClearResetToken drops both reset fields; they are always set or cleared together.
func (u *User) ClearResetToken() {
	u.ResetPasswordToken = nil
	u.ResetPasswordExpire = nil
}
