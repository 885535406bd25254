package usecases

import (
	"errors"

	"gorm.io/gorm"
)

// Error taxonomy shared by services and the HTTP layer. Handlers map these to
// status codes; raw store errors never cross the boundary.
var (
	ErrValidation         = errors.New("validation error")
	ErrNotFound           = errors.New("not found")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidResetToken  = errors.New("invalid or expired token")
	ErrInvalidStatus      = errors.New("invalid status value")
	ErrMailSend           = errors.New("failed to send reset email")
	ErrInternal           = errors.New("internal error")
)

// translateStoreErr maps a repository failure to the nearest taxonomy kind.
func translateStoreErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return ErrInternal
}
