package usecases

import (
	"errors"
	"fmt"
	"strings"

	"agriwise-server/entities"
	"agriwise-server/repositories"

	"gorm.io/gorm"
)

// UserService covers the technician's own profile. Password material never
// moves through here; that belongs to AuthService.
type UserService struct {
	Users repositories.UserRepository
}

func NewUserService(users repositories.UserRepository) *UserService {
	return &UserService{Users: users}
}

func (uc *UserService) GetUser(id string) (*entities.User, error) {
	user, err := uc.Users.GetByID(id)
	if err != nil {
		return nil, translateStoreErr(err)
	}
	return user, nil
}

// UpdateUser changes name, email and phone. An email move re-checks
// uniqueness against other accounts.
func (uc *UserService) UpdateUser(id, name, email, phoneNumber string) (*entities.User, error) {
	user, err := uc.Users.GetByID(id)
	if err != nil {
		return nil, translateStoreErr(err)
	}

	if name != "" {
		user.Name = name
	}
	if email != "" && email != user.Email {
		if !strings.Contains(email, "@") {
			return nil, fmt.Errorf("%w: invalid email address", ErrValidation)
		}
		if other, err := uc.Users.GetByEmail(email); err == nil && other.ID != user.ID {
			return nil, ErrDuplicateEmail
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInternal
		}
		user.Email = email
	}
	if phoneNumber != "" {
		user.PhoneNumber = phoneNumber
	}

	if err := uc.Users.Update(user); err != nil {
		return nil, ErrInternal
	}
	return user, nil
}

func (uc *UserService) DeleteUser(id string) error {
	if _, err := uc.Users.GetByID(id); err != nil {
		return translateStoreErr(err)
	}
	if err := uc.Users.Delete(id); err != nil {
		return ErrInternal
	}
	return nil
}
