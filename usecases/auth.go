package usecases

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"agriwise-server/auth"
	"agriwise-server/entities"
	"agriwise-server/mail"
	"agriwise-server/repositories"

	"gorm.io/gorm"
)

// AuthService drives the credential lifecycle: register, login, logout,
// password change and the forgot/reset flow.
type AuthService struct {
	Users  repositories.UserRepository
	Mailer mail.Mailer
	Secret []byte
	AppURL string
}

func NewAuthService(users repositories.UserRepository, mailer mail.Mailer, secret []byte, appURL string) *AuthService {
	return &AuthService{
		Users:  users,
		Mailer: mailer,
		Secret: secret,
		AppURL: appURL,
	}
}

// Register creates a user and issues a session token. The welcome email is
// best-effort: a send failure is logged and never fails the registration.
func (s *AuthService) Register(name, email, password, phoneNumber string) (*entities.User, string, error) {
	if name == "" || email == "" || password == "" {
		return nil, "", fmt.Errorf("%w: name, email and password are required", ErrValidation)
	}
	if !strings.Contains(email, "@") {
		return nil, "", fmt.Errorf("%w: invalid email address", ErrValidation)
	}

	if existing, err := s.Users.GetByEmail(email); err == nil && existing != nil {
		return nil, "", ErrDuplicateEmail
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", ErrInternal
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, "", ErrInternal
	}

	user := &entities.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		PhoneNumber:  phoneNumber,
	}
	if err := s.Users.Create(user); err != nil {
		return nil, "", ErrInternal
	}

	token, err := auth.GenerateSessionToken(user.ID, s.Secret)
	if err != nil {
		return nil, "", ErrInternal
	}

	if err := s.Mailer.Send(user.Email, "Account Created Successfully", mail.WelcomeBody(user.Name)); err != nil {
		log.Printf("welcome email send failed for %s: %v", user.Email, err)
	}

	return user, token, nil
}

// Login verifies credentials and returns a fresh session token. Unknown email
// and wrong password fail identically to avoid account enumeration.
func (s *AuthService) Login(email, password string) (*entities.User, string, error) {
	user, err := s.Users.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", ErrInternal
	}
	if !auth.CheckPassword(password, user.PasswordHash) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := auth.GenerateSessionToken(user.ID, s.Secret)
	if err != nil {
		return nil, "", ErrInternal
	}
	return user, token, nil
}

// Logout is a no-op: session tokens are stateless and self-expiring, the
// client just discards the token. A leaked token stays valid until expiry.
func (s *AuthService) Logout() {}

// ChangePassword re-hashes after verifying the current password and returns a
// new session token. Previously issued tokens stay valid until they expire.
func (s *AuthService) ChangePassword(userID, currentPassword, newPassword string) (string, error) {
	if newPassword == "" {
		return "", fmt.Errorf("%w: new password is required", ErrValidation)
	}

	user, err := s.Users.GetByID(userID)
	if err != nil {
		return "", translateStoreErr(err)
	}
	if !auth.CheckPassword(currentPassword, user.PasswordHash) {
		return "", ErrInvalidCredentials
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return "", ErrInternal
	}
	user.PasswordHash = hash
	if err := s.Users.Update(user); err != nil {
		return "", ErrInternal
	}

	token, err := auth.GenerateSessionToken(user.ID, s.Secret)
	if err != nil {
		return "", ErrInternal
	}
	return token, nil
}

// ForgotPassword persists a reset token digest and emails the raw token. The
// reset mail must reach the user: if the send fails, both reset fields are
// cleared so no dangling reset credential survives in storage.
func (s *AuthService) ForgotPassword(email string) error {
	user, err := s.Users.GetByEmail(email)
	if err != nil {
		return translateStoreErr(err)
	}

	raw, tokenHash, expiry, err := auth.NewResetToken()
	if err != nil {
		return ErrInternal
	}
	user.ResetPasswordToken = &tokenHash
	user.ResetPasswordExpire = &expiry
	if err := s.Users.Update(user); err != nil {
		return ErrInternal
	}

	resetURL := fmt.Sprintf("%s/reset-password?resettoken=%s", s.AppURL, raw)
	if err := s.Mailer.Send(user.Email, "Password Reset Request", mail.ResetBody(resetURL)); err != nil {
		log.Printf("reset email send failed for %s: %v", user.Email, err)
		user.ClearResetToken()
		if uerr := s.Users.Update(user); uerr != nil {
			log.Printf("failed to clear reset token for %s: %v", user.Email, uerr)
		}
		return ErrMailSend
	}
	return nil
}

// ResetPassword consumes a reset token. The current password is required on
// top of token possession, so a leaked reset link alone cannot rotate the
// credential.
func (s *AuthService) ResetPassword(rawToken, currentPassword, newPassword string) error {
	tokenHash := auth.HashResetToken(rawToken)
	user, err := s.Users.GetByResetToken(tokenHash, time.Now())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInvalidResetToken
		}
		return ErrInternal
	}

	if !auth.CheckPassword(currentPassword, user.PasswordHash) {
		return ErrInvalidCredentials
	}
	if newPassword == "" {
		return fmt.Errorf("%w: new password is required", ErrValidation)
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return ErrInternal
	}
	// Single-use: the token digest is cleared together with the new hash.
	user.PasswordHash = hash
	user.ClearResetToken()
	if err := s.Users.Update(user); err != nil {
		return ErrInternal
	}
	return nil
}
