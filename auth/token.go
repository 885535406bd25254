package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers malformed, badly signed and expired session tokens.
// Callers are not told which one it was.
var ErrInvalidToken = errors.New("invalid or expired token")

const (
	// SessionTokenTTL is the fixed validity window of a session token.
	SessionTokenTTL = 7 * 24 * time.Hour
	// ResetTokenTTL is the validity window of a password reset token.
	ResetTokenTTL = 10 * time.Minute
)

// Claims carries the standard claims plus the user id as subject.
type Claims struct {
	jwt.RegisteredClaims
}

// GenerateSessionToken signs a session token carrying userID, valid for
// SessionTokenTTL from now.
func GenerateSessionToken(userID string, secret []byte) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(SessionTokenTTL)),
		},
	})
	return token.SignedString(secret)
}

// ParseSessionToken verifies a session token and returns the user id it was
// issued for. Every failure mode collapses into ErrInvalidToken.
func ParseSessionToken(tokenString string, secret []byte) (string, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil || !token.Valid || claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}

// NewResetToken returns a high-entropy raw reset token, the sha256 digest to
// persist, and the expiry. Only the digest may ever be stored; the raw value
// goes into the reset link and nowhere else.
func NewResetToken() (raw string, tokenHash string, expiry time.Time, err error) {
	buf := make([]byte, 20)
	if _, err = rand.Read(buf); err != nil {
		return "", "", time.Time{}, err
	}
	raw = hex.EncodeToString(buf)
	return raw, HashResetToken(raw), time.Now().Add(ResetTokenTTL), nil
}

// HashResetToken recomputes the stored digest for a presented raw token.
func HashResetToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}
