package model

import (
	"time"

	"github.com/google/uuid"
)

// TokenManager generates and validates identity tokens.
type TokenManager interface {
	Generate(userID uuid.UUID) (string, time.Time, error)
	// Parse returns the user ID carried by a valid token. Failures wrap
	// ErrTokenExpired or ErrTokenInvalid.
	Parse(token string) (uuid.UUID, error)
}

// PasswordHasher hashes and checks passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Compare returns ErrPasswordMismatch when password does not match hash.
	Compare(hash, password string) error
	NeedsRehash(hash string) bool
}

// AccessToken is an issued bearer token.
type AccessToken struct {
	Token     string
	ExpiresAt time.Time
}
