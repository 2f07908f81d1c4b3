package entity

import (
	"time"

	errs "github.com/amirhossein-jamali/expense-tracker/internal/domain/error"
	coreport "github.com/amirhossein-jamali/expense-tracker/internal/domain/port/core"
)

// User represents a registered account
type User struct {
	ID           uint64    // Unique identifier, assigned by the store
	Username     string    // Unique, case-sensitive login name
	PasswordHash string    // Salted one-way hash, never the plaintext
	CreatedAt    time.Time // When the user registered
	UpdatedAt    time.Time // When the record was last written
}

// ValidateCredentials checks that both halves of a username/password pair are present
func ValidateCredentials(username, password string) error {
	if username == "" || password == "" {
		return errs.NewValidationError("", errs.ErrMissingCredentials)
	}
	return nil
}

// NewUser creates a user that is ready to be stored
func NewUser(username, passwordHash string, timeProvider coreport.TimeProvider) (*User, error) {
	if username == "" {
		return nil, errs.NewValidationError("username", errs.ErrMissingCredentials)
	}
	if passwordHash == "" {
		return nil, errs.NewValidationError("password", errs.ErrMissingCredentials)
	}

	now := timeProvider.Now().UTC()
	return &User{
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}
