package persistence

import (
	"context"

	"github.com/amirhossein-jamali/expense-tracker/internal/domain/entity"
)

// UserRepository is the credential store consumed by the auth use case
type UserRepository interface {
	// GetByUsername retrieves a user by exact, case-sensitive username
	//
	// Possible errors:
	// - ErrUserNotFound: If no user has the given username
	// - ErrDatabaseConnection: If database connection fails
	GetByUsername(ctx context.Context, username string) (*entity.User, error)

	// Create persists a new user and sets its generated ID
	//
	// Possible errors:
	// - ErrUsernameTaken: If the username is already stored (unique index)
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, user *entity.User) error
}
