package usecase

import (
	"context"

	"github.com/amirhossein-jamali/expense-tracker/internal/domain/entity"
)

// Credentials is the username/password pair submitted to register and login
type Credentials struct {
	Username string
	Password string
}

// AuthUseCase defines registration, login and session verification
type AuthUseCase interface {
	// Register creates a user with a hashed password
	// Used by the POST /api/user/register endpoint
	Register(ctx context.Context, req Credentials) (*entity.User, error)

	// Login verifies the credentials and issues a session token
	// Used by the POST /api/user/login endpoint
	Login(ctx context.Context, req Credentials) (*entity.SessionToken, error)

	// Authenticate resolves a session token to the caller's identity
	// Used by the session gate in front of every protected route
	Authenticate(ctx context.Context, token string) (*entity.Identity, error)
}
