package auth

import (
	"context"

	errs "github.com/amirhossein-jamali/expense-tracker/internal/domain/error"
	coreport "github.com/amirhossein-jamali/expense-tracker/internal/domain/port/core"
	"github.com/amirhossein-jamali/expense-tracker/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/expense-tracker/internal/domain/port/security"
)

// AuthUseCase handles registration, login and session verification
type AuthUseCase struct {
	userRepo     persistence.UserRepository
	hasher       security.PasswordHasher
	tokens       security.SessionTokenService
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewAuthUseCase creates a new AuthUseCase
func NewAuthUseCase(
	userRepo persistence.UserRepository,
	hasher security.PasswordHasher,
	tokens security.SessionTokenService,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *AuthUseCase {
	return &AuthUseCase{
		userRepo:     userRepo,
		hasher:       hasher,
		tokens:       tokens,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// UsernameExists checks if a user with the given username exists
func (u *AuthUseCase) UsernameExists(ctx context.Context, username string) (bool, error) {
	_, err := u.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errs.IsUserNotFoundError(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
