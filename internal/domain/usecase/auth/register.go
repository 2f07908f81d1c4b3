package auth

import (
	"context"

	"github.com/amirhossein-jamali/expense-tracker/internal/domain/entity"
	errs "github.com/amirhossein-jamali/expense-tracker/internal/domain/error"
	"github.com/amirhossein-jamali/expense-tracker/internal/domain/port/usecase"
)

// Register creates a new user with a hashed password
func (u *AuthUseCase) Register(ctx context.Context, req usecase.Credentials) (*entity.User, error) {
	if err := entity.ValidateCredentials(req.Username, req.Password); err != nil {
		return nil, err
	}

	// Best-effort check; the unique index on username settles concurrent registrations
	exists, err := u.UsernameExists(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		u.logger.Info("Registration rejected, username taken", map[string]any{
			"username": req.Username,
		})
		return nil, errs.ErrUsernameTaken
	}

	hash, err := u.hasher.Hash(req.Password)
	if err != nil {
		if !errs.IsValidationError(err) {
			u.logger.Error("Failed to hash password", map[string]any{
				"username": req.Username,
				"error":    err.Error(),
			})
		}
		return nil, err
	}

	user, err := entity.NewUser(req.Username, hash, u.timeProvider)
	if err != nil {
		return nil, err
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		if errs.IsUsernameTakenError(err) {
			u.logger.Warn("Username claimed by a concurrent registration", map[string]any{
				"username": req.Username,
			})
			return nil, err
		}
		u.logger.Error("Failed to create user", map[string]any{
			"username": req.Username,
			"error":    err.Error(),
		})
		return nil, err
	}

	u.logger.Info("User registered", map[string]any{
		"userId":   user.ID,
		"username": user.Username,
	})

	return user, nil
}
