package auth

import (
	"context"

	"github.com/amirhossein-jamali/expense-tracker/internal/domain/entity"
	errs "github.com/amirhossein-jamali/expense-tracker/internal/domain/error"
	"github.com/amirhossein-jamali/expense-tracker/internal/domain/port/usecase"
)

// Login verifies the credentials and issues a session token
func (u *AuthUseCase) Login(ctx context.Context, req usecase.Credentials) (*entity.SessionToken, error) {
	if err := entity.ValidateCredentials(req.Username, req.Password); err != nil {
		return nil, err
	}

	user, err := u.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errs.IsUserNotFoundError(err) {
			u.logger.Info("Login failed, unknown username", map[string]any{
				"username": req.Username,
			})
		}
		return nil, err
	}

	if err := u.hasher.Compare(user.PasswordHash, req.Password); err != nil {
		if errs.IsUnauthorizedError(err) {
			u.logger.Warn("Login failed, password mismatch", map[string]any{
				"userId": user.ID,
			})
		} else {
			u.logger.Error("Failed to verify password", map[string]any{
				"userId": user.ID,
				"error":  err.Error(),
			})
		}
		return nil, err
	}

	token, err := u.tokens.Issue(user.ID)
	if err != nil {
		u.logger.Error("Failed to issue session token", map[string]any{
			"userId": user.ID,
			"error":  err.Error(),
		})
		return nil, err
	}

	u.logger.Info("User logged in", map[string]any{
		"userId": user.ID,
	})

	return token, nil
}
