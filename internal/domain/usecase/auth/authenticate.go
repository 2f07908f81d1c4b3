package auth

import (
	"context"

	"github.com/amirhossein-jamali/expense-tracker/internal/domain/entity"
	errs "github.com/amirhossein-jamali/expense-tracker/internal/domain/error"
)

// Authenticate resolves a session token to the identity it asserts
func (u *AuthUseCase) Authenticate(_ context.Context, token string) (*entity.Identity, error) {
	if token == "" {
		return nil, errs.ErrUnauthorized
	}

	identity, err := u.tokens.Verify(token)
	if err != nil {
		u.logger.Debug("Session token rejected", map[string]any{
			"error": err.Error(),
		})
		return nil, err
	}

	return identity, nil
}
