package security

import "github.com/amirhossein-jamali/expense-tracker/internal/domain/entity"

// SessionTokenService issues and verifies signed session tokens
type SessionTokenService interface {
	// Issue signs a token asserting userID
	Issue(userID uint64) (*entity.SessionToken, error)

	// Verify checks the token signature and returns the identity it asserts
	//
	// Possible errors:
	// - ErrUnauthorized: If the token is malformed, badly signed, expired or carries no user ID
	Verify(token string) (*entity.Identity, error)
}
