package security

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/amirhossein-jamali/expense-tracker/internal/domain/entity"
	errs "github.com/amirhossein-jamali/expense-tracker/internal/domain/error"
	coreport "github.com/amirhossein-jamali/expense-tracker/internal/domain/port/core"
	"github.com/golang-jwt/jwt/v5"
)

// ErrWeakSecret is returned when the signing secret is empty
var ErrWeakSecret = errors.New("session signing secret must not be empty")

// SessionClaims is the JWT payload of a session token
type SessionClaims struct {
	UserID uint64 `json:"userId"`
	jwt.RegisteredClaims
}

// JWTSessionService issues and verifies HS256 session tokens
type JWTSessionService struct {
	secret       []byte
	ttl          time.Duration
	timeProvider coreport.TimeProvider
}

// NewJWTSessionService creates a token service. A zero ttl issues tokens without an expiry.
func NewJWTSessionService(secret string, ttl time.Duration, timeProvider coreport.TimeProvider) (*JWTSessionService, error) {
	if secret == "" {
		return nil, ErrWeakSecret
	}
	if ttl < 0 {
		ttl = 0
	}
	return &JWTSessionService{
		secret:       []byte(secret),
		ttl:          ttl,
		timeProvider: timeProvider,
	}, nil
}

// Issue signs a token asserting userID
func (s *JWTSessionService) Issue(userID uint64) (*entity.SessionToken, error) {
	now := s.timeProvider.Now().UTC().Truncate(time.Second)

	claims := SessionClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  strconv.FormatUint(userID, 10),
			IssuedAt: jwt.NewNumericDate(now),
		},
	}

	var expiresAt *time.Time
	if s.ttl > 0 {
		exp := now.Add(s.ttl)
		expiresAt = &exp
		claims.ExpiresAt = jwt.NewNumericDate(exp)
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, fmt.Errorf("sign session token: %w", err)
	}

	return &entity.SessionToken{
		Value:     signed,
		UserID:    userID,
		IssuedAt:  now,
		ExpiresAt: expiresAt,
	}, nil
}

// Verify checks the signature and expiry of token and returns the identity it asserts
func (s *JWTSessionService) Verify(token string) (*entity.Identity, error) {
	claims := &SessionClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.timeProvider.Now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrUnauthorized, err)
	}
	if !parsed.Valid {
		return nil, errs.ErrUnauthorized
	}

	userID := claims.UserID
	if userID == 0 && claims.Subject != "" {
		if id, convErr := strconv.ParseUint(claims.Subject, 10, 64); convErr == nil {
			userID = id
		}
	}
	if userID == 0 {
		return nil, fmt.Errorf("%w: token carries no user id", errs.ErrUnauthorized)
	}

	return &entity.Identity{UserID: userID}, nil
}
