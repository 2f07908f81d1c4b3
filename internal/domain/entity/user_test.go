package entity

import (
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/expense-tracker/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/expense-tracker/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCredentials(t *testing.T) {
	testCases := []struct {
		name     string
		username string
		password string
		valid    bool
	}{
		{"Both present", "alice", "secret", true},
		{"Missing username", "", "secret", false},
		{"Missing password", "alice", "", false},
		{"Both missing", "", "", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateCredentials(tc.username, tc.password)
			if tc.valid {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errs.IsValidationError(err))
			assert.ErrorIs(t, err, errs.ErrMissingCredentials)
		})
	}
}

func TestNewUser(t *testing.T) {
	fixedTime := time.Date(2024, 3, 1, 9, 30, 0, 0, time.FixedZone("CET", 3600))
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	t.Run("Valid user", func(t *testing.T) {
		user, err := NewUser("alice", "$2a$10$hash", mockTime)

		require.NoError(t, err)
		assert.Equal(t, uint64(0), user.ID)
		assert.Equal(t, "alice", user.Username)
		assert.Equal(t, "$2a$10$hash", user.PasswordHash)
		assert.Equal(t, fixedTime.UTC(), user.CreatedAt)
		assert.Equal(t, time.UTC, user.CreatedAt.Location())
		assert.Equal(t, user.CreatedAt, user.UpdatedAt)
	})

	t.Run("Empty username", func(t *testing.T) {
		user, err := NewUser("", "hash", mockTime)

		assert.Nil(t, user)
		assert.True(t, errs.IsValidationError(err))
	})

	t.Run("Empty password hash", func(t *testing.T) {
		user, err := NewUser("alice", "", mockTime)

		assert.Nil(t, user)
		assert.True(t, errs.IsValidationError(err))
	})
}
