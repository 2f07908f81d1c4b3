package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"

	errs "github.com/amirhossein-jamali/expense-tracker/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestErrorClassifierClassify(t *testing.T) {
	classifier := NewErrorClassifier()

	testCases := []struct {
		name     string
		err      error
		expected ErrorType
	}{
		{"Nil", nil, ""},
		{"GormDuplicate", gorm.ErrDuplicatedKey, DuplicateKeyError},
		{"PostgresDuplicate", errors.New(`ERROR: duplicate key value violates unique constraint "idx_users_username" (SQLSTATE 23505)`), DuplicateKeyError},
		{"SQLiteDuplicate", errors.New("constraint failed: UNIQUE constraint failed: users.username (2067)"), DuplicateKeyError},
		{"Deadline", fmt.Errorf("query: %w", context.DeadlineExceeded), TransientError},
		{"Locked", errors.New("database is locked (5) (SQLITE_BUSY)"), TransientError},
		{"Dial", errors.New("dial tcp 127.0.0.1:5432: connect: connection refused"), TransientError},
		{"Closed", errors.New("sql: database is closed"), ConnectionError},
		{"ForeignKey", gorm.ErrForeignKeyViolated, ConstraintError},
		{"Check", errors.New("CHECK constraint failed: chk_transactions_type"), ConstraintError},
		{"Other", errors.New("syntax error"), ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, classifier.Classify(tc.err))
		})
	}
}

func TestMapStoreError(t *testing.T) {
	classifier := NewErrorClassifier()

	err := classifier.mapStoreError("create", "user", gorm.ErrDuplicatedKey, errs.ErrUsernameTaken)
	assert.ErrorIs(t, err, errs.ErrUsernameTaken)

	err = classifier.mapStoreError("create", "transaction", gorm.ErrDuplicatedKey, nil)
	assert.ErrorIs(t, err, errs.ErrConstraintViolation)

	err = classifier.mapStoreError("list", "transaction", errors.New("connection reset by peer"), nil)
	assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
	assert.EqualError(t, err, "list transaction: database connection error: connection reset by peer")

	err = classifier.mapStoreError("create", "transaction", gorm.ErrCheckConstraintViolated, nil)
	assert.ErrorIs(t, err, errs.ErrConstraintViolation)

	err = classifier.mapStoreError("delete", "transaction", fmt.Errorf("exec: %w", context.DeadlineExceeded), nil)
	assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
}
