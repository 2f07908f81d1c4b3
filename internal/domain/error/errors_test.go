package error

import (
	"errors"
	"fmt"
	"testing"
)

func TestBaseErrorTypes(t *testing.T) {
	if ErrUsernameTaken.Error() != "username already exists" {
		t.Errorf("ErrUsernameTaken has unexpected message: %s", ErrUsernameTaken.Error())
	}
	if ErrMissingDateRange.Error() != "both startDate and endDate are required query parameters" {
		t.Errorf("ErrMissingDateRange has unexpected message: %s", ErrMissingDateRange.Error())
	}
}

func TestErrorCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"Validation", NewValidationError("amount", ErrMissingTransactionFields), 4000},
		{"Unauthorized", ErrUnauthorized, 4010},
		{"InvalidPassword", ErrInvalidPassword, 4011},
		{"UserNotFound", ErrUserNotFound, 4040},
		{"TransactionNotFound", ErrTransactionNotFound, 4041},
		{"UsernameTaken", ErrUsernameTaken, 4090},
		{"RateLimited", ErrRateLimited, 4290},
		{"UnknownError", errors.New("unknown error"), 5000},
		{"WrappedError", fmt.Errorf("wrapped: %w", ErrTransactionNotFound), 4041},
		{"StoreErrorKeepsCause", NewStoreError("create", "user", ErrUsernameTaken), 4090},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			code := ErrorCode(tc.err)
			if code != tc.expected {
				t.Errorf("ErrorCode(%v) = %d, want %d", tc.err, code, tc.expected)
			}
		})
	}
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("startDate", ErrInvalidDate)

	if err.Error() != "startDate: invalid date" {
		t.Errorf("ValidationError.Error() = %s", err.Error())
	}
	if !errors.Is(err, ErrValidation) {
		t.Errorf("errors.Is(err, ErrValidation) = false, want true")
	}
	if !errors.Is(err, ErrInvalidDate) {
		t.Errorf("errors.Is(err, ErrInvalidDate) = false, want true")
	}

	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("errors.As failed for ValidationError")
	}
	fields := validationErr.LogFields()
	if fields["field"] != "startDate" || fields["error_code"] != CodeValidation {
		t.Errorf("unexpected log fields: %v", fields)
	}

	bare := NewValidationError("", ErrMissingCredentials)
	if bare.Error() != ErrMissingCredentials.Error() {
		t.Errorf("field-less ValidationError.Error() = %s", bare.Error())
	}
}

func TestStoreError(t *testing.T) {
	cause := fmt.Errorf("%w: connection refused", ErrDatabaseConnection)
	err := NewStoreError("list", "transaction", cause)

	if !errors.Is(err, ErrDatabaseConnection) {
		t.Errorf("errors.Is(err, ErrDatabaseConnection) = false, want true")
	}
	if err.Error() != "list transaction: database connection error: connection refused" {
		t.Errorf("StoreError.Error() = %s", err.Error())
	}
}

func TestErrorPredicates(t *testing.T) {
	if !IsValidationError(fmt.Errorf("ctx: %w", NewValidationError("id", ErrInvalidTransactionID))) {
		t.Errorf("IsValidationError should see through wrapping")
	}
	if IsValidationError(ErrUserNotFound) {
		t.Errorf("IsValidationError(ErrUserNotFound) = true")
	}
	if !IsUsernameTakenError(ErrUsernameTaken) {
		t.Errorf("IsUsernameTakenError(ErrUsernameTaken) = false")
	}
	if !IsUserNotFoundError(ErrUserNotFound) {
		t.Errorf("IsUserNotFoundError(ErrUserNotFound) = false")
	}
	if !IsNotFoundError(ErrTransactionNotFound) || !IsNotFoundError(ErrUserNotFound) {
		t.Errorf("IsNotFoundError missed a not-found error")
	}
	if !IsUnauthorizedError(ErrInvalidPassword) || !IsUnauthorizedError(ErrUnauthorized) {
		t.Errorf("IsUnauthorizedError missed an auth error")
	}
	if IsUnauthorizedError(ErrUserNotFound) {
		t.Errorf("IsUnauthorizedError(ErrUserNotFound) = true")
	}
}
