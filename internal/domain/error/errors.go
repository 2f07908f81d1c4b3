package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeValidation          = 4000
	CodeUnauthorized        = 4010
	CodeInvalidPassword     = 4011
	CodeUserNotFound        = 4040
	CodeTransactionNotFound = 4041
	CodeUsernameTaken       = 4090
	CodeRateLimited         = 4290

	// 5xxx - Server errors
	CodeInternalServer = 5000
)

// Base error types
var (
	// ErrValidation is the parent of every request validation failure
	ErrValidation = errors.New("validation failed")

	// ErrMissingCredentials is returned when username or password is empty
	ErrMissingCredentials = errors.New("username and password are required")

	// ErrPasswordTooLong is returned when the password exceeds the hashing algorithm's input limit
	ErrPasswordTooLong = errors.New("password is too long")

	// ErrMissingTransactionFields is returned when kind or amount is absent
	ErrMissingTransactionFields = errors.New("transaction type and amount are required")

	// ErrInvalidKind is returned when the transaction kind is neither income nor expense
	ErrInvalidKind = errors.New("transaction type must be income or expense")

	// ErrMissingDateRange is returned when either bound of a date range is absent
	ErrMissingDateRange = errors.New("both startDate and endDate are required query parameters")

	// ErrInvalidDate is returned when a date value cannot be parsed
	ErrInvalidDate = errors.New("invalid date")

	// ErrInvalidTransactionID is returned when the transaction ID is missing or not a positive integer
	ErrInvalidTransactionID = errors.New("transaction ID is required")

	// ErrInvalidOwnerID is returned when an operation is attempted without an owner
	ErrInvalidOwnerID = errors.New("owner ID must be positive")

	// ErrUsernameTaken is returned when registering a username that already exists
	ErrUsernameTaken = errors.New("username already exists")

	// ErrUserNotFound is returned when the requested user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidPassword is returned when the password does not match the stored hash
	ErrInvalidPassword = errors.New("invalid password")

	// ErrTransactionNotFound is returned when the requested transaction doesn't exist for the owner
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrUnauthorized is returned when a session token is missing or invalid
	ErrUnauthorized = errors.New("unauthorized")

	// ErrRateLimited is returned when a client exceeded its request budget
	ErrRateLimited = errors.New("too many requests")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")

	// ErrSummaryOverflow is returned when a summary total does not fit in a float64
	ErrSummaryOverflow = errors.New("summary total out of range")

	// ErrDatabaseConnection is returned when there's a problem talking to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrConstraintViolation is returned when a database constraint is violated
	ErrConstraintViolation = errors.New("database constraint violation")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrValidation):
		return CodeValidation
	case errors.Is(err, ErrUnauthorized):
		return CodeUnauthorized
	case errors.Is(err, ErrInvalidPassword):
		return CodeInvalidPassword
	case errors.Is(err, ErrUserNotFound):
		return CodeUserNotFound
	case errors.Is(err, ErrTransactionNotFound):
		return CodeTransactionNotFound
	case errors.Is(err, ErrUsernameTaken):
		return CodeUsernameTaken
	case errors.Is(err, ErrRateLimited):
		return CodeRateLimited
	default:
		return CodeInternalServer
	}
}

// ValidationError describes a rejected request field
type ValidationError struct {
	Field string
	Err   error
}

// Error implements the error interface for ValidationError
func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

// Unwrap returns the underlying error
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Is reports every ValidationError as an ErrValidation
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// LogFields returns a map of fields for structured logging
func (e *ValidationError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "validation_error",
		"field":      e.Field,
		"error":      e.Err.Error(),
		"error_code": CodeValidation,
	}
}

// NewValidationError wraps err as a validation failure on field
func NewValidationError(field string, err error) error {
	return &ValidationError{Field: field, Err: err}
}

// StoreError records which store operation failed and why
type StoreError struct {
	Operation string
	Entity    string
	Err       error
}

// Error implements the error interface for StoreError
func (e *StoreError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Operation, e.Entity, e.Err)
}

// Unwrap returns the underlying error
func (e *StoreError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *StoreError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "store_error",
		"operation":  e.Operation,
		"entity":     e.Entity,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
}

// NewStoreError wraps a persistence failure with the operation that caused it
func NewStoreError(operation, entity string, err error) error {
	return &StoreError{Operation: operation, Entity: entity, Err: err}
}

// IsValidationError checks if the error is a request validation failure
func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsUsernameTakenError checks if the error is a username conflict
func IsUsernameTakenError(err error) bool {
	return errors.Is(err, ErrUsernameTaken)
}

// IsUserNotFoundError checks if the error is a user not found error
func IsUserNotFoundError(err error) bool {
	return errors.Is(err, ErrUserNotFound)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrTransactionNotFound)
}

// IsUnauthorizedError checks if the error should be answered as an authentication failure
func IsUnauthorizedError(err error) bool {
	return errors.Is(err, ErrUnauthorized) || errors.Is(err, ErrInvalidPassword)
}
