package dto

import (
	"errors"
	"net/http"
	"strings"
	"unicode"
	"unicode/utf8"

	domainerr "github.com/amirhossein-jamali/expense-tracker/internal/domain/error"
)

// ErrorResponse represents a standardized error response for the API
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// MessageResponse carries a human-readable outcome
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorStatus maps a domain error to its HTTP status code
func ErrorStatus(err error) int {
	switch domainerr.ErrorCode(err) {
	case domainerr.CodeValidation:
		return http.StatusBadRequest
	case domainerr.CodeUnauthorized, domainerr.CodeInvalidPassword:
		return http.StatusUnauthorized
	case domainerr.CodeUserNotFound, domainerr.CodeTransactionNotFound:
		return http.StatusNotFound
	case domainerr.CodeUsernameTaken:
		return http.StatusConflict
	case domainerr.CodeRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// NewErrorResponse builds the response body for a domain error.
// Internal failures never expose their cause.
func NewErrorResponse(err error) ErrorResponse {
	code := domainerr.ErrorCode(err)

	var message string
	switch code {
	case domainerr.CodeValidation:
		message = validationMessage(err)
	case domainerr.CodeUnauthorized:
		message = "Unauthorized"
	case domainerr.CodeInvalidPassword:
		message = "Invalid password"
	case domainerr.CodeUserNotFound:
		message = "User not found"
	case domainerr.CodeTransactionNotFound:
		message = "Transaction not found"
	case domainerr.CodeUsernameTaken:
		message = "Username already exists"
	case domainerr.CodeRateLimited:
		message = "Too many requests, please try again later."
	default:
		message = "Internal server error"
	}

	return ErrorResponse{Code: code, Message: message}
}

// validationMessage keeps field-prefixed messages as is and capitalizes bare ones
func validationMessage(err error) string {
	var validationErr *domainerr.ValidationError
	if errors.As(err, &validationErr) && validationErr.Field != "" {
		return validationErr.Error()
	}
	return capitalize(err.Error())
}

func capitalize(s string) string {
	s = strings.TrimSpace(s)
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
