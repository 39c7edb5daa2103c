// Package errors provides the structured error type shared by the services,
// the HTTP surface and the CLI. Every failure that reaches a caller is an
// *AppError so the response envelope never leaks internal details.
package errors

import (
	"net/http"
	"strings"
)

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Is reports whether target is an *AppError carrying the same code, so that
// errors.Is matches a sentinel after Wrap or WithMessage.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	return ok && t.Code == e.Code
}

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// Upstream converts a rejection from the transaction service into an
// AppError. The service's own message is kept verbatim; fallback is used when
// the service sent none.
func Upstream(status int, message, fallback string) *AppError {
	message = strings.TrimSpace(message)
	if message == "" {
		message = fallback
	}
	if status < http.StatusBadRequest {
		status = http.StatusBadGateway
	}
	if status == http.StatusUnauthorized {
		return WithMessage(ErrUnauthorized, message)
	}
	return &AppError{Code: ErrUpstream.Code, Message: message, StatusCode: status}
}

// Authentication errors.
var (
	ErrUnauthorized  = &AppError{Code: "UNAUTHORIZED", Message: "Authentication required", StatusCode: http.StatusUnauthorized}
	ErrInvalidAPIKey = &AppError{Code: "INVALID_API_KEY", Message: "Invalid or missing API key", StatusCode: http.StatusUnauthorized}
)

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// Transaction service errors.
var (
	ErrUpstream            = &AppError{Code: "UPSTREAM_ERROR", Message: "Request failed", StatusCode: http.StatusBadGateway}
	ErrUpstreamUnavailable = &AppError{Code: "UPSTREAM_UNAVAILABLE", Message: "Transaction service is unreachable", StatusCode: http.StatusBadGateway}
)

// Transaction errors.
var (
	ErrTransactionNotFound = &AppError{Code: "TRANSACTION_NOT_FOUND", Message: "Transaction not found", StatusCode: http.StatusNotFound}
	ErrEditWindowExpired   = &AppError{Code: "EDIT_WINDOW_EXPIRED", Message: "Transactions older than 12 hours cannot be changed", StatusCode: http.StatusConflict}
	ErrSameAccountTransfer = &AppError{Code: "SAME_ACCOUNT_TRANSFER", Message: "Cannot transfer to the same account", StatusCode: http.StatusBadRequest}
	ErrKindDisabled        = &AppError{Code: "KIND_DISABLED", Message: "Add money to an account first", StatusCode: http.StatusBadRequest}
	ErrRecipientRequired   = &AppError{Code: "RECIPIENT_REQUIRED", Message: "Recipient email is required", StatusCode: http.StatusBadRequest}
	ErrAccountRequired     = &AppError{Code: "ACCOUNT_REQUIRED", Message: "An account must be selected", StatusCode: http.StatusBadRequest}
)
