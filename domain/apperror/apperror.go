package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorCode identifies an error category across layers.
type ErrorCode string

const (
	CodeUnauthorized ErrorCode = "AUTH_UNAUTHORIZED"
	CodeForbidden    ErrorCode = "AUTH_FORBIDDEN"
	CodeValidation   ErrorCode = "VALIDATION_FAILED"
	CodeNotFound     ErrorCode = "NOT_FOUND"
	CodeConflict     ErrorCode = "CONFLICT"
	CodeInternal     ErrorCode = "INTERNAL"
)

// AppError carries a code and a client-safe message. Cause is kept for
// server-side logging only and never serialized.
type AppError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Cause   error     `json:"-"`
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func New(code ErrorCode, message string, cause error) *AppError {
	return &AppError{Code: code, Message: message, Cause: cause}
}

// InvalidCredentials is the single error path for both unknown-email
// and wrong-password login failures. Both cases must produce the exact
// same message so callers cannot enumerate accounts.
func InvalidCredentials() *AppError {
	return New(CodeUnauthorized, "Invalid credentials", nil)
}

// Unauthorized covers every non-login authentication failure: missing,
// malformed or expired tokens and refresh tokens whose account is gone.
// The message never says which check failed.
func Unauthorized(cause error) *AppError {
	return New(CodeUnauthorized, "Unauthorized", cause)
}

func Forbidden() *AppError {
	return New(CodeForbidden, "Forbidden", nil)
}

func NotFound(what string) *AppError {
	return New(CodeNotFound, what+" not found", nil)
}

func Validation(message string) *AppError {
	return New(CodeValidation, message, nil)
}

func Conflict(message string, cause error) *AppError {
	return New(CodeConflict, message, cause)
}

func Internal(cause error) *AppError {
	return New(CodeInternal, "Internal server error", cause)
}

// CodeOf extracts the error code, defaulting to CodeInternal for
// errors raised outside this package.
func CodeOf(err error) ErrorCode {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeInternal
}

// HTTPStatus maps an error to the status the HTTP layer should return.
func HTTPStatus(err error) int {
	switch CodeOf(err) {
	case CodeUnauthorized:
		return http.StatusUnauthorized
	case CodeForbidden:
		return http.StatusForbidden
	case CodeValidation:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// ClientMessage returns the message safe to surface to the caller.
// Unknown errors collapse to a generic message.
func ClientMessage(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return "Internal server error"
}
