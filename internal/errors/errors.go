// Package errors provides custom error types for the FlexiCoach API.
// All service-layer errors should use AppError to ensure consistent,
// secure error responses that never leak internal details to clients.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string      `json:"code"`
	Message    string      `json:"message"`
	Details    interface{} `json:"details,omitempty"`
	StatusCode int         `json:"-"`
	Internal   error       `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		Details:    sentinel.Details,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		Details:    sentinel.Details,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// WithDetails returns a copy of the error carrying structured,
// client-safe detail (for example the per-row rejection reasons behind an
// empty result).
func WithDetails(err *AppError, details interface{}) *AppError {
	return &AppError{
		Code:       err.Code,
		Message:    err.Message,
		Details:    details,
		StatusCode: err.StatusCode,
		Internal:   err.Internal,
	}
}

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// Ingestion and normalization errors. Row-level validation failures are
// reported per row and never abort the batch; these cover batch-level
// conditions only.
var (
	ErrUnreadableInput = &AppError{Code: "UNREADABLE_INPUT", Message: "Transaction file could not be read", StatusCode: http.StatusBadRequest}
	ErrMissingColumn   = &AppError{Code: "MISSING_COLUMN", Message: "Required column not found in transaction file", StatusCode: http.StatusBadRequest}
	ErrEmptyResult     = &AppError{Code: "EMPTY_RESULT", Message: "No valid transactions found after cleaning", StatusCode: http.StatusUnprocessableEntity}
)

// Challenge errors. InvalidTransition responses always name the challenge's
// actual current status so the caller can act on it.
var (
	ErrChallengeNotFound = &AppError{Code: "CHALLENGE_NOT_FOUND", Message: "Challenge not found for user", StatusCode: http.StatusNotFound}
	ErrInvalidTransition = &AppError{Code: "INVALID_TRANSITION", Message: "Challenge is not in a valid state for this operation", StatusCode: http.StatusConflict}
	ErrProgressDecreased = &AppError{Code: "PROGRESS_DECREASED", Message: "Challenge progress cannot decrease", StatusCode: http.StatusConflict}
	ErrUnknownTemplate   = &AppError{Code: "UNKNOWN_TEMPLATE", Message: "Unknown challenge template", StatusCode: http.StatusNotFound}
)

// Coach errors.
var (
	ErrCoachUnavailable = &AppError{Code: "COACH_UNAVAILABLE", Message: "The coach is unavailable right now", StatusCode: http.StatusServiceUnavailable}
)
