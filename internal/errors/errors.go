// Package errors provides custom error types for the private markets API.
// All service-layer errors should use AppError so responses stay consistent
// and never leak datastore details to clients.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, optional list of field messages,
// and optional internal error.
type AppError struct {
	Code       string   `json:"code"`
	Message    string   `json:"message"`
	Errors     []string `json:"errors,omitempty"`
	StatusCode int      `json:"-"`
	Internal   error    `json:"-"`
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
		Errors:     sentinel.Errors,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		Errors:     sentinel.Errors,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// WithErrors creates a new AppError carrying the given field-level messages.
func WithErrors(sentinel *AppError, messages []string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		Errors:     messages,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// General errors.
var (
	ErrValidation     = &AppError{Code: "VALIDATION_FAILED", Message: "Validation failed", StatusCode: http.StatusBadRequest}
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "Internal server error", StatusCode: http.StatusInternalServerError}
)

// Datastore constraint errors.
var (
	ErrDuplicateRecord         = &AppError{Code: "DUPLICATE_RECORD", Message: "A record with this value already exists", StatusCode: http.StatusConflict}
	ErrReferencedRecordMissing = &AppError{Code: "REFERENCED_RECORD_MISSING", Message: "Referenced record does not exist", StatusCode: http.StatusBadRequest}
	ErrInvalidData             = &AppError{Code: "INVALID_DATA", Message: "Invalid data provided", StatusCode: http.StatusBadRequest}
	ErrInvalidFormat           = &AppError{Code: "INVALID_FORMAT", Message: "Invalid data format", StatusCode: http.StatusBadRequest}
)

// Fund errors.
var (
	ErrFundNotFound = &AppError{Code: "FUND_NOT_FOUND", Message: "Fund not found", StatusCode: http.StatusNotFound}
)

// Investor errors.
var (
	ErrInvestorNotFound = &AppError{Code: "INVESTOR_NOT_FOUND", Message: "Investor not found", StatusCode: http.StatusNotFound}
	ErrDuplicateEmail   = &AppError{Code: "DUPLICATE_RECORD", Message: "An investor with this email already exists", StatusCode: http.StatusConflict}
)

// Investment errors.
var (
	ErrInvestmentNotFound = &AppError{Code: "INVESTMENT_NOT_FOUND", Message: "Investment not found", StatusCode: http.StatusNotFound}
)
