package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrInvalidCredentials is returned for both unknown email and wrong
	// password so login failures carry no enumeration signal.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrEmailTaken is returned when signup reuses a registered email.
	ErrEmailTaken = errors.New("email already registered")
	// ErrCompanyNotFound is returned when the caller owns no company profile.
	ErrCompanyNotFound = errors.New("company not found")
	// ErrCompanyExists is returned when the caller already owns a company.
	ErrCompanyExists = errors.New("company already exists for this user")
	// ErrTenderNotFound is returned when a proposal references a missing tender.
	ErrTenderNotFound = errors.New("tender not found")
	// ErrInvalidDeadline is returned when a tender deadline cannot be parsed.
	ErrInvalidDeadline = errors.New("invalid deadline, expected YYYY-MM-DD or RFC 3339")
	// ErrInvalidBudget is returned when a budget is zero or negative.
	ErrInvalidBudget = errors.New("budget must be greater than zero")
	// ErrStorageNotConfigured is returned when logo storage is not set up.
	ErrStorageNotConfigured = errors.New("object storage is not configured")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Anything unrecognized
// is a 500 with a generic message; internal detail never reaches the wire.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrEmailTaken):
		return NewHTTPError(http.StatusConflict, err.Error(), "EMAIL_TAKEN")
	case errors.Is(err, ErrCompanyNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "COMPANY_NOT_FOUND")
	case errors.Is(err, ErrCompanyExists):
		return NewHTTPError(http.StatusConflict, err.Error(), "COMPANY_EXISTS")
	case errors.Is(err, ErrTenderNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "TENDER_NOT_FOUND")
	case errors.Is(err, ErrInvalidDeadline):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_DEADLINE")
	case errors.Is(err, ErrInvalidBudget):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_BUDGET")
	case errors.Is(err, ErrStorageNotConfigured):
		return NewHTTPError(http.StatusInternalServerError, err.Error(), "STORAGE_NOT_CONFIGURED")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
