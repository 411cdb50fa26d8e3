package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrKlientNotFound is returned when a client record is not found.
	ErrKlientNotFound = errors.New("klient not found")
	// ErrToodeNotFound is returned when a product record is not found.
	ErrToodeNotFound = errors.New("toode not found")
	// ErrLepingNotFound is returned when a contract record is not found.
	ErrLepingNotFound = errors.New("leping not found")
	// ErrTootajaNotFound is returned when an employee record is not found.
	ErrTootajaNotFound = errors.New("tootaja not found")
	// ErrInvalidLeping is returned when contract dates or prices are invalid.
	ErrInvalidLeping = errors.New("invalid leping")
	// ErrInvalidStatus is returned when a klient status value is not in the enum.
	ErrInvalidStatus = errors.New("invalid status")
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

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrKlientNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "KLIENT_NOT_FOUND")
	case errors.Is(err, ErrToodeNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "TOODE_NOT_FOUND")
	case errors.Is(err, ErrLepingNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "LEPING_NOT_FOUND")
	case errors.Is(err, ErrTootajaNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "TOOTAJA_NOT_FOUND")
	case errors.Is(err, ErrInvalidLeping):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_LEPING")
	case errors.Is(err, ErrInvalidStatus):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_STATUS")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
