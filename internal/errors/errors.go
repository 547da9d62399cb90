package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrInvalidToken is returned when a session token fails verification.
	ErrInvalidToken = errors.New("invalid token")
	// ErrUserNotFound is returned when a user lookup comes up empty.
	ErrUserNotFound = errors.New("user does not exist")
	// ErrInvalidPassword is returned when login credentials do not match.
	ErrInvalidPassword = errors.New("invalid password")
	// ErrNotFound is returned when a podcast or comment is absent.
	ErrNotFound = errors.New("resource not found")
	// ErrForbidden is returned when the caller lacks rights on an existing resource.
	ErrForbidden = errors.New("forbidden")
	// ErrConflict is returned when a username or email is already taken.
	ErrConflict = errors.New("username or email already exists")
	// ErrInvalidAction is returned when a toggle action does not match the current state.
	ErrInvalidAction = errors.New("invalid action for current state")
	// ErrCurrentPasswordInvalid is returned when the current password check fails on change-password.
	ErrCurrentPasswordInvalid = errors.New("current password is incorrect")
	// ErrTokenExpired is returned when a password reset token is past its expiry.
	ErrTokenExpired = errors.New("reset token has expired")
	// ErrTokenInvalid is returned when a password reset token is unknown or already used.
	ErrTokenInvalid = errors.New("reset token is invalid")
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

// MapErrorToHTTP maps domain errors to HTTP errors. Domain outcomes are
// passed through verbatim; anything unrecognized is an internal error.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrInvalidToken):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_TOKEN")
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrInvalidPassword):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_PASSWORD")
	case errors.Is(err, ErrNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "NOT_FOUND")
	case errors.Is(err, ErrForbidden):
		return NewHTTPError(http.StatusForbidden, err.Error(), "FORBIDDEN")
	case errors.Is(err, ErrConflict):
		return NewHTTPError(http.StatusConflict, err.Error(), "CONFLICT")
	case errors.Is(err, ErrInvalidAction):
		return NewHTTPError(http.StatusConflict, err.Error(), "INVALID_ACTION")
	case errors.Is(err, ErrCurrentPasswordInvalid):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "CURRENT_PASSWORD_INVALID")
	case errors.Is(err, ErrTokenExpired):
		return NewHTTPError(http.StatusGone, err.Error(), "TOKEN_EXPIRED")
	case errors.Is(err, ErrTokenInvalid):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "TOKEN_INVALID")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
