package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mcoot/minisudoku-go/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest  = "INVALID_REQUEST"
	CodeInvalidInput    = "INVALID_INPUT"
	CodeInvalidPosition = "INVALID_POSITION"
	CodeInvalidValue    = "INVALID_VALUE"
	CodeUsernameTaken   = "USERNAME_TAKEN"
	CodeUnknownUser     = "UNKNOWN_USER"
	CodeWrongPassword   = "WRONG_PASSWORD"
	CodeNotLoggedIn     = "NOT_LOGGED_IN"
	CodeAlreadyLoggedIn = "ALREADY_LOGGED_IN"
	CodeGameFinished    = "GAME_FINISHED"
	CodeCorruptData     = "CORRUPT_DATA"
	CodeStorageError    = "STORAGE_ERROR"
	CodeNotFound        = "NOT_FOUND"
	CodeInternalError   = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// Status returns the HTTP status err maps to
func Status(err error) int {
	return toHTTPError(err).status
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	switch {
	case errors.Is(err, model.ErrInvalidInput):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidInput, "Please enter both username and password"}}
	case errors.Is(err, model.ErrInvalidPosition):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidPosition, "Row and column must be between 0 and 2"}}
	case errors.Is(err, model.ErrInvalidValue):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidValue, "Value must be between 0 and 3"}}
	case errors.Is(err, model.ErrUsernameTaken):
		return &httpError{http.StatusConflict, APIError{CodeUsernameTaken, "Username already exists"}}
	case errors.Is(err, model.ErrUnknownUser):
		return &httpError{http.StatusNotFound, APIError{CodeUnknownUser, "Incorrect username"}}
	case errors.Is(err, model.ErrWrongPassword):
		return &httpError{http.StatusUnauthorized, APIError{CodeWrongPassword, "Incorrect password"}}
	case errors.Is(err, model.ErrNotLoggedIn):
		return &httpError{http.StatusUnauthorized, APIError{CodeNotLoggedIn, "Nobody is logged in"}}
	case errors.Is(err, model.ErrAlreadyLoggedIn):
		return &httpError{http.StatusConflict, APIError{CodeAlreadyLoggedIn, "A user is already logged in"}}
	case errors.Is(err, model.ErrGameFinished):
		return &httpError{http.StatusConflict, APIError{CodeGameFinished, "Puzzle already solved, reset to play again"}}
	case errors.Is(err, model.ErrCorruptData):
		return &httpError{http.StatusInternalServerError, APIError{CodeCorruptData, "Stored data is corrupt"}}
	case errors.Is(err, model.ErrPersistence):
		return &httpError{http.StatusServiceUnavailable, APIError{CodeStorageError, "Storage is unavailable, please try again"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewNotFoundError creates a not found error
func NewNotFoundError() error {
	return &httpError{http.StatusNotFound, APIError{CodeNotFound, "Not found"}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
