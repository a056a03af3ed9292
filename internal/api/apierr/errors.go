package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/famousguessr/famousguessr-go/internal/model"
	"github.com/famousguessr/famousguessr-go/internal/services/auth"
)

// ErrorResponse is the error envelope shared by all endpoints
type ErrorResponse struct {
	Success bool   `json:"success"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Common error codes
const (
	CodeInvalidRequest          = "INVALID_REQUEST"
	CodeUnauthorized            = "UNAUTHORIZED"
	CodeForbidden               = "FORBIDDEN"
	CodeInvalidCredentials      = "INVALID_CREDENTIALS"
	CodeEmailTaken              = "EMAIL_TAKEN"
	CodeUsernameTaken           = "USERNAME_TAKEN"
	CodeInvalidRole             = "INVALID_ROLE"
	CodeInvalidDifficulty       = "INVALID_DIFFICULTY"
	CodeInvalidBirthYear        = "INVALID_BIRTH_YEAR"
	CodeInvalidStatus           = "INVALID_STATUS"
	CodeUserNotFound            = "USER_NOT_FOUND"
	CodeCelebrityNotFound       = "CELEBRITY_NOT_FOUND"
	CodeScoreNotFound           = "SCORE_NOT_FOUND"
	CodeRequestNotFound         = "REQUEST_NOT_FOUND"
	CodeAlreadyPremium          = "ALREADY_PREMIUM"
	CodePendingRequestExists    = "PENDING_REQUEST_EXISTS"
	CodeRequestAlreadyProcessed = "REQUEST_ALREADY_PROCESSED"
	CodeInternalError           = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an error envelope
type httpError struct {
	status  int
	code    string
	message string
}

// Error implements the error interface
func (e *httpError) Error() string {
	return e.message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{
		Success: false,
		Code:    he.code,
		Message: he.message,
	})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Conflict-like business errors are 400s with a descriptive message,
	// matching the rest of the validation taxonomy
	switch {
	case errors.Is(err, model.ErrEmailTaken):
		return &httpError{http.StatusBadRequest, CodeEmailTaken, "Email already registered"}
	case errors.Is(err, model.ErrUsernameTaken):
		return &httpError{http.StatusBadRequest, CodeUsernameTaken, "Username already taken"}
	case errors.Is(err, model.ErrInvalidRole):
		return &httpError{http.StatusBadRequest, CodeInvalidRole, "Role must be player, premium-player or admin"}
	case errors.Is(err, model.ErrInvalidDifficulty):
		return &httpError{http.StatusBadRequest, CodeInvalidDifficulty, "Difficulty must be normal, hard or duo"}
	case errors.Is(err, model.ErrInvalidBirthYear):
		return &httpError{http.StatusBadRequest, CodeInvalidBirthYear, "birthYear must be between 1800 and the current year"}
	case errors.Is(err, model.ErrInvalidStatus):
		return &httpError{http.StatusBadRequest, CodeInvalidStatus, "Status must be either approved or rejected"}
	case errors.Is(err, model.ErrAlreadyPremium):
		return &httpError{http.StatusBadRequest, CodeAlreadyPremium, "You already have premium access"}
	case errors.Is(err, model.ErrPendingRequestExists):
		return &httpError{http.StatusBadRequest, CodePendingRequestExists, "You already have a pending premium request"}
	case errors.Is(err, model.ErrRequestAlreadyProcessed):
		return &httpError{http.StatusBadRequest, CodeRequestAlreadyProcessed, "This request has already been processed"}

	case errors.Is(err, model.ErrUserNotFound):
		return &httpError{http.StatusNotFound, CodeUserNotFound, "User not found"}
	case errors.Is(err, model.ErrCelebrityNotFound):
		return &httpError{http.StatusNotFound, CodeCelebrityNotFound, "Celebrity not found"}
	case errors.Is(err, model.ErrScoreNotFound):
		return &httpError{http.StatusNotFound, CodeScoreNotFound, "Score not found"}
	case errors.Is(err, model.ErrRequestNotFound):
		return &httpError{http.StatusNotFound, CodeRequestNotFound, "Premium request not found"}

	case errors.Is(err, auth.ErrInvalidCredentials):
		return &httpError{http.StatusUnauthorized, CodeInvalidCredentials, "Invalid credentials"}
	case errors.Is(err, auth.ErrInvalidToken):
		return &httpError{http.StatusUnauthorized, CodeUnauthorized, "Invalid or expired token"}

	default:
		return &httpError{http.StatusInternalServerError, CodeInternalError, "Internal server error"}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, CodeInvalidRequest, message}
}

// NewUnauthorizedError creates an unauthorized error
func NewUnauthorizedError() error {
	return &httpError{http.StatusUnauthorized, CodeUnauthorized, "Authentication required"}
}

// NewForbiddenError creates a forbidden error for insufficient roles
func NewForbiddenError() error {
	return &httpError{http.StatusForbidden, CodeForbidden, "Insufficient permissions"}
}

// NewInternalError creates a generic internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, CodeInternalError, "Internal server error"}
}
