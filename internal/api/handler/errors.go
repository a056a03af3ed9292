package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/famousguessr/famousguessr-go/internal/api/apierr"
	"github.com/famousguessr/famousguessr-go/internal/api/request"
)

// Re-export from apierr for convenience
type ErrorResponse = apierr.ErrorResponse

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	apierr.WriteError(w, err)
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return apierr.NewInvalidRequestError(message)
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return apierr.NewInternalError()
}

var validate = validator.New()

// decodeJSON decodes the request body into dst and runs struct validation.
// The returned error is already an API error suitable for WriteError.
func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apierr.NewInvalidRequestError("Invalid JSON body")
	}
	if err := validate.Struct(dst); err != nil {
		return apierr.NewInvalidRequestError(request.ValidationMessage(err))
	}
	return nil
}
