package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/phrazzld/todo-api/internal/api/middleware"
	"github.com/phrazzld/todo-api/internal/api/shared"
	"github.com/phrazzld/todo-api/internal/domain"
	"github.com/phrazzld/todo-api/internal/service"
	"github.com/phrazzld/todo-api/internal/service/auth"
	"github.com/phrazzld/todo-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Malformed bodies
	case errors.Is(err, shared.ErrMalformedRequest):
		return http.StatusBadRequest

	// Validation errors, including failed logins and taken emails
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, store.ErrEmailExists):
		return http.StatusUnprocessableEntity

	// Authentication errors
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrTokenRevoked),
		errors.Is(err, auth.ErrMissingToken):
		return http.StatusUnauthorized

	// Not found errors
	case errors.Is(err, service.ErrTaskNotFound),
		errors.Is(err, store.ErrTaskNotFound):
		return http.StatusNotFound

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return MsgUnexpectedError
	}

	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		return verr.Summary()
	case errors.Is(err, shared.ErrMalformedRequest):
		return MsgInvalidRequest
	case errors.Is(err, auth.ErrInvalidCredentials):
		return MsgInvalidCredentials
	case errors.Is(err, store.ErrEmailExists):
		return MsgEmailTaken
	case errors.Is(err, domain.ErrValidation):
		return "The given data was invalid."
	case MapErrorToStatusCode(err) == http.StatusUnauthorized:
		return middleware.MsgUnauthenticated
	case MapErrorToStatusCode(err) == http.StatusNotFound:
		return "Not found"
	default:
		return MsgUnexpectedError
	}
}

// validationErrorFor returns the field-scoped ValidationError that represents
// err in a 422 response, or nil when err is not a validation failure.
func validationErrorFor(err error) *domain.ValidationError {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		return verr
	case errors.Is(err, auth.ErrInvalidCredentials):
		return domain.NewFieldError("email", MsgInvalidCredentials)
	case errors.Is(err, store.ErrEmailExists):
		return domain.NewFieldError("email", MsgEmailTaken)
	default:
		return nil
	}
}

// HandleAPIError writes the response for err. Not-found errors are written
// as a JSON null body; every other error uses the standard error envelope.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, operation string) {
	if verr := validationErrorFor(err); verr != nil {
		shared.RespondWithValidationError(w, r, verr)
		return
	}

	status := MapErrorToStatusCode(err)
	if status == http.StatusNotFound {
		shared.RespondWithJSON(w, r, http.StatusNotFound, nil)
		return
	}

	shared.RespondWithErrorAndLog(w, r, status, GetSafeErrorMessage(err), fmt.Errorf("%s: %w", operation, err))
}
