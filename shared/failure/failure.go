package failure

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a Failure beyond its HTTP status code, so callers can
// distinguish e.g. an invalid transition from a plain validation error
// without parsing messages.
type Kind string

const (
	KindValidation        Kind = "validation"
	KindUnauthorized      Kind = "unauthorized"
	KindForbidden         Kind = "forbidden"
	KindNotFound          Kind = "not_found"
	KindInvalidTransition Kind = "invalid_transition"
	KindInvalidState      Kind = "invalid_state"
	KindConflict          Kind = "conflict"
	KindDependency        Kind = "dependency"
	KindInternal          Kind = "internal"
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
type Failure struct {
	Kind    Kind   `json:"kind"`
	Code    int    `json:"code"`
	Message string `json:"message"`
}

var ForbiddenError = &Failure{Kind: KindForbidden, Code: http.StatusForbidden, Message: "You don't have the required permissions"}

// Error returns the failure message.
func (e *Failure) Error() string {
	return e.Message
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Kind:    KindValidation,
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Kind:    KindValidation,
		Code:    http.StatusBadRequest,
		Message: msg,
	}
}

// Unauthorized returns a new Failure with code for unauthenticated requests.
func Unauthorized(msg string) error {
	return &Failure{
		Kind:    KindUnauthorized,
		Code:    http.StatusUnauthorized,
		Message: msg,
	}
}

// Forbidden returns a new Failure for authenticated callers lacking permission.
func Forbidden(msg string) error {
	return &Failure{
		Kind:    KindForbidden,
		Code:    http.StatusForbidden,
		Message: msg,
	}
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(entityName string) error {
	return &Failure{
		Kind:    KindNotFound,
		Code:    http.StatusNotFound,
		Message: entityName,
	}
}

// InvalidTransition returns a new Failure for a status change the transition
// table does not permit.
func InvalidTransition(current, requested string) error {
	return &Failure{
		Kind:    KindInvalidTransition,
		Code:    http.StatusUnprocessableEntity,
		Message: fmt.Sprintf("cannot change reservation status from %q to %q", current, requested),
	}
}

// InvalidState returns a new Failure for an operation that is valid in general
// but not in the entity's current state.
func InvalidState(msg string) error {
	return &Failure{
		Kind:    KindInvalidState,
		Code:    http.StatusConflict,
		Message: msg,
	}
}

// Conflict returns a new Failure for a lost concurrent-mutation race.
func Conflict(message string) error {
	return &Failure{
		Kind:    KindConflict,
		Code:    http.StatusConflict,
		Message: message,
	}
}

// Dependency returns a new Failure for a downstream store or sink error.
func Dependency(err error) error {
	if err != nil {
		return &Failure{
			Kind:    KindDependency,
			Code:    http.StatusBadGateway,
			Message: err.Error(),
		}
	}

	return nil
}

// InternalError returns a new Failure with code for internal error and message derived from an error interface.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Kind:    KindInternal,
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
		}
	}

	return nil
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// KindOf returns the failure kind of an error interface.
func KindOf(err error) Kind {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Kind
	}

	return KindInternal
}
