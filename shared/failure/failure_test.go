package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"queueup/shared/failure"
	"testing"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: "test error message",
	}

	if f.Error() != "test error message" {
		t.Errorf("expected error message to be 'test error message', got %s", f.Error())
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind failure.Kind
		code int
	}{
		{
			name: "BadRequestFromString",
			err:  failure.BadRequestFromString("invalid payload"),
			kind: failure.KindValidation,
			code: http.StatusBadRequest,
		},
		{
			name: "Unauthorized",
			err:  failure.Unauthorized("missing token"),
			kind: failure.KindUnauthorized,
			code: http.StatusUnauthorized,
		},
		{
			name: "Forbidden",
			err:  failure.Forbidden("not yours"),
			kind: failure.KindForbidden,
			code: http.StatusForbidden,
		},
		{
			name: "NotFound",
			err:  failure.NotFound("reservation not found"),
			kind: failure.KindNotFound,
			code: http.StatusNotFound,
		},
		{
			name: "InvalidTransition",
			err:  failure.InvalidTransition("pending", "completed"),
			kind: failure.KindInvalidTransition,
			code: http.StatusUnprocessableEntity,
		},
		{
			name: "InvalidState",
			err:  failure.InvalidState("reservation is not completed"),
			kind: failure.KindInvalidState,
			code: http.StatusConflict,
		},
		{
			name: "Conflict",
			err:  failure.Conflict("concurrent modification"),
			kind: failure.KindConflict,
			code: http.StatusConflict,
		},
		{
			name: "Dependency",
			err:  failure.Dependency(errors.New("broker unreachable")),
			kind: failure.KindDependency,
			code: http.StatusBadGateway,
		},
		{
			name: "InternalError",
			err:  failure.InternalError(errors.New("boom")),
			kind: failure.KindInternal,
			code: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if failure.KindOf(tt.err) != tt.kind {
				t.Errorf("expected kind %s, got %s", tt.kind, failure.KindOf(tt.err))
			}

			if failure.GetCode(tt.err) != tt.code {
				t.Errorf("expected code %d, got %d", tt.code, failure.GetCode(tt.err))
			}
		})
	}
}

func TestNilErrorConstructors(t *testing.T) {
	if failure.BadRequest(nil) != nil {
		t.Error("expected BadRequest(nil) to be nil")
	}

	if failure.Dependency(nil) != nil {
		t.Error("expected Dependency(nil) to be nil")
	}

	if failure.InternalError(nil) != nil {
		t.Error("expected InternalError(nil) to be nil")
	}
}

func TestGetCode_WrappedError(t *testing.T) {
	wrapped := fmt.Errorf("failed to update reservation: %w", failure.Conflict("lost the race"))

	if failure.GetCode(wrapped) != http.StatusConflict {
		t.Errorf("expected wrapped failure code to survive, got %d", failure.GetCode(wrapped))
	}

	if failure.KindOf(wrapped) != failure.KindConflict {
		t.Errorf("expected wrapped failure kind to survive, got %s", failure.KindOf(wrapped))
	}
}

func TestGetCode_PlainError(t *testing.T) {
	if failure.GetCode(errors.New("plain")) != http.StatusInternalServerError {
		t.Error("expected plain errors to map to internal server error")
	}

	if failure.KindOf(errors.New("plain")) != failure.KindInternal {
		t.Error("expected plain errors to map to the internal kind")
	}
}

func TestInvalidTransitionMessage(t *testing.T) {
	err := failure.InvalidTransition("completed", "cancelled")

	expected := `cannot change reservation status from "completed" to "cancelled"`
	if err.Error() != expected {
		t.Errorf("expected %s, got %s", expected, err.Error())
	}
}
