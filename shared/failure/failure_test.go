package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"localmarket/shared/failure"
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

func TestPredefinedFailures(t *testing.T) {
	tests := []struct {
		name    string
		failure *failure.Failure
		code    int
		message string
	}{
		{
			name:    "ErrMissingToken",
			failure: failure.ErrMissingToken,
			code:    http.StatusUnauthorized,
			message: "Access token required",
		},
		{
			name:    "ErrInvalidCredentials",
			failure: failure.ErrInvalidCredentials,
			code:    http.StatusUnauthorized,
			message: "Invalid credentials",
		},
		{
			name:    "ErrVendorOnly",
			failure: failure.ErrVendorOnly,
			code:    http.StatusForbidden,
			message: "Only vendors can perform this action",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.failure.Code != tt.code {
				t.Errorf("expected code to be %d, got %d", tt.code, tt.failure.Code)
			}
			if tt.failure.Message != tt.message {
				t.Errorf("expected message to be %s, got %s", tt.message, tt.failure.Message)
			}
		})
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{name: "BadRequest", err: failure.BadRequest(errors.New("bad")), code: http.StatusBadRequest},
		{name: "BadRequestFromString", err: failure.BadRequestFromString("bad"), code: http.StatusBadRequest},
		{name: "Unauthorized", err: failure.Unauthorized("nope"), code: http.StatusUnauthorized},
		{name: "Forbidden", err: failure.Forbidden("nope"), code: http.StatusForbidden},
		{name: "NotFound", err: failure.NotFound("thing not found"), code: http.StatusNotFound},
		{name: "Conflict", err: failure.Conflict("already exists"), code: http.StatusConflict},
		{name: "InternalError", err: failure.InternalError(errors.New("boom")), code: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := failure.GetCode(tt.err); got != tt.code {
				t.Errorf("expected code to be %d, got %d", tt.code, got)
			}
		})
	}
}

func TestGetCode_WrappedAndUnknown(t *testing.T) {
	wrapped := fmt.Errorf("context: %w", failure.NotFound("booking not found"))
	if got := failure.GetCode(wrapped); got != http.StatusNotFound {
		t.Errorf("expected wrapped failure to keep code %d, got %d", http.StatusNotFound, got)
	}

	if got := failure.GetCode(errors.New("plain")); got != http.StatusInternalServerError {
		t.Errorf("expected plain error to map to %d, got %d", http.StatusInternalServerError, got)
	}
}

func TestNilConstructors(t *testing.T) {
	if failure.BadRequest(nil) != nil {
		t.Error("expected BadRequest(nil) to be nil")
	}
	if failure.InternalError(nil) != nil {
		t.Error("expected InternalError(nil) to be nil")
	}
}
