package errors

import (
	"fmt"
	"strings"
	"testing"
)

func TestErrorCreation(t *testing.T) {
	err := New("test", "test message", nil)
	if err.Type != "test" || err.Message != "test message" {
		t.Errorf("New() created incorrect error: %v", err)
	}

	cause := fmt.Errorf("original error")
	err = New("test", "test with cause", cause)
	if err.Cause != cause {
		t.Errorf("New() did not set cause correctly: %v", err)
	}

	expected := "test: test with cause: original error"
	if err.Error() != expected {
		t.Errorf("Error() = %q, want %q", err.Error(), expected)
	}
}

func TestErrorTypeChecking(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"snapshot", SnapshotFailed("list processes", nil), ErrTypeSnapshot},
		{"self missing", SelfProcessNotFound(42), ErrTypeSnapshot},
		{"handle", HandleAcquisitionFailed(9999, fmt.Errorf("gone")), ErrTypeHandle},
		{"primitive", PrimitiveFailed("suspend", 20, fmt.Errorf("denied")), ErrTypePrimitive},
		{"invalid pid", InvalidPID(-1), ErrTypeInvalidArg},
		{"still paused", TargetStillPaused(20), ErrTypeState},
		{"config", ConfigInvalid("launchers", nil), ErrTypeConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !Is(tt.err, tt.want) {
				t.Errorf("Is(%v, %q) = false", tt.err, tt.want)
			}
		})
	}

	if Is(fmt.Errorf("plain"), ErrTypeHandle) {
		t.Errorf("Is() matched an error without AppError")
	}

	wrapped := fmt.Errorf("toggle: %w", HandleAcquisitionFailed(1, nil))
	if !Is(wrapped, ErrTypeHandle) {
		t.Errorf("Is() failed to see AppError through fmt wrapping")
	}
	if Is(nil, ErrTypeHandle) {
		t.Errorf("Is(nil) should be false")
	}
}

func TestIsMatchesInnerAppError(t *testing.T) {
	err := fmt.Errorf("pause: %w", HandleAcquisitionFailed(0, InvalidPID(0)))

	if !Is(err, ErrTypeHandle) {
		t.Errorf("Is() missed the outer handle error")
	}
	if !Is(err, ErrTypeInvalidArg) {
		t.Errorf("Is() missed the invalid pid cause")
	}
	if Is(err, ErrTypePrimitive) {
		t.Errorf("Is() matched a type absent from the chain")
	}
}

func TestRootCause(t *testing.T) {
	innermost := fmt.Errorf("innermost error")
	inner := PrimitiveFailed("suspend", 20, innermost)
	outer := fmt.Errorf("outer: %w", inner)

	if root := RootCause(outer); root != innermost {
		t.Errorf("RootCause() did not return innermost error")
	}
	if RootCause(nil) != nil {
		t.Errorf("RootCause(nil) should be nil")
	}
}

func TestFormatErrorChain(t *testing.T) {
	if got := FormatErrorChain(nil); got != "<nil>" {
		t.Errorf("FormatErrorChain(nil) = %q", got)
	}

	err := PrimitiveFailed("resume", 7, fmt.Errorf("no such process"))
	out := FormatErrorChain(err)
	if !strings.Contains(out, "Stack Trace:") || !strings.Contains(out, "Caused by: no such process") {
		t.Errorf("FormatErrorChain() = %q", out)
	}
}
