package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidInput, "n must be positive, got %d", -3)

	if got, want := err.Error(), "INVALID_INPUT: n must be positive, got -3"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !Is(err, ErrCodeInvalidInput) {
		t.Error("Is(err, ErrCodeInvalidInput) = false, want true")
	}
	if Is(err, ErrCodeInternal) {
		t.Error("Is(err, ErrCodeInternal) = true, want false")
	}
}

func TestWrap(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := Wrap(ErrCodeStore, cause, "save report %s", "r1")

	if !stderrors.Is(err, cause) {
		t.Error("wrapped error does not match cause via errors.Is")
	}
	if got := GetCode(err); got != ErrCodeStore {
		t.Errorf("GetCode() = %q, want %q", got, ErrCodeStore)
	}
	if got, want := err.Error(), "STORE_ERROR: save report r1: connection refused"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestWrappedThroughFmt(t *testing.T) {
	inner := New(ErrCodeInvalidRange, "max must be at least 1")
	outer := fmt.Errorf("sweep: %w", inner)

	if !Is(outer, ErrCodeInvalidRange) {
		t.Error("Is() did not find code through fmt.Errorf wrapping")
	}
	if got := UserMessage(outer); got != "max must be at least 1" {
		t.Errorf("UserMessage() = %q", got)
	}
}

func TestGetCodePlainError(t *testing.T) {
	if got := GetCode(stderrors.New("plain")); got != "" {
		t.Errorf("GetCode(plain error) = %q, want empty", got)
	}
	if got := UserMessage(stderrors.New("plain")); got != "plain" {
		t.Errorf("UserMessage(plain error) = %q, want \"plain\"", got)
	}
}
