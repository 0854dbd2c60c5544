package pswmerr

import (
	"errors"
	"fmt"
	"testing"
)

func TestIsMatchesKind(t *testing.T) {
	err := New(WrongPassword)
	if !Is(err, WrongPassword) {
		t.Errorf("Is(WrongPassword) = false, want true")
	}
	if Is(err, MacError) {
		t.Errorf("Is(MacError) = true, want false")
	}
}

func TestIsThroughWrapping(t *testing.T) {
	cause := errors.New("disk full")
	err := fmt.Errorf("flush failed: %w", Wrap(WriteFile, cause))

	if !Is(err, WriteFile) {
		t.Errorf("Is() did not see through fmt.Errorf wrapping")
	}
}

func TestUnwrapReturnsCause(t *testing.T) {
	cause := errors.New("boom")
	err := Wrap(TruncateFile, cause)

	if !errors.Is(err, cause) {
		t.Errorf("errors.Is(err, cause) = false, want true")
	}
}

func TestErrorStringIncludesCause(t *testing.T) {
	cause := errors.New("permission denied")
	err := Wrap(OpenFile, cause)

	got := err.Error()
	want := "open file: permission denied"
	if got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestErrorStringWithoutCause(t *testing.T) {
	err := New(WrongPassword)
	if err.Error() != "wrong password" {
		t.Errorf("Error() = %q, want %q", err.Error(), "wrong password")
	}
}
