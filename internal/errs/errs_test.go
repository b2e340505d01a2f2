package errs

import (
	"errors"
	"fmt"
	"testing"

	"pgregory.net/rapid"
)

var allCodes = []Code{
	Capacity,
	NotFound,
	MalformedInput,
	IOFailure,
	AccessDenied,
	Internal,
}

func testCodeOf_RoundtripForTypedErrors(t *rapid.T) {
	code := rapid.SampledFrom(allCodes).Draw(t, "code")
	message := rapid.StringMatching(`[a-zA-Z0-9 _!\-]{1,80}`).Draw(t, "message")

	err := New(code, message)
	if got := CodeOf(err); got != code {
		t.Fatalf("CodeOf(New) mismatch: got=%q want=%q", got, code)
	}
	if got := MessageOf(err); got != message {
		t.Fatalf("MessageOf(New) mismatch: got=%q want=%q", got, message)
	}
}

func TestCodeOf_RoundtripForTypedErrors(t *testing.T) {
	t.Parallel()
	rapid.Check(t, testCodeOf_RoundtripForTypedErrors)
}

func testCodeOfAndMessageOf_WrappedTypedError(t *rapid.T) {
	code := rapid.SampledFrom(allCodes).Draw(t, "code")
	message := rapid.StringMatching(`[a-zA-Z0-9 _!\-]{1,80}`).Draw(t, "message")
	cause := errors.New(rapid.StringMatching(`[a-zA-Z0-9 _\-]{1,80}`).Draw(t, "cause"))

	err := Wrap(code, message, cause)
	wrapped := fmt.Errorf("outer: %w", err)

	if got := CodeOf(wrapped); got != code {
		t.Fatalf("CodeOf(wrapped) mismatch: got=%q want=%q", got, code)
	}
	if got := MessageOf(wrapped); got != message {
		t.Fatalf("MessageOf(wrapped) mismatch: got=%q want=%q", got, message)
	}
	if !errors.Is(wrapped, cause) {
		t.Fatalf("wrapped error lost its cause")
	}
}

func TestCodeOfAndMessageOf_WrappedTypedError(t *testing.T) {
	t.Parallel()
	rapid.Check(t, testCodeOfAndMessageOf_WrappedTypedError)
}

func TestUntypedAndNilFallbacks(t *testing.T) {
	untyped := errors.New("boom")

	if got := CodeOf(untyped); got != Internal {
		t.Errorf("CodeOf(untyped) = %q, want %q", got, Internal)
	}
	if got := MessageOf(untyped); got != "internal error" {
		t.Errorf("MessageOf(untyped) = %q, want %q", got, "internal error")
	}
	if got := MessageOf(nil); got != "internal error" {
		t.Errorf("MessageOf(nil) = %q, want %q", got, "internal error")
	}
	if got := CodeOf(nil); got != Internal {
		t.Errorf("CodeOf(nil) = %q, want %q", got, Internal)
	}
	if Is(nil, Internal) {
		t.Error("Is(nil, Internal) should be false")
	}
}

func TestIsWarning(t *testing.T) {
	if !IsWarning(Wrap(IOFailure, "Error saving tasks", errors.New("permission denied"))) {
		t.Error("IOFailure should be a warning")
	}
	if IsWarning(ErrTaskListFull) {
		t.Error("Capacity should not be a warning")
	}
}

func TestErrorStringIncludesCause(t *testing.T) {
	err := Wrap(IOFailure, "Error saving tasks", errors.New("read-only file system"))
	want := "Error saving tasks: read-only file system"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
