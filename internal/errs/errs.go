// Package errs defines the coded error taxonomy shared by the stores, the
// access gate and the commands.
package errs

import "errors"

// Code is an application error code.
type Code string

const (
	// Capacity means a store is full; nothing was mutated.
	Capacity Code = "capacity"
	// NotFound means an id or filter matched nothing; nothing was mutated.
	NotFound Code = "not_found"
	// MalformedInput means operator input had the wrong type or shape.
	MalformedInput Code = "malformed_input"
	// IOFailure means a backing file could not be read or written.
	// A failed save is a warning: the in-memory state is kept.
	IOFailure Code = "io_failure"
	// AccessDenied means the password did not match. Fatal.
	AccessDenied Code = "access_denied"
	// Internal is the fallback for untyped errors.
	Internal Code = "internal"
)

// Sentinel errors reported by the stores.
var (
	ErrTaskListFull = New(Capacity, "Task list is full!")
	ErrNoteListFull = New(Capacity, "Note list is full!")
	ErrNoTasks      = New(NotFound, "No tasks available!")
	ErrNoNotes      = New(NotFound, "No notes available!")
)

// Error is a coded application error.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Message != "" {
		if e.Err != nil {
			return e.Message + ": " + e.Err.Error()
		}
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return string(e.Code)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// New creates a coded error with message.
func New(code Code, message string) error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Wrap creates a coded error with message and cause.
func Wrap(code Code, message string, cause error) error {
	return &Error{
		Code:    code,
		Message: message,
		Err:     cause,
	}
}

// CodeOf returns the error code, defaulting to internal.
func CodeOf(err error) Code {
	if err == nil {
		return Internal
	}
	var coded *Error
	if errors.As(err, &coded) {
		if coded.Code == "" {
			return Internal
		}
		return coded.Code
	}
	return Internal
}

// MessageOf returns the operator-facing message of the outermost coded error,
// without its cause. Untyped and nil errors yield "internal error".
func MessageOf(err error) string {
	if err == nil {
		return "internal error"
	}
	var coded *Error
	if errors.As(err, &coded) {
		if coded.Message != "" {
			return coded.Message
		}
		return string(coded.Code)
	}
	return "internal error"
}

// Is reports whether err carries the given code.
func Is(err error, code Code) bool {
	return err != nil && CodeOf(err) == code
}

// IsWarning reports whether err is a non-fatal persistence failure that
// left the in-memory mutation in place.
func IsWarning(err error) bool {
	return Is(err, IOFailure)
}
