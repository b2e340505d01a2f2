// Package exitcode defines exit codes for the CLI.
package exitcode

import "todolist/internal/errs"

const (
	// Success indicates successful completion, including runs whose save
	// failed with a warning.
	Success = 0

	// UserError indicates a user error (bad args, not found, list full).
	UserError = 1

	// AccessDenied indicates the password did not match.
	AccessDenied = 2

	// StorageError indicates the data directory or a backing file could
	// not be read or written.
	StorageError = 3
)

// For maps an error to the exit code a command returns for it.
func For(err error) int {
	if err == nil {
		return Success
	}
	switch errs.CodeOf(err) {
	case errs.Capacity, errs.NotFound, errs.MalformedInput:
		return UserError
	case errs.AccessDenied:
		return AccessDenied
	default:
		return StorageError
	}
}
