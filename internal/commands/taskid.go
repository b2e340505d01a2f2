package commands

import (
	"errors"
	"fmt"
	"strconv"
	"unicode"

	"todolist/internal/errs"
)

// ErrTaskIDRequired indicates no task id was provided.
var ErrTaskIDRequired = errs.New(errs.MalformedInput, "task id required")

// ParseTaskID parses the task id from args. The first argument must be
// all digits; anything after it is an error.
func ParseTaskID(args []string) (int, error) {
	if len(args) == 0 {
		return 0, ErrTaskIDRequired
	}
	if len(args) > 1 {
		return 0, errs.New(errs.MalformedInput, fmt.Sprintf("unexpected argument: %s", args[1]))
	}

	if !isAllDigits(args[0]) {
		return 0, errs.New(errs.MalformedInput, fmt.Sprintf("invalid task id: %s", args[0]))
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return 0, errs.Wrap(errs.MalformedInput, fmt.Sprintf("task id out of range: %s", args[0]), err)
		}
		return 0, errs.Wrap(errs.MalformedInput, fmt.Sprintf("invalid task id: %s", args[0]), err)
	}
	return id, nil
}

// isAllDigits returns true if s consists only of ASCII digits and is non-empty.
func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r > unicode.MaxASCII || !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
