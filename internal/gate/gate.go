// Package gate implements the start-up password check.
//
// The password is stored verbatim in its own file and compared byte for
// byte. There is no hashing, retry or lockout; the gate keeps casual
// access out of a single-user data directory and nothing more.
package gate

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"todolist/internal/errs"
)

// MaxPasswordLen is the longest password kept, in bytes.
const MaxPasswordLen = 49

// Prompt labels shown to the operator.
const (
	PromptCreate  = "No password set. Create a new password: "
	PromptEnter   = "Enter password: "
	PromptCurrent = "Current password: "
	PromptNew     = "New password: "
)

// ErrDenied is returned when the entered password does not match.
var ErrDenied = errs.New(errs.AccessDenied, "Incorrect password. Access denied.")

// Asker reads a password from the operator.
type Asker interface {
	ReadSecret(label string) (string, error)
}

// Result describes a granted unlock.
type Result struct {
	// FirstRun is true when no password existed and one was just stored.
	FirstRun bool
}

// Gate guards access with the password file at Path.
type Gate struct {
	path string
	log  *slog.Logger
}

// New returns a Gate for the password file at path.
func New(path string, log *slog.Logger) *Gate {
	return &Gate{path: path, log: log.With("component", "gate")}
}

// Unlock runs the single-shot check. With no stored password it asks for a
// new one, stores it and grants access. Otherwise it asks once and grants
// access only on an exact match; a mismatch returns ErrDenied.
func (g *Gate) Unlock(ask Asker) (Result, error) {
	stored, ok, err := g.stored()
	if err != nil {
		return Result{}, err
	}

	if !ok {
		password, err := read(ask, PromptCreate, "Invalid password.")
		if err != nil {
			return Result{}, err
		}
		if err := g.store(password); err != nil {
			return Result{}, err
		}
		g.log.Info("password created", "path", g.path)
		return Result{FirstRun: true}, nil
	}

	attempt, err := read(ask, PromptEnter, "Invalid input.")
	if err != nil {
		return Result{}, err
	}
	if attempt != stored {
		g.log.Warn("access denied", "path", g.path)
		return Result{}, ErrDenied
	}
	g.log.Debug("access granted")
	return Result{}, nil
}

// Change replaces the stored password after confirming the current one.
func (g *Gate) Change(ask Asker) error {
	stored, ok, err := g.stored()
	if err != nil {
		return err
	}
	if ok {
		current, err := read(ask, PromptCurrent, "Invalid input.")
		if err != nil {
			return err
		}
		if current != stored {
			g.log.Warn("password change denied", "path", g.path)
			return ErrDenied
		}
	}

	password, err := read(ask, PromptNew, "Invalid password.")
	if err != nil {
		return err
	}
	if err := g.store(password); err != nil {
		return err
	}
	g.log.Info("password changed", "path", g.path)
	return nil
}

// stored returns the saved password: the first line of the file without
// its line ending, normalized like typed answers. ok is false when the file
// is absent or holds no password.
func (g *Gate) stored() (password string, ok bool, err error) {
	data, err := os.ReadFile(g.path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, errs.Wrap(errs.IOFailure, "Error reading password file", err)
	}
	line, _, _ := strings.Cut(string(data), "\n")
	password = normalize(strings.TrimSuffix(line, "\r"))
	if password == "" {
		return "", false, nil
	}
	return password, true, nil
}

// store writes password verbatim with no trailing newline.
func (g *Gate) store(password string) error {
	if err := os.WriteFile(g.path, []byte(password), 0600); err != nil {
		g.log.Error("failed to store password", "path", g.path, "error", err)
		return errs.Wrap(errs.IOFailure, "Error: Could not save password.", err)
	}
	return nil
}

// read asks once. Leading blanks are dropped and the answer is cut to
// MaxPasswordLen; nothing left over is MalformedInput.
func read(ask Asker, label, invalid string) (string, error) {
	answer, err := ask.ReadSecret(label)
	if err != nil {
		return "", errs.Wrap(errs.MalformedInput, invalid, err)
	}
	answer = normalize(answer)
	if answer == "" {
		return "", errs.New(errs.MalformedInput, invalid)
	}
	return answer, nil
}

// normalize drops leading blanks and cuts s to MaxPasswordLen. Stored and
// typed passwords both pass through it before comparison.
func normalize(s string) string {
	return clip(strings.TrimLeft(s, " \t\r\n\v\f"))
}

func clip(s string) string {
	if len(s) > MaxPasswordLen {
		return s[:MaxPasswordLen]
	}
	return s
}
