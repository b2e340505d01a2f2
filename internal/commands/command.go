// Package commands provides the command interface and implementations.
package commands

import (
	"context"
	"io"
	"log/slog"

	"github.com/spf13/pflag"

	"todolist/internal/config"
	"todolist/internal/output"
	"todolist/internal/prompt"
	"todolist/internal/service"
)

// Command defines the interface for CLI commands.
type Command interface {
	// Name returns the primary command name.
	Name() string

	// Aliases returns alternative names for the command.
	Aliases() []string

	// Synopsis returns a short description for help output.
	Synopsis() string

	// Usage returns the usage string for help output.
	Usage() string

	// NeedsUnlock returns true if the command must pass the password gate.
	// Commands like help and version return false.
	NeedsUnlock() bool

	// RegisterFlags registers command-specific flags.
	RegisterFlags(fs *pflag.FlagSet)

	// Run executes the command.
	// cfg is always provided (data dir, paths, limits).
	// svc is nil if NeedsUnlock() returns false.
	// args contains positional arguments after flag parsing.
	// Returns exit code.
	Run(ctx context.Context, cfg *config.Config, svc service.Service, env *Env, args []string) int
}

// Env carries the console streams and logger of one run.
type Env struct {
	In  *prompt.Prompter
	Out *output.Printer
	Err *output.Printer
	Log *slog.Logger
}

// NewEnv builds an Env reading answers from in. Prompt labels go to out.
func NewEnv(in io.Reader, out, errOut io.Writer, color, quiet bool, log *slog.Logger) *Env {
	o := output.NewPrinter(out, color)
	o.Quiet = quiet
	e := output.NewPrinter(errOut, color)
	e.Quiet = quiet
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Env{
		In:  prompt.New(in, o),
		Out: o,
		Err: e,
		Log: log,
	}
}

// interactive returns a copy of env that reports errors on the output
// stream, keeping menu dialogue on one screen.
func (env *Env) interactive() *Env {
	c := *env
	c.Err = env.Out
	return &c
}
