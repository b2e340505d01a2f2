// Package cli parses the command line and dispatches to commands.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/pflag"

	"todolist/internal/commands"
	"todolist/internal/config"
	"todolist/internal/errs"
	"todolist/internal/exitcode"
	"todolist/internal/gate"
	"todolist/internal/logging"
	"todolist/internal/service"
)

// DefaultCommand runs when no command is given.
const DefaultCommand = "menu"

// ServiceFactory creates a Service from config.
// Used to inject the backend during dispatch.
type ServiceFactory func(ctx context.Context, cfg *config.Config, log *slog.Logger) (service.Service, error)

// Dispatcher handles command-line parsing and dispatch.
type Dispatcher struct {
	registry *commands.Registry
	factory  ServiceFactory
}

// NewDispatcher creates a new dispatcher with the given registry and service factory.
func NewDispatcher(registry *commands.Registry, factory ServiceFactory) *Dispatcher {
	return &Dispatcher{
		registry: registry,
		factory:  factory,
	}
}

// Run parses arguments and dispatches to the appropriate command, reading
// operator answers from in. Returns the exit code.
func (d *Dispatcher) Run(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer) int {
	cmdName := DefaultCommand
	var remaining []string
	if len(args) > 0 {
		cmdName, remaining = args[0], args[1:]
	}

	// If first token starts with -, it's an error (flags require a command)
	if strings.HasPrefix(cmdName, "-") {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", cmdName)
		return exitcode.UserError
	}

	cmd, ok := d.registry.Find(cmdName)
	if !ok {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", cmdName)
		return exitcode.UserError
	}

	return d.dispatchCommand(ctx, cmd, remaining, in, out, errOut)
}

// globalFlags are accepted by every command.
type globalFlags struct {
	configDir string
	quiet     bool
	debug     bool
	noColor   bool
}

func (g *globalFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&g.configDir, "config", "", "override data directory")
	fs.BoolVar(&g.quiet, "quiet", false, "suppress success messages")
	fs.BoolVar(&g.debug, "debug", false, "write debug logs")
	fs.BoolVar(&g.noColor, "no-color", false, "disable colored output")
}

func (d *Dispatcher) dispatchCommand(ctx context.Context, cmd commands.Command, args []string, in io.Reader, out, errOut io.Writer) int {
	fs := pflag.NewFlagSet(cmd.Name(), pflag.ContinueOnError)
	fs.SetOutput(io.Discard) // We handle errors ourselves

	var global globalFlags
	global.register(fs)
	cmd.RegisterFlags(fs)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			fmt.Fprintf(out, "Usage: %s\n\n%s\n", cmd.Usage(), cmd.Synopsis())
			if usage := fs.FlagUsages(); usage != "" {
				fmt.Fprintf(out, "\nFlags:\n%s", usage)
			}
			return exitcode.Success
		}
		fmt.Fprintf(errOut, "error: %s\n", err)
		return exitcode.UserError
	}
	positionalArgs := fs.Args()

	cfg, err := config.New(global.configDir)
	if err != nil {
		fmt.Fprintf(errOut, "error: %s\n", err)
		return exitcode.UserError
	}
	cfg.Quiet = global.quiet
	cfg.Debug = global.debug
	color := cfg.UI.Color && !global.noColor

	if !cmd.NeedsUnlock() {
		env := commands.NewEnv(in, out, errOut, color, cfg.Quiet, nil)
		return cmd.Run(ctx, cfg, nil, env, positionalArgs)
	}

	if err := cfg.EnsureDir(); err != nil {
		fmt.Fprintf(errOut, "error: cannot create data directory %s: %s\n", cfg.Dir, err)
		return exitcode.StorageError
	}

	logger := logging.NopLogger()
	if cfg.LoggingEnabled() {
		if logger, err = logging.NewLogger(cfg.Dir, cfg.LogLevel()); err != nil {
			fmt.Fprintf(errOut, "error: %s\n", err)
			return exitcode.StorageError
		}
	}
	defer logger.Close()
	log := logger.With("command", cmd.Name())

	env := commands.NewEnv(in, out, errOut, color, cfg.Quiet, log)
	if code, ok := unlock(cfg, env); !ok {
		return code
	}

	// Stores load only once access is granted.
	svc, err := d.factory(ctx, cfg, log)
	if err != nil {
		log.Error("service unavailable", "error", err)
		env.Err.Error("%s", errs.MessageOf(err))
		return exitcode.For(err)
	}

	return cmd.Run(ctx, cfg, svc, env, positionalArgs)
}

// unlock runs the password gate. ok is false when the run must stop with code.
func unlock(cfg *config.Config, env *commands.Env) (code int, ok bool) {
	res, err := gate.New(cfg.PasswordPath(), env.Log).Unlock(env.In)
	switch {
	case errs.Is(err, errs.AccessDenied):
		env.Out.Error("%s", errs.MessageOf(err))
		return exitcode.AccessDenied, false
	case err != nil:
		env.Err.Error("%s", errs.MessageOf(err))
		return exitcode.For(err), false
	case res.FirstRun:
		env.Out.Success("Password set successfully!")
	default:
		env.Out.Success("Access granted!")
	}
	return exitcode.Success, true
}
