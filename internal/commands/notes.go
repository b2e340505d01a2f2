package commands

import (
	"context"

	"github.com/spf13/pflag"

	"todolist/internal/config"
	"todolist/internal/exitcode"
	"todolist/internal/service"
)

func init() {
	Register(&NotesCmd{})
}

// NotesCmd implements the notes command.
type NotesCmd struct {
	date string
}

func (c *NotesCmd) Name() string      { return "notes" }
func (c *NotesCmd) Aliases() []string { return nil }
func (c *NotesCmd) Synopsis() string  { return "Print notes, optionally for one date" }
func (c *NotesCmd) Usage() string     { return "todolist notes [common flags] [-d <date>]" }
func (c *NotesCmd) NeedsUnlock() bool { return true }

func (c *NotesCmd) RegisterFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&c.date, "date", "d", "", "only notes with this exact date")
}

func (c *NotesCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, env *Env, args []string) int {
	if len(args) > 0 {
		env.Err.Error("unexpected argument: %s", args[0])
		return exitcode.UserError
	}
	return showNotes(ctx, svc, env, c.date)
}
