package commands

import (
	"context"
	"strings"

	"github.com/spf13/pflag"

	"todolist/internal/config"
	"todolist/internal/service"
)

func init() {
	Register(&NoteCmd{})
}

// NoteCmd implements the note command.
type NoteCmd struct {
	date string
}

func (c *NoteCmd) Name() string      { return "note" }
func (c *NoteCmd) Aliases() []string { return nil }
func (c *NoteCmd) Synopsis() string  { return "Add a daily note" }
func (c *NoteCmd) Usage() string     { return "todolist note [common flags] [-d <date>] [content...]" }
func (c *NoteCmd) NeedsUnlock() bool { return true }

func (c *NoteCmd) RegisterFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&c.date, "date", "d", "", "note date as YYYY-MM-DD")
}

func (c *NoteCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, env *Env, args []string) int {
	return addNote(ctx, cfg, svc, env, service.Note{
		Date:    c.date,
		Content: strings.Join(args, " "),
	})
}
