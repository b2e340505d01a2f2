package commands

import (
	"context"

	"github.com/spf13/pflag"

	"todolist/internal/config"
	"todolist/internal/service"
)

func init() {
	Register(&DoneCmd{})
}

// DoneCmd implements the done command.
type DoneCmd struct{}

func (c *DoneCmd) Name() string      { return "done" }
func (c *DoneCmd) Aliases() []string { return []string{"complete"} }
func (c *DoneCmd) Synopsis() string  { return "Mark a task as completed" }
func (c *DoneCmd) Usage() string     { return "todolist done [common flags] [<id>]" }
func (c *DoneCmd) NeedsUnlock() bool { return true }

func (c *DoneCmd) RegisterFlags(fs *pflag.FlagSet) {}

func (c *DoneCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, env *Env, args []string) int {
	return applyToTask(ctx, svc, env, completeAction(svc), args)
}
