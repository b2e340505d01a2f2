package commands

import (
	"context"

	"github.com/spf13/pflag"

	"todolist/internal/config"
	"todolist/internal/service"
)

func init() {
	Register(&RmCmd{})
}

// RmCmd implements the rm command.
type RmCmd struct{}

func (c *RmCmd) Name() string      { return "rm" }
func (c *RmCmd) Aliases() []string { return []string{"delete"} }
func (c *RmCmd) Synopsis() string  { return "Delete a task and renumber the rest" }
func (c *RmCmd) Usage() string     { return "todolist rm [common flags] [<id>]" }
func (c *RmCmd) NeedsUnlock() bool { return true }

func (c *RmCmd) RegisterFlags(fs *pflag.FlagSet) {}

func (c *RmCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, env *Env, args []string) int {
	return applyToTask(ctx, svc, env, deleteAction(svc), args)
}
