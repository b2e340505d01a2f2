package commands

import (
	"context"

	"github.com/spf13/pflag"

	"todolist/internal/config"
	"todolist/internal/errs"
	"todolist/internal/exitcode"
	"todolist/internal/gate"
	"todolist/internal/service"
)

func init() {
	Register(&PasswdCmd{})
}

// PasswdCmd implements the passwd command.
type PasswdCmd struct{}

func (c *PasswdCmd) Name() string      { return "passwd" }
func (c *PasswdCmd) Aliases() []string { return nil }
func (c *PasswdCmd) Synopsis() string  { return "Change the access password" }
func (c *PasswdCmd) Usage() string     { return "todolist passwd [common flags]" }
func (c *PasswdCmd) NeedsUnlock() bool { return true }

func (c *PasswdCmd) RegisterFlags(fs *pflag.FlagSet) {}

func (c *PasswdCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, env *Env, args []string) int {
	g := gate.New(cfg.PasswordPath(), env.Log)
	if err := g.Change(env.In); err != nil {
		env.Err.Error("%s", errs.MessageOf(err))
		return exitcode.For(err)
	}
	env.Out.Success("Password changed successfully!")
	return exitcode.Success
}
