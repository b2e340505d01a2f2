package commands

import (
	"context"
	"strings"

	"github.com/spf13/pflag"

	"todolist/internal/config"
	"todolist/internal/service"
)

func init() {
	Register(&AddCmd{})
}

// AddCmd implements the add command.
type AddCmd struct {
	priority string
	deadline string
	category string
}

func (c *AddCmd) Name() string      { return "add" }
func (c *AddCmd) Aliases() []string { return []string{"create"} }
func (c *AddCmd) Synopsis() string  { return "Add a task" }
func (c *AddCmd) Usage() string {
	return "todolist add [common flags] [-p <priority>] [-d <deadline>] [-c <category>] [description...]"
}
func (c *AddCmd) NeedsUnlock() bool { return true }

func (c *AddCmd) RegisterFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&c.priority, "priority", "p", "", "task priority (High/Medium/Low)")
	fs.StringVarP(&c.deadline, "deadline", "d", "", "deadline as YYYY-MM-DD")
	fs.StringVarP(&c.category, "category", "c", "", "task category (Work/Study/Personal/Other)")
}

// Run adds one task. Fields missing from the command line are asked for.
func (c *AddCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, env *Env, args []string) int {
	return addTask(ctx, cfg, svc, env, service.NewTask{
		Description: strings.Join(args, " "),
		Priority:    c.priority,
		Deadline:    c.deadline,
		Category:    c.category,
	})
}
