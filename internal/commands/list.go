package commands

import (
	"context"

	"github.com/spf13/pflag"

	"todolist/internal/config"
	"todolist/internal/service"
)

func init() {
	Register(&ListCmd{})
}

// ListCmd implements the list command.
type ListCmd struct {
	status   string
	category string
}

func (c *ListCmd) Name() string      { return "list" }
func (c *ListCmd) Aliases() []string { return []string{"ls"} }
func (c *ListCmd) Synopsis() string  { return "Print tasks with their time left" }
func (c *ListCmd) Usage() string {
	return "todolist list [common flags] [--status <status>] [--category <category>]"
}
func (c *ListCmd) NeedsUnlock() bool { return true }

func (c *ListCmd) RegisterFlags(fs *pflag.FlagSet) {
	fs.StringVar(&c.status, "status", "", "only tasks with this status")
	fs.StringVar(&c.category, "category", "", "only tasks in this category")
}

func (c *ListCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, env *Env, args []string) int {
	var keep func(service.TaskView) bool
	if c.status != "" || c.category != "" {
		status, category := c.status, c.category
		keep = func(t service.TaskView) bool {
			return (status == "" || t.Status == status) &&
				(category == "" || t.Category == category)
		}
	}
	return showTasks(ctx, svc, env, keep)
}
