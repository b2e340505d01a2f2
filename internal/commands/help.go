package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"todolist/internal/config"
	"todolist/internal/exitcode"
	"todolist/internal/service"
)

func init() {
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string      { return "help" }
func (c *HelpCmd) Aliases() []string { return nil }
func (c *HelpCmd) Synopsis() string  { return "Print usage" }
func (c *HelpCmd) Usage() string     { return "todolist help" }
func (c *HelpCmd) NeedsUnlock() bool { return false }

func (c *HelpCmd) RegisterFlags(fs *pflag.FlagSet) {}

// Run prints the usage lines, one summary line per registered command and
// the common flags.
func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, env *Env, args []string) int {
	w := env.Out.Writer()
	fmt.Fprint(w, usageText)

	fmt.Fprintln(w, "\nCommands:")
	for _, cmd := range DefaultRegistry.All() {
		line := fmt.Sprintf("  %-8s %s", cmd.Name(), cmd.Synopsis())
		if aliases := cmd.Aliases(); len(aliases) > 0 {
			line += " (alias: " + strings.Join(aliases, ", ") + ")"
		}
		fmt.Fprintln(w, line)
	}

	fmt.Fprint(w, flagsText)
	return exitcode.Success
}

const usageText = `Usage:
  todolist                  Run the interactive menu
  todolist menu [common flags]
  todolist add [common flags] [-p <priority>] [-d <deadline>] [-c <category>] [description...]
  todolist list [common flags] [--status <status>] [--category <category>]
  todolist rm [common flags] [<id>]
  todolist done [common flags] [<id>]
  todolist note [common flags] [-d <date>] [content...]
  todolist notes [common flags] [-d <date>]
  todolist passwd [common flags]
  todolist help
  todolist version
`

const flagsText = `
Common flags:
  --config <dir>   Override data directory
  --quiet          Suppress success messages
  --debug          Write debug logs to <dir>/debug.log
  --no-color       Disable colored output

Fields left off the command line are asked for interactively.
`
