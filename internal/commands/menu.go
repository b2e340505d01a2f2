package commands

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/spf13/pflag"

	"todolist/internal/config"
	"todolist/internal/exitcode"
	"todolist/internal/service"
)

// Menu choices.
const (
	choiceAddTask = iota + 1
	choiceViewTasks
	choiceDeleteTask
	choiceCompleteTask
	choiceAddNote
	choiceViewNotes
	choiceExit
)

func init() {
	Register(&MenuCmd{})
}

// MenuCmd implements the interactive menu. It is the default command.
type MenuCmd struct {
	// Now reports today's date for the banner. Defaults to time.Now.
	Now func() time.Time
}

func (c *MenuCmd) Name() string      { return "menu" }
func (c *MenuCmd) Aliases() []string { return nil }
func (c *MenuCmd) Synopsis() string  { return "Run the interactive menu" }
func (c *MenuCmd) Usage() string     { return "todolist menu [common flags]" }
func (c *MenuCmd) NeedsUnlock() bool { return true }

func (c *MenuCmd) RegisterFlags(fs *pflag.FlagSet) {}

// Run loops until the operator picks Exit or input ends. A non-numeric
// choice shows the menu again.
func (c *MenuCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, env *Env, args []string) int {
	env = env.interactive()
	now := c.Now
	if now == nil {
		now = time.Now
	}

	for ctx.Err() == nil {
		if cfg.UI.ClearScreen {
			env.Out.Clear()
		}
		env.Out.Menu(now().Format(time.DateOnly))

		choice, err := env.In.ReadInt("Enter your choice: ")
		if errors.Is(err, io.EOF) {
			return exitcode.Success
		}
		if err != nil {
			continue
		}

		switch choice {
		case choiceAddTask:
			addTask(ctx, cfg, svc, env, service.NewTask{})
		case choiceViewTasks:
			showTasks(ctx, svc, env, nil)
		case choiceDeleteTask:
			applyToTask(ctx, svc, env, deleteAction(svc), nil)
		case choiceCompleteTask:
			applyToTask(ctx, svc, env, completeAction(svc), nil)
		case choiceAddNote:
			addNote(ctx, cfg, svc, env, service.Note{})
		case choiceViewNotes:
			viewNotes(ctx, svc, env)
		case choiceExit:
			env.Out.Success("Exiting...")
			return exitcode.Success
		default:
			env.Out.Error("Invalid choice! Try again.")
		}

		env.Out.Plain("")
		if err := env.In.Pause("Press Enter to continue..."); err != nil {
			return exitcode.Success
		}
	}
	return exitcode.Success
}

// viewNotes asks for an optional date filter, then shows the notes.
func viewNotes(ctx context.Context, svc service.Service, env *Env) {
	if svc.NoteCount(ctx) == 0 {
		showNotes(ctx, svc, env, "")
		return
	}
	date, err := env.In.ReadLine(promptNoteFilter)
	if err != nil && !errors.Is(err, io.EOF) {
		return
	}
	showNotes(ctx, svc, env, date)
}
