package commands

import (
	"context"
	"errors"
	"iter"

	"todolist/internal/config"
	"todolist/internal/errs"
	"todolist/internal/exitcode"
	"todolist/internal/service"
)

// Prompt labels shared by the one-shot commands and the menu.
const (
	promptDescription = "Enter task description: "
	promptPriority    = "Enter priority (High/Medium/Low): "
	promptDeadline    = "Enter deadline (YYYY-MM-DD): "
	promptCategory    = "Enter category (Work/Study/Personal/Other): "
	promptDeleteID    = "Enter the ID of the task to delete: "
	promptCompleteID  = "Enter the ID of the task to mark as completed: "
	promptNoteDate    = "Enter date (YYYY-MM-DD): "
	promptNoteContent = "Enter note: "
	promptNoteFilter  = "Enter date to filter notes (YYYY-MM-DD) or leave blank to view all: "
)

const msgInvalidTaskID = "Invalid input! Please enter a valid task ID."

// failed reports err on env. It returns true when the command must stop;
// a save warning is printed and the command carries on.
func failed(env *Env, err error) bool {
	switch {
	case err == nil:
		return false
	case errs.IsWarning(err):
		env.Log.Warn("save failed", "error", err)
		env.Err.Warn("%s", errs.MessageOf(err))
		return false
	default:
		env.Err.Error("%s", errs.MessageOf(err))
		return true
	}
}

// fill asks for *value with read when it is still empty.
func fill(read func(string) (string, error), value *string, label, invalid string) error {
	if *value != "" {
		return nil
	}
	answer, err := read(label)
	if err != nil {
		return errs.Wrap(errs.MalformedInput, invalid, err)
	}
	*value = answer
	return nil
}

func addTask(ctx context.Context, cfg *config.Config, svc service.Service, env *Env, t service.NewTask) int {
	if cfg.Limits.MaxTasks > 0 && svc.TaskCount(ctx) >= cfg.Limits.MaxTasks {
		env.Err.Error("%s", errs.MessageOf(errs.ErrTaskListFull))
		return exitcode.UserError
	}

	steps := []struct {
		read    func(string) (string, error)
		value   *string
		label   string
		invalid string
	}{
		{env.In.ReadLine, &t.Description, promptDescription, "Error reading description."},
		{env.In.ReadField, &t.Priority, promptPriority, "Invalid priority."},
		{env.In.ReadField, &t.Deadline, promptDeadline, "Invalid deadline."},
		{env.In.ReadField, &t.Category, promptCategory, "Invalid category."},
	}
	for _, s := range steps {
		if err := fill(s.read, s.value, s.label, s.invalid); err != nil {
			env.Err.Error("%s", errs.MessageOf(err))
			return exitcode.For(err)
		}
	}

	task, err := svc.AddTask(ctx, t)
	if failed(env, err) {
		return exitcode.For(err)
	}
	env.Log.Debug("task added", "id", task.ID)
	env.Out.Success("Task added successfully!")
	return exitcode.Success
}

// showTasks prints the task table, keeping only the tasks keep accepts
// when keep is non-nil.
func showTasks(ctx context.Context, svc service.Service, env *Env, keep func(service.TaskView) bool) int {
	tasks, err := svc.ListTasks(ctx)
	if errors.Is(err, errs.ErrNoTasks) {
		env.Out.Warn("%s", errs.MessageOf(err))
		return exitcode.Success
	}
	if err != nil {
		env.Err.Error("%s", errs.MessageOf(err))
		return exitcode.For(err)
	}

	if keep != nil {
		tasks = filter(tasks, keep)
	}
	if env.Out.TaskTable(tasks) == 0 && keep != nil {
		env.Out.Warn("No tasks match the filter.")
	}
	return exitcode.Success
}

func filter[T any](seq iter.Seq[T], keep func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if keep(v) && !yield(v) {
				return
			}
		}
	}
}

// taskAction is a by-id mutation with its operator wording.
type taskAction struct {
	empty   string
	label   string
	done    string
	mutate  func(ctx context.Context, id int) error
	logText string
}

func deleteAction(svc service.Service) taskAction {
	return taskAction{
		empty:   "No tasks available to delete!",
		label:   promptDeleteID,
		done:    "Task with ID %d deleted successfully!",
		mutate:  svc.DeleteTask,
		logText: "task deleted",
	}
}

func completeAction(svc service.Service) taskAction {
	return taskAction{
		empty:   "No tasks available to mark as completed!",
		label:   promptCompleteID,
		done:    "Task with ID %d marked as completed!",
		mutate:  svc.CompleteTask,
		logText: "task completed",
	}
}

// applyToTask runs a by-id action. With no id in args it shows the table
// and asks for one.
func applyToTask(ctx context.Context, svc service.Service, env *Env, a taskAction, args []string) int {
	if svc.TaskCount(ctx) == 0 {
		env.Err.Warn("%s", a.empty)
		return exitcode.UserError
	}

	var id int
	var err error
	if len(args) > 0 {
		id, err = ParseTaskID(args)
	} else {
		if code := showTasks(ctx, svc, env, nil); code != exitcode.Success {
			return code
		}
		id, err = env.In.ReadInt(a.label)
	}
	if err != nil {
		env.Err.Error(msgInvalidTaskID)
		return exitcode.UserError
	}

	err = a.mutate(ctx, id)
	if failed(env, err) {
		return exitcode.For(err)
	}
	env.Log.Debug(a.logText, "id", id)
	env.Out.Success(a.done, id)
	return exitcode.Success
}

func addNote(ctx context.Context, cfg *config.Config, svc service.Service, env *Env, n service.Note) int {
	if cfg.Limits.MaxNotes > 0 && svc.NoteCount(ctx) >= cfg.Limits.MaxNotes {
		env.Err.Error("%s", errs.MessageOf(errs.ErrNoteListFull))
		return exitcode.UserError
	}

	if err := fill(env.In.ReadField, &n.Date, promptNoteDate, "Invalid date!"); err != nil {
		env.Err.Error("%s", errs.MessageOf(err))
		return exitcode.For(err)
	}
	if err := fill(env.In.ReadLine, &n.Content, promptNoteContent, "Error reading note."); err != nil {
		env.Err.Error("%s", errs.MessageOf(err))
		return exitcode.For(err)
	}

	saved, err := svc.AddNote(ctx, n)
	if failed(env, err) {
		return exitcode.For(err)
	}
	if err == nil {
		env.Out.Success("Successfully saved %d notes.", saved)
	}
	env.Out.Success("Note added successfully!")
	return exitcode.Success
}

// showNotes prints the note table for date, or every note when date is
// empty.
func showNotes(ctx context.Context, svc service.Service, env *Env, date string) int {
	notes, err := svc.ListNotes(ctx, date)
	switch {
	case errors.Is(err, errs.ErrNoNotes):
		env.Out.Warn("%s", errs.MessageOf(err))
		return exitcode.Success
	case errs.Is(err, errs.NotFound):
		env.Out.NoteTable(func(func(service.Note) bool) {})
		env.Out.Warn("%s", errs.MessageOf(err))
		return exitcode.Success
	case err != nil:
		env.Err.Error("%s", errs.MessageOf(err))
		return exitcode.For(err)
	}

	env.Out.NoteTable(notes)
	return exitcode.Success
}
