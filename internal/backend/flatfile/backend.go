package flatfile

import (
	"context"
	"fmt"
	"iter"
	"log/slog"
	"time"

	"todolist/internal/config"
	"todolist/internal/countdown"
	"todolist/internal/errs"
	"todolist/internal/service"
)

// Backend implements service.Service over a TaskStore and a NoteStore.
type Backend struct {
	tasks *TaskStore
	notes *NoteStore
	now   countdown.Clock
	log   *slog.Logger
}

// Option configures a Backend.
type Option func(*Backend)

// WithClock overrides the clock used for countdowns.
func WithClock(now countdown.Clock) Option {
	return func(b *Backend) { b.now = now }
}

// New loads both stores from the paths and limits in cfg.
func New(ctx context.Context, cfg *config.Config, log *slog.Logger, opts ...Option) (*Backend, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	tasks, err := OpenTaskStore(cfg.TasksPath(), cfg.Limits.MaxTasks, log)
	if err != nil {
		return nil, err
	}
	notes, err := OpenNoteStore(cfg.NotesPath(), cfg.Limits.MaxNotes, log)
	if err != nil {
		return nil, err
	}

	b := &Backend{tasks: tasks, notes: notes, now: time.Now, log: log}
	for _, opt := range opts {
		opt(b)
	}
	return b, nil
}

// AddTask appends a Pending task.
func (b *Backend) AddTask(ctx context.Context, t service.NewTask) (service.Task, error) {
	if err := ctx.Err(); err != nil {
		return service.Task{}, err
	}
	return b.tasks.Add(t)
}

// ListTasks yields tasks with a countdown computed at iteration time.
func (b *Backend) ListTasks(ctx context.Context) (iter.Seq[service.TaskView], error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if b.tasks.Len() == 0 {
		return nil, errs.ErrNoTasks
	}
	return func(yield func(service.TaskView) bool) {
		for t := range b.tasks.All() {
			view := service.TaskView{Task: t, TimeLeft: countdown.Format(t.Deadline, b.now())}
			if !yield(view) {
				return
			}
		}
	}, nil
}

// DeleteTask removes a task and renumbers the rest.
func (b *Backend) DeleteTask(ctx context.Context, id int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return b.tasks.Delete(id)
}

// CompleteTask marks a task Completed.
func (b *Backend) CompleteTask(ctx context.Context, id int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return b.tasks.Complete(id)
}

// TaskCount returns the number of stored tasks.
func (b *Backend) TaskCount(ctx context.Context) int {
	return b.tasks.Len()
}

// AddNote appends a note.
func (b *Backend) AddNote(ctx context.Context, n service.Note) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return b.notes.Add(n)
}

// ListNotes yields notes, optionally restricted to one exact date.
func (b *Backend) ListNotes(ctx context.Context, date string) (iter.Seq[service.Note], error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if b.notes.Len() == 0 {
		return nil, errs.ErrNoNotes
	}
	if date != "" && !b.notes.Has(date) {
		return nil, errs.New(errs.NotFound, fmt.Sprintf("No notes found for the date '%s'.", date))
	}
	return b.notes.Matching(date), nil
}

// NoteCount returns the number of stored notes.
func (b *Backend) NoteCount(ctx context.Context) int {
	return b.notes.Len()
}

var _ service.Service = (*Backend)(nil)
