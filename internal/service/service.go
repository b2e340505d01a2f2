// Package service defines the backend-agnostic interface for task and note operations.
package service

import (
	"context"
	"iter"
)

// Service defines the interface for task and note operations.
// Commands never touch the backing files directly.
//
// Mutating methods persist before returning. A persistence failure is
// reported as an errs.IOFailure error while the in-memory change stands.
type Service interface {
	// AddTask appends a Pending task with id count+1.
	// Returns errs.ErrTaskListFull at capacity.
	AddTask(ctx context.Context, t NewTask) (Task, error)

	// ListTasks returns the tasks in store order, each annotated with its
	// countdown. The sequence is restartable and re-reads the store on
	// every iteration. Returns errs.ErrNoTasks when the store is empty.
	ListTasks(ctx context.Context) (iter.Seq[TaskView], error)

	// DeleteTask removes the task with id and renumbers the rest to 1..n.
	// Returns an errs.NotFound error when no task has that id.
	DeleteTask(ctx context.Context, id int) error

	// CompleteTask sets the task's status to Completed.
	// Returns an errs.NotFound error when no task has that id.
	CompleteTask(ctx context.Context, id int) error

	// TaskCount returns the number of stored tasks.
	TaskCount(ctx context.Context) int

	// AddNote appends a note and returns the number of notes saved.
	// Returns errs.ErrNoteListFull at capacity.
	AddNote(ctx context.Context, n Note) (int, error)

	// ListNotes returns notes in insertion order. An empty date yields all
	// notes; otherwise only notes whose date equals it exactly.
	// Returns errs.ErrNoNotes when the store is empty and an errs.NotFound
	// error when the filter matches nothing.
	ListNotes(ctx context.Context, date string) (iter.Seq[Note], error)

	// NoteCount returns the number of stored notes.
	NoteCount(ctx context.Context) int
}
