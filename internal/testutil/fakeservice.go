// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"fmt"
	"iter"
	"slices"
	"sync"
	"time"

	"todolist/internal/countdown"
	"todolist/internal/errs"
	"todolist/internal/service"
)

// FakeService is an in-memory implementation of service.Service for testing.
type FakeService struct {
	mu    sync.RWMutex
	tasks []service.Task
	notes []service.Note

	// Now drives the countdown column. Defaults to time.Now.
	Now countdown.Clock

	// MaxTasks and MaxNotes cap the stores; zero means unlimited.
	MaxTasks int
	MaxNotes int

	// Error injection for testing. SaveErr is returned after a mutation
	// has been applied, like a failed save.
	AddTaskErr      error
	ListTasksErr    error
	DeleteTaskErr   error
	CompleteTaskErr error
	AddNoteErr      error
	ListNotesErr    error
	SaveErr         error
}

// NewFakeService creates an empty FakeService.
func NewFakeService() *FakeService {
	return &FakeService{Now: time.Now}
}

// SeedTask appends a Pending task with the next id.
func (f *FakeService) SeedTask(description, priority, deadline, category string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tasks = append(f.tasks, service.Task{
		ID:          len(f.tasks) + 1,
		Description: description,
		Priority:    priority,
		Status:      service.StatusPending,
		Deadline:    deadline,
		Category:    category,
	})
}

// SeedNote appends a note.
func (f *FakeService) SeedNote(date, content string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.notes = append(f.notes, service.Note{Date: date, Content: content})
}

// Tasks returns a copy of the stored tasks.
func (f *FakeService) Tasks() []service.Task {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return slices.Clone(f.tasks)
}

// Notes returns a copy of the stored notes.
func (f *FakeService) Notes() []service.Note {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return slices.Clone(f.notes)
}

// AddTask implements service.Service.
func (f *FakeService) AddTask(ctx context.Context, t service.NewTask) (service.Task, error) {
	if f.AddTaskErr != nil {
		return service.Task{}, f.AddTaskErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.MaxTasks > 0 && len(f.tasks) >= f.MaxTasks {
		return service.Task{}, errs.ErrTaskListFull
	}
	if t.Description == "" {
		return service.Task{}, errs.New(errs.MalformedInput, "Error reading description.")
	}

	task := service.Task{
		ID:          len(f.tasks) + 1,
		Description: t.Description,
		Priority:    t.Priority,
		Status:      service.StatusPending,
		Deadline:    t.Deadline,
		Category:    t.Category,
	}
	f.tasks = append(f.tasks, task)
	return task, f.SaveErr
}

// ListTasks implements service.Service.
func (f *FakeService) ListTasks(ctx context.Context) (iter.Seq[service.TaskView], error) {
	if f.ListTasksErr != nil {
		return nil, f.ListTasksErr
	}
	tasks := f.Tasks()
	if len(tasks) == 0 {
		return nil, errs.ErrNoTasks
	}
	now := f.now()
	return func(yield func(service.TaskView) bool) {
		for _, t := range tasks {
			if !yield(service.TaskView{Task: t, TimeLeft: countdown.Format(t.Deadline, now)}) {
				return
			}
		}
	}, nil
}

// DeleteTask implements service.Service.
func (f *FakeService) DeleteTask(ctx context.Context, id int) error {
	if f.DeleteTaskErr != nil {
		return f.DeleteTaskErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	i := f.index(id)
	if i < 0 {
		return notFound(id)
	}
	f.tasks = slices.Delete(f.tasks, i, i+1)
	for j := range f.tasks {
		f.tasks[j].ID = j + 1
	}
	return f.SaveErr
}

// CompleteTask implements service.Service.
func (f *FakeService) CompleteTask(ctx context.Context, id int) error {
	if f.CompleteTaskErr != nil {
		return f.CompleteTaskErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	i := f.index(id)
	if i < 0 {
		return notFound(id)
	}
	f.tasks[i].Status = service.StatusCompleted
	return f.SaveErr
}

// TaskCount implements service.Service.
func (f *FakeService) TaskCount(ctx context.Context) int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.tasks)
}

// AddNote implements service.Service.
func (f *FakeService) AddNote(ctx context.Context, n service.Note) (int, error) {
	if f.AddNoteErr != nil {
		return 0, f.AddNoteErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.MaxNotes > 0 && len(f.notes) >= f.MaxNotes {
		return 0, errs.ErrNoteListFull
	}
	if n.Content == "" {
		return 0, errs.New(errs.MalformedInput, "Error reading note.")
	}
	f.notes = append(f.notes, n)
	return len(f.notes), f.SaveErr
}

// ListNotes implements service.Service.
func (f *FakeService) ListNotes(ctx context.Context, date string) (iter.Seq[service.Note], error) {
	if f.ListNotesErr != nil {
		return nil, f.ListNotesErr
	}
	notes := f.Notes()
	if len(notes) == 0 {
		return nil, errs.ErrNoNotes
	}
	if date != "" {
		notes = slices.DeleteFunc(notes, func(n service.Note) bool { return n.Date != date })
		if len(notes) == 0 {
			return nil, errs.New(errs.NotFound, fmt.Sprintf("No notes found for the date '%s'.", date))
		}
	}
	return slices.Values(notes), nil
}

// NoteCount implements service.Service.
func (f *FakeService) NoteCount(ctx context.Context) int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.notes)
}

func (f *FakeService) index(id int) int {
	return slices.IndexFunc(f.tasks, func(t service.Task) bool { return t.ID == id })
}

func (f *FakeService) now() time.Time {
	if f.Now == nil {
		return time.Now()
	}
	return f.Now()
}

func notFound(id int) error {
	return errs.New(errs.NotFound, fmt.Sprintf("Task with ID %d not found!", id))
}

var _ service.Service = (*FakeService)(nil)
