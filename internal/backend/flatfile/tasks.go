package flatfile

import (
	"fmt"
	"io"
	"iter"
	"log/slog"
	"slices"
	"strings"

	"todolist/internal/errs"
	"todolist/internal/service"
)

// TaskStore holds up to max tasks in memory, backed by one task file.
// Ids are always the dense range 1..Len().
type TaskStore struct {
	path  string
	max   int
	log   *slog.Logger
	tasks []service.Task
}

// OpenTaskStore loads the task file at path. A missing file is an empty
// store. An existing file that cannot be read is an IOFailure, so that a
// later save never overwrites data that was not loaded.
func OpenTaskStore(path string, max int, log *slog.Logger) (*TaskStore, error) {
	s := &TaskStore{path: path, max: max, log: log.With("store", "tasks")}

	f, err := openIfExists(path)
	if err != nil {
		return nil, errs.Wrap(errs.IOFailure, "Error loading tasks", err)
	}
	if f == nil {
		s.log.Debug("task file absent, starting empty", "path", path)
		return s, nil
	}
	defer f.Close()

	decoded, err := DecodeTasks(f, max)
	if err != nil {
		return nil, errs.Wrap(errs.IOFailure, "Error loading tasks", err)
	}
	s.tasks = decoded.Records
	if decoded.Discarded {
		s.log.Warn("discarded unreadable trailing task data", "path", path, "kept", len(s.tasks))
	}
	if s.renumber() {
		s.log.Warn("task ids were not sequential, renumbered", "path", path)
	}
	s.log.Debug("loaded tasks", "path", path, "count", len(s.tasks))
	return s, nil
}

// Len returns the number of stored tasks.
func (s *TaskStore) Len() int {
	return len(s.tasks)
}

// All yields the tasks in store order. Each iteration reads the store as
// it is at that moment.
func (s *TaskStore) All() iter.Seq[service.Task] {
	return func(yield func(service.Task) bool) {
		for _, t := range s.tasks {
			if !yield(t) {
				return
			}
		}
	}
}

// Add appends a Pending task with id Len()+1 and saves. Fields are cut to
// one line and truncated to their widths; vocabulary and date syntax are
// not checked. A blank field is MalformedInput: it could not be read back.
func (s *TaskStore) Add(in service.NewTask) (service.Task, error) {
	if len(s.tasks) >= s.max {
		return service.Task{}, errs.ErrTaskListFull
	}

	task := service.Task{
		ID:          len(s.tasks) + 1,
		Description: field(in.Description, service.MaxDescriptionLen),
		Priority:    field(in.Priority, service.MaxPriorityLen),
		Status:      service.StatusPending,
		Deadline:    field(in.Deadline, service.MaxDeadlineLen),
		Category:    field(in.Category, service.MaxCategoryLen),
	}
	switch {
	case task.Description == "":
		return service.Task{}, errs.New(errs.MalformedInput, "Error reading description.")
	case strings.TrimSpace(task.Priority) == "":
		return service.Task{}, errs.New(errs.MalformedInput, "Invalid priority.")
	case strings.TrimSpace(task.Deadline) == "":
		return service.Task{}, errs.New(errs.MalformedInput, "Invalid deadline.")
	case strings.TrimSpace(task.Category) == "":
		return service.Task{}, errs.New(errs.MalformedInput, "Invalid category.")
	}

	s.tasks = append(s.tasks, task)
	return task, s.Save()
}

// Delete removes the task with id, keeps the survivors' order and
// renumbers them to 1..n before saving.
func (s *TaskStore) Delete(id int) error {
	i := s.index(id)
	if i < 0 {
		return notFound(id)
	}
	s.tasks = slices.Delete(s.tasks, i, i+1)
	s.renumber()
	return s.Save()
}

// Complete marks the task with id as Completed and saves. Completing a
// task twice rewrites the same status.
func (s *TaskStore) Complete(id int) error {
	i := s.index(id)
	if i < 0 {
		return notFound(id)
	}
	s.tasks[i].Status = service.StatusCompleted
	return s.Save()
}

// Save overwrites the task file with the whole store.
func (s *TaskStore) Save() error {
	if err := overwrite(s.path, func(w io.Writer) error { return EncodeTasks(w, s.tasks) }); err != nil {
		s.log.Error("failed to save tasks", "path", s.path, "error", err)
		return errs.Wrap(errs.IOFailure, "Error saving tasks", err)
	}
	s.log.Debug("saved tasks", "path", s.path, "count", len(s.tasks))
	return nil
}

func (s *TaskStore) index(id int) int {
	return slices.IndexFunc(s.tasks, func(t service.Task) bool { return t.ID == id })
}

// renumber assigns ids 1..n in store order and reports whether any changed.
func (s *TaskStore) renumber() bool {
	changed := false
	for i := range s.tasks {
		if s.tasks[i].ID != i+1 {
			s.tasks[i].ID = i + 1
			changed = true
		}
	}
	return changed
}

func notFound(id int) error {
	return errs.New(errs.NotFound, fmt.Sprintf("Task with ID %d not found!", id))
}
