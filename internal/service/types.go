// Package service defines the backend-agnostic interface for task and note operations.
package service

// Task status values.
const (
	StatusPending   = "Pending"
	StatusCompleted = "Completed"
)

// Field widths in bytes. Input longer than a width is truncated at entry.
const (
	MaxDescriptionLen = 99
	MaxPriorityLen    = 9
	MaxStatusLen      = 9
	MaxDeadlineLen    = 14
	MaxCategoryLen    = 14
	MaxNoteDateLen    = 14
	MaxNoteContentLen = 199
)

// Task represents a single task record.
type Task struct {
	ID          int // 1-based, always dense 1..n
	Description string
	Priority    string // High, Medium, Low by convention; not validated
	Status      string // "Pending" or "Completed"
	Deadline    string // YYYY-MM-DD by convention; not validated
	Category    string
}

// NewTask holds the operator-supplied fields of a task to add.
type NewTask struct {
	Description string
	Priority    string
	Deadline    string
	Category    string
}

// TaskView is a task annotated with its live countdown string.
type TaskView struct {
	Task
	TimeLeft string
}

// Note represents a dated note. Identity is positional; dates repeat.
type Note struct {
	Date    string
	Content string
}
