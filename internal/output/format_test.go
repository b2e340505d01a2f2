package output

import (
	"bytes"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"todolist/internal/service"
)

func TestTaskTable(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, false)

	views := []service.TaskView{{
		Task:     service.Task{ID: 1, Description: "Write report", Priority: "High", Status: "Pending", Deadline: "2025-01-10", Category: "Work"},
		TimeLeft: "1 days, 12 hours",
	}}
	n := p.TaskTable(slices.Values(views))

	assert.Equal(t, 1, n)
	lines := strings.Split(buf.String(), "\n")
	assert.Equal(t, "", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "ID    Task                           Priority   Status"))
	assert.Equal(t, taskRule, lines[2])
	assert.Equal(t,
		"1     Write report                   High       Pending    2025-01-10   Work            1 days, 12 hours    ",
		lines[3])
}

func TestNoteTable(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, false)

	n := p.NoteTable(slices.Values([]service.Note{{Date: "2025-01-10", Content: "Call Sam"}}))
	assert.Equal(t, 1, n)
	assert.Contains(t, buf.String(), "2025-01-10      Call Sam")
}

func TestMenu(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf, false).Menu("2025-01-10")

	out := buf.String()
	assert.Contains(t, out, "To-Do List Manager")
	assert.Contains(t, out, "Today's Date: 2025-01-10")
	assert.Contains(t, out, "1. Add Task\n")
	assert.Contains(t, out, "7. Exit\n")
}

func TestPrinter_QuietSuppressesSuccessOnly(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, false)
	p.Quiet = true

	p.Success("Task added successfully!")
	p.Error("Task with ID %d not found!", 4)
	assert.Equal(t, "Task with ID 4 not found!\n", buf.String())
}

func TestPrinter_NoColorIsPlain(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, false)
	p.Warn("No tasks available!")
	p.Prompt("Enter note: ")
	assert.Equal(t, "No tasks available!\nEnter note: ", buf.String())
	assert.NotContains(t, buf.String(), "\x1b[")
}

func TestPrinter_ClearOnlyOnTerminal(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, true)
	p.Clear()
	assert.False(t, p.IsTerminal())
	assert.Empty(t, buf.String())
}
