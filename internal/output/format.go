package output

import (
	"fmt"
	"iter"
	"strings"

	"todolist/internal/service"
)

const (
	taskRule = "------------------------------------------------------------------------------------------------"
	noteRule = "------------------------------------------------------------"
	menuRule = "========================================"
)

// taskRow is the column layout of the task table:
// ID, Task, Priority, Status, Deadline, Category, Time Left.
const taskRow = "%-5v %-30s %-10s %-10s %-12s %-15s %-20s"

// noteRow is the column layout of the note table: Date, Note.
const noteRow = "%-15s %-50s"

// TaskTable prints the task table header and one row per task, returning
// the number of rows written.
func (p *Printer) TaskTable(tasks iter.Seq[service.TaskView]) int {
	fmt.Fprintln(p.w)
	fmt.Fprintln(p.w, p.header.Render(fmt.Sprintf(taskRow, "ID", "Task", "Priority", "Status", "Deadline", "Category", "Time Left")))
	fmt.Fprintln(p.w, p.header.Render(taskRule))

	n := 0
	for t := range tasks {
		fmt.Fprintf(p.w, taskRow+"\n",
			t.ID, singleLine(t.Description), t.Priority, t.Status, t.Deadline, t.Category, t.TimeLeft)
		n++
	}
	return n
}

// NoteTable prints the note table header and one row per note, returning
// the number of rows written.
func (p *Printer) NoteTable(notes iter.Seq[service.Note]) int {
	fmt.Fprintln(p.w)
	fmt.Fprintln(p.w, p.header.Render(fmt.Sprintf(noteRow, "Date", "Note")))
	fmt.Fprintln(p.w, p.header.Render(noteRule))

	n := 0
	for note := range notes {
		fmt.Fprintf(p.w, noteRow+"\n", note.Date, singleLine(note.Content))
		n++
	}
	return n
}

// MenuItems are the interactive menu entries, numbered from 1.
var MenuItems = []string{
	"Add Task",
	"View Tasks",
	"Delete Task",
	"Mark Task as Completed",
	"Add Daily Note",
	"View Notes",
	"Exit",
}

// Menu prints the banner, today's date and the numbered entries.
func (p *Printer) Menu(today string) {
	fmt.Fprintln(p.w)
	fmt.Fprintln(p.w, p.banner.Render(menuRule))
	fmt.Fprintln(p.w, p.banner.Render("          To-Do List Manager           "))
	fmt.Fprintln(p.w, p.banner.Render(menuRule))
	fmt.Fprintln(p.w, p.prompt.Render("Today's Date: "+today))
	fmt.Fprintln(p.w)
	for i, item := range MenuItems {
		fmt.Fprintln(p.w, p.prompt.Render(fmt.Sprintf("%d. %s", i+1, item)))
	}
	fmt.Fprintln(p.w, p.banner.Render(menuRule))
}

// singleLine keeps table rows on one line.
func singleLine(s string) string {
	s = strings.ReplaceAll(s, "\r", " ")
	return strings.ReplaceAll(s, "\n", " ")
}
