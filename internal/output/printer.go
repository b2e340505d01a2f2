// Package output renders status lines, tables and the menu for the console.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// ANSI colors used by the console output.
var (
	RedColor     = lipgloss.Color("1")
	GreenColor   = lipgloss.Color("2")
	YellowColor  = lipgloss.Color("3")
	BlueColor    = lipgloss.Color("4")
	MagentaColor = lipgloss.Color("5")
	CyanColor    = lipgloss.Color("6")
)

// clearScreen homes the cursor and erases the display.
const clearScreen = "\x1b[H\x1b[2J"

// Printer writes styled lines to one writer. Styles come from a renderer
// bound to that writer, so colors appear only when it is a color terminal.
type Printer struct {
	w        io.Writer
	terminal bool

	// Quiet suppresses success lines.
	Quiet bool

	success lipgloss.Style
	failure lipgloss.Style
	warning lipgloss.Style
	prompt  lipgloss.Style
	header  lipgloss.Style
	banner  lipgloss.Style
}

// NewPrinter creates a Printer for w. With color false every style renders
// plain text.
func NewPrinter(w io.Writer, color bool) *Printer {
	r := lipgloss.NewRenderer(w)
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}
	return &Printer{
		w:        w,
		terminal: isTerminal(w),
		success:  r.NewStyle().Foreground(GreenColor),
		failure:  r.NewStyle().Foreground(RedColor),
		warning:  r.NewStyle().Foreground(YellowColor),
		prompt:   r.NewStyle().Foreground(CyanColor),
		header:   r.NewStyle().Foreground(BlueColor),
		banner:   r.NewStyle().Foreground(MagentaColor),
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Writer returns the underlying writer.
func (p *Printer) Writer() io.Writer {
	return p.w
}

// IsTerminal reports whether the writer is an interactive terminal.
func (p *Printer) IsTerminal() bool {
	return p.terminal
}

// Success prints a green line unless Quiet is set.
func (p *Printer) Success(format string, args ...any) {
	if p.Quiet {
		return
	}
	p.line(p.success, fmt.Sprintf(format, args...))
}

// Error prints a red line.
func (p *Printer) Error(format string, args ...any) {
	p.line(p.failure, fmt.Sprintf(format, args...))
}

// Warn prints a yellow line.
func (p *Printer) Warn(format string, args ...any) {
	p.line(p.warning, fmt.Sprintf(format, args...))
}

// Plain prints an unstyled line.
func (p *Printer) Plain(format string, args ...any) {
	fmt.Fprintf(p.w, format+"\n", args...)
}

// Prompt prints a cyan label without a trailing newline.
func (p *Printer) Prompt(label string) {
	fmt.Fprint(p.w, p.prompt.Render(label))
}

// Clear erases the screen when writing to a terminal.
func (p *Printer) Clear() {
	if p.terminal {
		fmt.Fprint(p.w, clearScreen)
	}
}

func (p *Printer) line(style lipgloss.Style, text string) {
	fmt.Fprintln(p.w, style.Render(text))
}
