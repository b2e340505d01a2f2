// Package prompt is the console input boundary. Commands ask questions
// through a Prompter and never read standard input themselves, so every
// flow can be driven from a string in tests.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"todolist/internal/errs"
	"todolist/internal/output"
)

// ErrNotANumber is returned by ReadInt when the answer is not an integer.
var ErrNotANumber = errs.New(errs.MalformedInput, "not a number")

// Prompter reads operator answers line by line.
type Prompter struct {
	in  io.Reader
	r   *bufio.Reader
	out *output.Printer
}

// New creates a Prompter reading from in and printing labels to out.
func New(in io.Reader, out *output.Printer) *Prompter {
	return &Prompter{in: in, r: bufio.NewReader(in), out: out}
}

// ReadLine prints label and returns the next line without its line ending.
// A final line without a newline is returned as-is; no data at all is io.EOF.
func (p *Prompter) ReadLine(label string) (string, error) {
	p.out.Prompt(label)
	return p.line()
}

// ReadField prints label and returns the next non-blank line with leading
// blanks removed. Blank lines are skipped without asking again.
func (p *Prompter) ReadField(label string) (string, error) {
	p.out.Prompt(label)
	return p.nonBlank()
}

// ReadInt prints label and parses the leading integer of the next
// non-blank line. The rest of the line is always consumed, so stray
// characters never leak into the next prompt.
func (p *Prompter) ReadInt(label string) (int, error) {
	p.out.Prompt(label)
	line, err := p.nonBlank()
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(leadingInt(line))
	if err != nil {
		return 0, ErrNotANumber
	}
	return n, nil
}

// ReadSecret prints label and reads a line without echo when input is a
// terminal; otherwise it behaves like ReadLine.
func (p *Prompter) ReadSecret(label string) (string, error) {
	f, ok := p.in.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) || p.r.Buffered() > 0 {
		return p.ReadLine(label)
	}

	p.out.Prompt(label)
	secret, err := term.ReadPassword(int(f.Fd()))
	fmt.Fprintln(p.out.Writer())
	if err != nil {
		return "", err
	}
	return string(secret), nil
}

// Pause prints label and waits for Enter.
func (p *Prompter) Pause(label string) error {
	_, err := p.ReadLine(label)
	return err
}

func (p *Prompter) line() (string, error) {
	s, err := p.r.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && s != "" {
			return trimEOL(s), nil
		}
		return "", err
	}
	return trimEOL(s), nil
}

func (p *Prompter) nonBlank() (string, error) {
	for {
		s, err := p.line()
		if err != nil {
			return "", err
		}
		if s = strings.TrimLeft(s, " \t\v\f"); s != "" {
			return s, nil
		}
	}
}

func trimEOL(s string) string {
	s = strings.TrimSuffix(s, "\n")
	return strings.TrimSuffix(s, "\r")
}

// leadingInt returns the optional sign and digits that begin s.
func leadingInt(s string) string {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return s[:i]
}
