package flatfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"todolist/internal/service"
)

// taskFieldCount is the number of lines making up one task record.
const taskFieldCount = 6

// noteBlanks are skipped at the start of note content, both when a note is
// added and when it is read back after the "date:" prefix.
const noteBlanks = " \t\r\v\f"

// lineReader yields newline-terminated lines without their trailing "\n".
type lineReader struct {
	r   *bufio.Reader
	err error
}

func newLineReader(r io.Reader) *lineReader {
	return &lineReader{r: bufio.NewReader(r)}
}

// next returns the next line. ok is false at end of input or on a read
// error; a final line without "\n" still counts.
func (lr *lineReader) next() (string, bool) {
	if lr.err != nil {
		return "", false
	}
	line, err := lr.r.ReadString('\n')
	if err != nil {
		lr.err = err
		if line == "" {
			return "", false
		}
	}
	return strings.TrimSuffix(line, "\n"), true
}

// nextNonBlank skips lines that are empty or whitespace only.
func (lr *lineReader) nextNonBlank() (string, bool) {
	for {
		line, ok := lr.next()
		if !ok || strings.TrimSpace(line) != "" {
			return line, ok
		}
	}
}

// failure returns the read error, ignoring io.EOF.
func (lr *lineReader) failure() error {
	if lr.err == nil || errors.Is(lr.err, io.EOF) {
		return nil
	}
	return lr.err
}

// Decoded carries the result of decoding a backing file.
type Decoded[T any] struct {
	Records []T
	// Discarded is true when decoding stopped with unread data left:
	// a malformed or incomplete record, or records beyond capacity.
	Discarded bool
}

// DecodeTasks reads task records until a record is incomplete or
// malformed, the input ends, or max records have been read.
// Blank lines between records are skipped; the five text fields must each
// be a non-empty line. Fields are kept byte-for-byte up to their width and
// cut like entered input beyond it.
func DecodeTasks(r io.Reader, max int) (Decoded[service.Task], error) {
	var out Decoded[service.Task]
	lr := newLineReader(r)

	for len(out.Records) < max {
		head, ok := lr.nextNonBlank()
		if !ok {
			return out, lr.failure()
		}
		task, ok := decodeTask(head, lr)
		if !ok {
			out.Discarded = true
			return out, lr.failure()
		}
		out.Records = append(out.Records, task)
	}

	if _, ok := lr.nextNonBlank(); ok {
		out.Discarded = true
	}
	return out, lr.failure()
}

func decodeTask(head string, lr *lineReader) (service.Task, bool) {
	id, err := strconv.Atoi(strings.TrimSpace(head))
	if err != nil {
		return service.Task{}, false
	}

	var fields [taskFieldCount - 1]string
	for i := range fields {
		line, ok := lr.next()
		if !ok || line == "" {
			return service.Task{}, false
		}
		fields[i] = line
	}

	return service.Task{
		ID:          id,
		Description: truncate(fields[0], service.MaxDescriptionLen),
		Priority:    truncate(fields[1], service.MaxPriorityLen),
		Status:      truncate(fields[2], service.MaxStatusLen),
		Deadline:    truncate(fields[3], service.MaxDeadlineLen),
		Category:    truncate(fields[4], service.MaxCategoryLen),
	}, true
}

// EncodeTasks writes every task, one field per line, six lines per record.
func EncodeTasks(w io.Writer, tasks []service.Task) error {
	bw := bufio.NewWriter(w)
	for _, t := range tasks {
		if _, err := fmt.Fprintf(bw, "%d\n%s\n%s\n%s\n%s\n%s\n",
			t.ID, t.Description, t.Priority, t.Status, t.Deadline, t.Category); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// DecodeNotes reads "date: content" lines until a line does not match,
// the input ends, or max notes have been read. The date is the text before
// the first colon (1 to 14 bytes); blanks after the colon are skipped and
// the remaining content must be non-empty. Content is cut to its width.
func DecodeNotes(r io.Reader, max int) (Decoded[service.Note], error) {
	var out Decoded[service.Note]
	lr := newLineReader(r)

	for len(out.Records) < max {
		line, ok := lr.nextNonBlank()
		if !ok {
			return out, lr.failure()
		}
		note, ok := decodeNote(line)
		if !ok {
			out.Discarded = true
			return out, lr.failure()
		}
		out.Records = append(out.Records, note)
	}

	if _, ok := lr.nextNonBlank(); ok {
		out.Discarded = true
	}
	return out, lr.failure()
}

func decodeNote(line string) (service.Note, bool) {
	date, content, ok := strings.Cut(line, ":")
	if !ok || date == "" || len(date) > service.MaxNoteDateLen {
		return service.Note{}, false
	}
	content = strings.TrimLeft(content, noteBlanks)
	if content == "" {
		return service.Note{}, false
	}
	return service.Note{Date: date, Content: truncate(content, service.MaxNoteContentLen)}, true
}

// EncodeNotes writes every note as "date: content".
func EncodeNotes(w io.Writer, notes []service.Note) error {
	bw := bufio.NewWriter(w)
	for _, n := range notes {
		if _, err := fmt.Fprintf(bw, "%s: %s\n", n.Date, n.Content); err != nil {
			return err
		}
	}
	return bw.Flush()
}
