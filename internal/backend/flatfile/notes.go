package flatfile

import (
	"io"
	"iter"
	"log/slog"
	"slices"
	"strings"

	"todolist/internal/errs"
	"todolist/internal/service"
)

// NoteStore holds up to max notes in insertion order, backed by one note file.
type NoteStore struct {
	path  string
	max   int
	log   *slog.Logger
	notes []service.Note
}

// OpenNoteStore loads the note file at path. A missing file is an empty store.
func OpenNoteStore(path string, max int, log *slog.Logger) (*NoteStore, error) {
	s := &NoteStore{path: path, max: max, log: log.With("store", "notes")}

	f, err := openIfExists(path)
	if err != nil {
		return nil, errs.Wrap(errs.IOFailure, "Error loading notes", err)
	}
	if f == nil {
		s.log.Debug("note file absent, starting empty", "path", path)
		return s, nil
	}
	defer f.Close()

	decoded, err := DecodeNotes(f, max)
	if err != nil {
		return nil, errs.Wrap(errs.IOFailure, "Error loading notes", err)
	}
	s.notes = decoded.Records
	if decoded.Discarded {
		s.log.Warn("discarded unreadable trailing note data", "path", path, "kept", len(s.notes))
	}
	s.log.Debug("loaded notes", "path", path, "count", len(s.notes))
	return s, nil
}

// Len returns the number of stored notes.
func (s *NoteStore) Len() int {
	return len(s.notes)
}

// Matching yields notes in insertion order. An empty date matches every
// note; otherwise the date must be equal byte-for-byte.
func (s *NoteStore) Matching(date string) iter.Seq[service.Note] {
	return func(yield func(service.Note) bool) {
		for _, n := range s.notes {
			if date != "" && n.Date != date {
				continue
			}
			if !yield(n) {
				return
			}
		}
	}
}

// Has reports whether any note carries exactly date.
func (s *NoteStore) Has(date string) bool {
	return slices.ContainsFunc(s.notes, func(n service.Note) bool { return n.Date == date })
}

// Add appends a note and saves, returning the number of notes written.
// Leading blanks of the content are dropped and a date may not contain ':',
// so every accepted note reads back unchanged.
func (s *NoteStore) Add(in service.Note) (int, error) {
	if len(s.notes) >= s.max {
		return 0, errs.ErrNoteListFull
	}

	note := service.Note{
		Date:    field(in.Date, service.MaxNoteDateLen),
		Content: field(strings.TrimLeft(in.Content, noteBlanks), service.MaxNoteContentLen),
	}
	// The note file separates date and content at the first colon.
	if strings.TrimSpace(note.Date) == "" || strings.Contains(note.Date, ":") {
		return 0, errs.New(errs.MalformedInput, "Invalid date!")
	}
	if strings.TrimSpace(note.Content) == "" {
		return 0, errs.New(errs.MalformedInput, "Error reading note.")
	}

	s.notes = append(s.notes, note)
	return len(s.notes), s.Save()
}

// Save overwrites the note file with the whole store.
func (s *NoteStore) Save() error {
	if err := overwrite(s.path, func(w io.Writer) error { return EncodeNotes(w, s.notes) }); err != nil {
		s.log.Error("failed to save notes", "path", s.path, "error", err)
		return errs.Wrap(errs.IOFailure, "Error: Could not save notes to file.", err)
	}
	s.log.Debug("saved notes", "path", s.path, "count", len(s.notes))
	return nil
}
