package flatfile

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"todolist/internal/errs"
	"todolist/internal/service"
)

func openNotes(t *testing.T, max int) (*NoteStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "notes.txt")
	s, err := OpenNoteStore(path, max, discard)
	require.NoError(t, err)
	return s, path
}

func TestNoteStore_AddAndReload(t *testing.T) {
	s, path := openNotes(t, 1000)

	n, err := s.Add(service.Note{Date: "2025-01-10", Content: "Standup at 10:30"})
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	n, err = s.Add(service.Note{Date: "2025-01-10", Content: "Second note same day"})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "2025-01-10: Standup at 10:30\n2025-01-10: Second note same day\n", string(data))

	reloaded, err := OpenNoteStore(path, 1000, discard)
	require.NoError(t, err)
	assert.Equal(t, slices.Collect(s.Matching("")), slices.Collect(reloaded.Matching("")))
}

func TestNoteStore_Matching(t *testing.T) {
	s, _ := openNotes(t, 1000)
	for _, n := range []service.Note{
		{Date: "2025-01-10", Content: "a"},
		{Date: "2025-01-11", Content: "b"},
		{Date: "2025-01-10", Content: "c"},
		{Date: "2025-01-1", Content: "prefix is not a match"},
	} {
		_, err := s.Add(n)
		require.NoError(t, err)
	}

	var got []string
	for n := range s.Matching("2025-01-10") {
		got = append(got, n.Content)
	}
	assert.Equal(t, []string{"a", "c"}, got)

	assert.Len(t, slices.Collect(s.Matching("")), 4)
	assert.Empty(t, slices.Collect(s.Matching("2025-01-12")))
	assert.True(t, s.Has("2025-01-1"))
	assert.False(t, s.Has("2025-01"))
}

func TestNoteStore_Full(t *testing.T) {
	s, _ := openNotes(t, 1)
	_, err := s.Add(service.Note{Date: "d", Content: "x"})
	require.NoError(t, err)

	_, err = s.Add(service.Note{Date: "d", Content: "y"})
	assert.ErrorIs(t, err, errs.ErrNoteListFull)
	assert.Equal(t, 1, s.Len())
}

func TestNoteStore_RejectsBlank(t *testing.T) {
	s, _ := openNotes(t, 10)
	_, err := s.Add(service.Note{Date: "", Content: "x"})
	assert.Equal(t, errs.MalformedInput, errs.CodeOf(err))
	_, err = s.Add(service.Note{Date: "2025-01-10", Content: "  "})
	assert.Equal(t, errs.MalformedInput, errs.CodeOf(err))
	assert.Equal(t, 0, s.Len())
}

func TestNoteStore_StopsAtCapacityOnLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("a: 1\nb: 2\nc: 3\n"), 0644))

	s, err := OpenNoteStore(path, 2, discard)
	require.NoError(t, err)
	assert.Equal(t, 2, s.Len())
}

func TestNoteStore_SaveFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope", "notes.txt")
	s, err := OpenNoteStore(path, 10, discard)
	require.NoError(t, err)

	n, err := s.Add(service.Note{Date: "2025-01-10", Content: "x"})
	assert.True(t, errs.IsWarning(err))
	assert.Equal(t, "Error: Could not save notes to file.", errs.MessageOf(err))
	assert.Equal(t, 1, n)
	assert.Equal(t, 1, s.Len())
}

func TestNoteStore_AddNormalizesForReload(t *testing.T) {
	s, path := openNotes(t, 10)

	_, err := s.Add(service.Note{Date: "2025-01-10", Content: "  \tindented"})
	require.NoError(t, err)
	_, err = s.Add(service.Note{Date: "10:30", Content: "meeting"})
	assert.Equal(t, errs.MalformedInput, errs.CodeOf(err))
	assert.Equal(t, "Invalid date!", errs.MessageOf(err))

	want := []service.Note{{Date: "2025-01-10", Content: "indented"}}
	assert.Equal(t, want, slices.Collect(s.Matching("")))

	reloaded, err := OpenNoteStore(path, 10, discard)
	require.NoError(t, err)
	assert.Equal(t, want, slices.Collect(reloaded.Matching("")))
}

// testNoteReload adds random notes, including dates with colons and content
// with leading blanks, and checks that whatever Add accepted reads back
// unchanged from the file.
func testNoteReload(dir string) func(*rapid.T) {
	return func(t *rapid.T) {
		path := filepath.Join(dir, "notes.txt")
		_ = os.Remove(path)
		s, err := OpenNoteStore(path, 1000, discard)
		if err != nil {
			t.Fatalf("open: %v", err)
		}

		n := rapid.IntRange(1, 20).Draw(t, "n")
		for i := 0; i < n; i++ {
			in := service.Note{
				Date:    rapid.StringMatching(`[ 0-9a-z:-]{0,16}`).Draw(t, "date"),
				Content: rapid.StringMatching(`[ \t]{0,3}[A-Za-z0-9 ,.!?:/#-]{0,40}`).Draw(t, "content"),
			}
			before := s.Len()
			_, err := s.Add(in)
			if err != nil {
				if !errs.Is(err, errs.MalformedInput) {
					t.Fatalf("add %+v: %v", in, err)
				}
				if s.Len() != before {
					t.Fatalf("rejected note %+v was stored", in)
				}
				continue
			}
			if strings.Contains(in.Date, ":") {
				t.Fatalf("date %q with a colon was accepted", in.Date)
			}
		}

		reloaded, err := OpenNoteStore(path, 1000, discard)
		if err != nil {
			t.Fatalf("reopen: %v", err)
		}
		got, want := slices.Collect(reloaded.Matching("")), slices.Collect(s.Matching(""))
		if len(got) != len(want) {
			t.Fatalf("reloaded %d notes, stored %d", len(got), len(want))
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("note %d changed on reload: got=%+v want=%+v", i, got[i], want[i])
			}
		}
	}
}

func TestNoteStore_ReloadMatchesStore(t *testing.T) {
	rapid.Check(t, testNoteReload(t.TempDir()))
}
