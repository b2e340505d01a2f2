package gate

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todolist/internal/errs"
)

// scripted answers prompts in order and records the labels it saw.
type scripted struct {
	answers []string
	labels  []string
}

func (s *scripted) ReadSecret(label string) (string, error) {
	s.labels = append(s.labels, label)
	if len(s.answers) == 0 {
		return "", io.EOF
	}
	a := s.answers[0]
	s.answers = s.answers[1:]
	return a, nil
}

func newGate(t *testing.T) (*Gate, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "password.txt")
	return New(path, slog.New(slog.DiscardHandler)), path
}

func TestUnlock_FirstRunStoresPassword(t *testing.T) {
	g, path := newGate(t)
	ask := &scripted{answers: []string{"secret"}}

	res, err := g.Unlock(ask)
	require.NoError(t, err)
	assert.True(t, res.FirstRun)
	assert.Equal(t, []string{PromptCreate}, ask.labels)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "secret", string(data))
}

func TestUnlock_EmptyFileIsFirstRun(t *testing.T) {
	g, path := newGate(t)
	require.NoError(t, os.WriteFile(path, nil, 0600))

	res, err := g.Unlock(&scripted{answers: []string{"fresh"}})
	require.NoError(t, err)
	assert.True(t, res.FirstRun)
}

func TestUnlock_Correct(t *testing.T) {
	g, path := newGate(t)
	require.NoError(t, os.WriteFile(path, []byte("secret\n"), 0600))
	ask := &scripted{answers: []string{"secret"}}

	res, err := g.Unlock(ask)
	require.NoError(t, err)
	assert.False(t, res.FirstRun)
	assert.Equal(t, []string{PromptEnter}, ask.labels)
}

func TestUnlock_Wrong(t *testing.T) {
	g, path := newGate(t)
	require.NoError(t, os.WriteFile(path, []byte("secret\n"), 0600))

	_, err := g.Unlock(&scripted{answers: []string{"wrong"}})
	assert.ErrorIs(t, err, ErrDenied)
	assert.Equal(t, errs.AccessDenied, errs.CodeOf(err))
}

func TestUnlock_CaseSensitive(t *testing.T) {
	g, path := newGate(t)
	require.NoError(t, os.WriteFile(path, []byte("Secret"), 0600))

	_, err := g.Unlock(&scripted{answers: []string{"secret"}})
	assert.ErrorIs(t, err, ErrDenied)
}

func TestUnlock_LongPasswordsCompareOnFirst49Bytes(t *testing.T) {
	g, path := newGate(t)
	long := strings.Repeat("p", 60)

	_, err := g.Unlock(&scripted{answers: []string{long}})
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Len(t, data, MaxPasswordLen)

	_, err = g.Unlock(&scripted{answers: []string{long + "extra"}})
	assert.NoError(t, err)
}

func TestUnlock_NoInput(t *testing.T) {
	g, path := newGate(t)

	_, err := g.Unlock(&scripted{})
	assert.Equal(t, errs.MalformedInput, errs.CodeOf(err))
	_, statErr := os.Stat(path)
	assert.True(t, errors.Is(statErr, os.ErrNotExist), "nothing stored on failed first run")

	_, err = g.Unlock(&scripted{answers: []string{"   "}})
	assert.Equal(t, errs.MalformedInput, errs.CodeOf(err))
}

func TestUnlock_CannotCreateFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "password.txt")
	g := New(path, slog.New(slog.DiscardHandler))

	_, err := g.Unlock(&scripted{answers: []string{"secret"}})
	assert.Equal(t, errs.IOFailure, errs.CodeOf(err))
}

func TestChange(t *testing.T) {
	g, path := newGate(t)
	require.NoError(t, os.WriteFile(path, []byte("old"), 0600))

	err := g.Change(&scripted{answers: []string{"bad", "new"}})
	assert.ErrorIs(t, err, ErrDenied)

	ask := &scripted{answers: []string{"old", "new"}}
	require.NoError(t, g.Change(ask))
	assert.Equal(t, []string{PromptCurrent, PromptNew}, ask.labels)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))
}

func TestUnlock_StoredPasswordNormalizedLikeInput(t *testing.T) {
	for name, content := range map[string]string{
		"crlf":          "secret\r\n",
		"leading blank": "  secret",
		"tab and crlf":  "\tsecret\r\nsecond line",
	} {
		t.Run(name, func(t *testing.T) {
			g, path := newGate(t)
			require.NoError(t, os.WriteFile(path, []byte(content), 0600))

			res, err := g.Unlock(&scripted{answers: []string{"secret"}})
			require.NoError(t, err)
			assert.False(t, res.FirstRun)
		})
	}
}

func TestUnlock_BlankOnlyFileIsFirstRun(t *testing.T) {
	g, path := newGate(t)
	require.NoError(t, os.WriteFile(path, []byte("  \r\n"), 0600))

	ask := &scripted{answers: []string{"fresh"}}
	res, err := g.Unlock(ask)
	require.NoError(t, err)
	assert.True(t, res.FirstRun)
	assert.Equal(t, []string{PromptCreate}, ask.labels)
}
