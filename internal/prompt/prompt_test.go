package prompt

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todolist/internal/errs"
	"todolist/internal/output"
)

func newPrompter(input string) (*Prompter, *bytes.Buffer) {
	var out bytes.Buffer
	return New(strings.NewReader(input), output.NewPrinter(&out, false)), &out
}

func TestReadLine(t *testing.T) {
	p, out := newPrompter("  Write report \r\nlast")

	got, err := p.ReadLine("Enter task description: ")
	require.NoError(t, err)
	assert.Equal(t, "  Write report ", got)
	assert.Equal(t, "Enter task description: ", out.String())

	got, err = p.ReadLine("again: ")
	require.NoError(t, err)
	assert.Equal(t, "last", got)

	_, err = p.ReadLine("eof: ")
	assert.ErrorIs(t, err, io.EOF)
}

func TestReadField_SkipsBlankLines(t *testing.T) {
	p, _ := newPrompter("\n   \n  High\n")
	got, err := p.ReadField("Enter priority (High/Medium/Low): ")
	require.NoError(t, err)
	assert.Equal(t, "High", got)
}

func TestReadInt(t *testing.T) {
	p, _ := newPrompter("3\n 12abc\n-1\n")
	for _, want := range []int{3, 12, -1} {
		got, err := p.ReadInt("id: ")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestReadInt_MalformedResynchronizes(t *testing.T) {
	p, _ := newPrompter("abc 7\nnext line\n")

	_, err := p.ReadInt("id: ")
	assert.ErrorIs(t, err, ErrNotANumber)
	assert.Equal(t, errs.MalformedInput, errs.CodeOf(err))

	got, err := p.ReadLine("text: ")
	require.NoError(t, err)
	assert.Equal(t, "next line", got, "the malformed line must be consumed whole")
}

func TestReadSecret_NonTerminal(t *testing.T) {
	p, out := newPrompter("secret\n")
	got, err := p.ReadSecret("Enter password: ")
	require.NoError(t, err)
	assert.Equal(t, "secret", got)
	assert.Equal(t, "Enter password: ", out.String())
}

func TestPause(t *testing.T) {
	p, _ := newPrompter("\nafter\n")
	require.NoError(t, p.Pause("Press Enter to continue..."))
	got, err := p.ReadLine("")
	require.NoError(t, err)
	assert.Equal(t, "after", got)
}
