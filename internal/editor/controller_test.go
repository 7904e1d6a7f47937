package editor

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyBoldCaretAfterRun(t *testing.T) {
	c := NewController("Hi Sir, thanks")
	c.Buffer().Select(3, 6)

	require.True(t, c.ApplyBold())
	assert.Equal(t, "Hi 𝐒𝐢𝐫, thanks", c.Text())
	assert.Equal(t, 3+utf8.RuneCountInString("𝐒𝐢𝐫"), c.Buffer().Caret())
	_, _, ok := c.Buffer().Selection()
	assert.False(t, ok)
}

func TestApplyBoldEmptySelectionIsNoop(t *testing.T) {
	c := NewController("abc")
	c.Buffer().SetCaret(1)

	assert.False(t, c.ApplyBold())
	assert.Equal(t, "abc", c.Text())
	assert.Equal(t, 1, c.History().Len())
}

func TestApplyBoldPreservesScroll(t *testing.T) {
	lines := make([]string, 20)
	for i := range lines {
		lines[i] = "line"
	}
	c := NewController(strings.Join(lines, "\n"))
	buf := c.Buffer()
	buf.SetSize(0, 5)

	// Selection on the first row while the view is scrolled down.
	buf.Select(0, 4)
	buf.SetScrollOffset(2)
	require.Equal(t, 2, buf.ScrollOffset())

	require.True(t, c.ApplyBold())
	assert.Equal(t, 2, buf.ScrollOffset())
	assert.Equal(t, 4, buf.Caret())
}

func TestApplyBoldIsOneUndoStep(t *testing.T) {
	c := NewController("make this bold")
	c.Buffer().Select(10, 14)
	require.True(t, c.ApplyBold())

	require.True(t, c.Undo())
	assert.Equal(t, "make this bold", c.Text())
	require.True(t, c.Redo())
	assert.Equal(t, "make this 𝐛𝐨𝐥𝐝", c.Text())
}

func TestUndoClampsCaret(t *testing.T) {
	c := NewController("ab")
	buf := c.Buffer()
	buf.SetCaret(2)
	buf.Insert("cdef")
	ticket, ok := c.Edited()
	require.True(t, ok)
	require.True(t, c.Commit(ticket))
	require.Equal(t, 6, buf.Caret())

	require.True(t, c.Undo())
	assert.Equal(t, "ab", c.Text())
	assert.Equal(t, 2, buf.Caret())
}

func TestTypedEditAfterUndoIsRecorded(t *testing.T) {
	c := NewController("A")
	buf := c.Buffer()
	buf.SetCaret(1)
	buf.Insert("B")
	c.Edited()
	require.True(t, c.Undo(), "pending edit is flushed then undone")
	assert.Equal(t, "A", c.Text())

	buf.SetCaret(1)
	buf.Insert("D")
	ticket, ok := c.Edited()
	require.True(t, ok)
	require.True(t, c.Commit(ticket))
	assert.Equal(t, []string{"A", "AD"}, c.History().Snapshots())
}

func TestLoadResetsHistory(t *testing.T) {
	c := NewController("old")
	c.Buffer().SelectAll()
	c.ApplyBold()

	c.Load("new body")
	assert.Equal(t, "new body", c.Text())
	assert.Equal(t, []string{"new body"}, c.History().Snapshots())
	assert.False(t, c.Undo())
}
