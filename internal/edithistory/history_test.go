package edithistory

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// edit records and immediately commits a typed edit, as if the debounce
// delay had elapsed.
func edit(t *testing.T, h *History, text string) {
	t.Helper()
	ticket, ok := h.RecordEdit(text)
	require.True(t, ok, "edit %q was not scheduled", text)
	require.True(t, h.Commit(ticket))
}

func TestUndoRedoAtomicEdit(t *testing.T) {
	h := New("A")
	h.RecordAtomicEdit("AB")

	got, ok := h.Undo()
	require.True(t, ok)
	assert.Equal(t, "A", got)

	got, ok = h.Redo()
	require.True(t, ok)
	assert.Equal(t, "AB", got)
}

func TestLimitEvictsOldest(t *testing.T) {
	h := New("e0")
	for i := 1; i <= 60; i++ {
		h.RecordAtomicEdit(fmt.Sprintf("e%d", i))
	}
	assert.Equal(t, 50, h.Len())
	assert.Equal(t, 49, h.Cursor())
	assert.Equal(t, "e60", h.Current())

	var last string
	for i := 0; i < 50; i++ {
		if s, ok := h.Undo(); ok {
			last = s
		}
	}
	assert.Equal(t, "e11", last)
	assert.Equal(t, "e11", h.Current())
	assert.NotContains(t, h.Snapshots(), "e0")
	_, ok := h.Undo()
	assert.False(t, ok)
}

func TestBranchingDiscardsForwardHistory(t *testing.T) {
	h := New("A")
	edit(t, h, "B")
	edit(t, h, "C")

	_, _ = h.Undo()
	got, _ := h.Undo()
	require.Equal(t, "A", got)

	// The echo of the undo write is swallowed.
	_, scheduled := h.RecordEdit("A")
	assert.False(t, scheduled)

	edit(t, h, "D")
	assert.Equal(t, []string{"A", "D"}, h.Snapshots())
	_, ok := h.Redo()
	assert.False(t, ok)
}

func TestRecordEditDebounce(t *testing.T) {
	h := New("")
	t1, ok := h.RecordEdit("h")
	require.True(t, ok)
	t2, _ := h.RecordEdit("he")
	t3, _ := h.RecordEdit("hel")
	assert.Equal(t, ModeRecording, h.Mode())

	assert.False(t, h.Commit(t1), "stale ticket")
	assert.False(t, h.Commit(t2), "stale ticket")
	assert.Equal(t, 1, h.Len())

	assert.True(t, h.Commit(t3))
	assert.Equal(t, []string{"", "hel"}, h.Snapshots())
	assert.Equal(t, ModeIdle, h.Mode())
	assert.False(t, h.Commit(t3), "already committed")
}

func TestRecordEditUnchangedIsNoop(t *testing.T) {
	h := New("A")
	_, ok := h.RecordEdit("A")
	assert.False(t, ok)
	assert.Equal(t, 1, h.Len())

	// Typing away and back cancels the pending edit.
	t1, _ := h.RecordEdit("AB")
	_, ok = h.RecordEdit("A")
	assert.False(t, ok)
	assert.False(t, h.Commit(t1))
	assert.Equal(t, 1, h.Len())
}

func TestUndoFlushesPendingEdit(t *testing.T) {
	h := New("A")
	_, _ = h.RecordEdit("AB")
	assert.True(t, h.CanUndo())

	got, ok := h.Undo()
	require.True(t, ok)
	assert.Equal(t, "A", got)

	got, ok = h.Redo()
	require.True(t, ok)
	assert.Equal(t, "AB", got)
}

func TestAtomicEditBypassesUnchangedCheck(t *testing.T) {
	h := New("A")
	h.RecordAtomicEdit("A")
	assert.Equal(t, 2, h.Len())
	assert.Equal(t, ModeApplyingHistoryEntry, h.Mode())

	_, ok := h.RecordEdit("A")
	assert.False(t, ok, "echo of the atomic write")
	assert.Equal(t, ModeIdle, h.Mode())
}

func TestApplyingModeOnlySwallowsEcho(t *testing.T) {
	h := New("A")
	h.RecordAtomicEdit("AB")
	_, _ = h.Undo()

	ticket, ok := h.RecordEdit("AX")
	require.True(t, ok, "a different text is a real edit")
	require.True(t, h.Commit(ticket))
	assert.Equal(t, []string{"A", "AX"}, h.Snapshots())
}

func TestAtomicEditCommitsPendingFirst(t *testing.T) {
	h := New("a")
	_, _ = h.RecordEdit("ab")
	h.RecordAtomicEdit("𝐚𝐛")

	assert.Equal(t, []string{"a", "ab", "𝐚𝐛"}, h.Snapshots())
	got, _ := h.Undo()
	assert.Equal(t, "ab", got)
}

func TestResetClearsEverything(t *testing.T) {
	h := New("A", WithLimit(3), WithDelay(10*time.Millisecond))
	h.RecordAtomicEdit("B")
	ticket, _ := h.RecordEdit("BC")

	h.Reset("Z")
	assert.Equal(t, []string{"Z"}, h.Snapshots())
	assert.False(t, h.Commit(ticket))
	assert.False(t, h.CanUndo())
	assert.False(t, h.CanRedo())
	assert.Equal(t, 10*time.Millisecond, h.Delay())
}

func TestCustomLimit(t *testing.T) {
	h := New("0", WithLimit(3))
	for _, s := range []string{"1", "2", "3", "4"} {
		h.RecordAtomicEdit(s)
	}
	assert.Equal(t, []string{"2", "3", "4"}, h.Snapshots())
	assert.Equal(t, 2, h.Cursor())
}
