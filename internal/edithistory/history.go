// Package edithistory implements a bounded linear undo/redo stack for one
// text buffer.
//
// Typed edits are debounced: RecordEdit returns a Ticket and only the most
// recent ticket may be committed. Callers schedule Commit after Delay() (the
// editor does this with a tea.Tick). Style transforms use RecordAtomicEdit
// and are pushed immediately.
//
// History is not safe for concurrent use; it belongs to the goroutine that
// owns the buffer.
package edithistory

import "time"

const (
	// DefaultLimit is the maximum number of retained snapshots.
	DefaultLimit = 50
	// DefaultDelay is the quiet period before a typed edit is committed.
	DefaultDelay = 500 * time.Millisecond
)

// Mode is the state of the debounce/suppression machine.
type Mode int

const (
	// ModeIdle: no edit pending.
	ModeIdle Mode = iota
	// ModeRecording: a typed edit waits for its ticket to be committed.
	ModeRecording
	// ModeApplyingHistoryEntry: the buffer is being overwritten with a
	// snapshot; the echo of that write must not be recorded.
	ModeApplyingHistoryEntry
)

func (m Mode) String() string {
	switch m {
	case ModeRecording:
		return "recording"
	case ModeApplyingHistoryEntry:
		return "applying"
	default:
		return "idle"
	}
}

// Ticket identifies one scheduled commit. Zero is never issued.
type Ticket uint64

// History is the snapshot stack plus cursor.
type History struct {
	snapshots []string
	cursor    int
	limit     int
	delay     time.Duration

	mode    Mode
	pending string
	seq     Ticket
	applied string
}

// Option configures a History.
type Option func(*History)

// WithLimit overrides DefaultLimit. Values below 1 are ignored.
func WithLimit(n int) Option {
	return func(h *History) {
		if n > 0 {
			h.limit = n
		}
	}
}

// WithDelay overrides DefaultDelay.
func WithDelay(d time.Duration) Option {
	return func(h *History) {
		if d >= 0 {
			h.delay = d
		}
	}
}

// New returns a history holding the single snapshot initial.
func New(initial string, opts ...Option) *History {
	h := &History{limit: DefaultLimit, delay: DefaultDelay}
	for _, o := range opts {
		o(h)
	}
	h.Reset(initial)
	return h
}

// Reset discards all snapshots and any pending edit.
func (h *History) Reset(initial string) {
	h.snapshots = []string{initial}
	h.cursor = 0
	h.mode = ModeIdle
	h.pending = ""
	h.applied = ""
	h.seq++
}

// RecordEdit registers a typed change. It returns the ticket to commit once
// Delay has passed with no newer edit, and false when nothing needs to be
// scheduled: the text equals the current snapshot, or it is the echo of an
// undo/redo/atomic write.
func (h *History) RecordEdit(text string) (Ticket, bool) {
	if h.mode == ModeApplyingHistoryEntry {
		h.mode = ModeIdle
		if text == h.applied {
			return 0, false
		}
	}
	h.seq++
	if text == h.snapshots[h.cursor] {
		// Typing back to the committed text cancels the pending edit.
		h.mode = ModeIdle
		h.pending = ""
		return 0, false
	}
	h.mode = ModeRecording
	h.pending = text
	return h.seq, true
}

// Commit pushes the pending edit if t is still the latest ticket. Stale
// tickets are ignored and report false.
func (h *History) Commit(t Ticket) bool {
	if h.mode != ModeRecording || t != h.seq {
		return false
	}
	h.push(h.pending)
	h.mode = ModeIdle
	h.pending = ""
	return true
}

// Flush commits the pending edit regardless of ticket.
func (h *History) Flush() bool {
	return h.Commit(h.seq)
}

// Pending reports whether a typed edit is waiting to be committed.
func (h *History) Pending() bool {
	return h.mode == ModeRecording
}

// RecordAtomicEdit pushes text immediately, even when it equals the current
// snapshot. A pending typed edit is committed first so it stays undoable on
// its own.
func (h *History) RecordAtomicEdit(text string) {
	h.Flush()
	h.seq++
	h.push(text)
	h.apply(text)
}

// Undo steps back one snapshot. It returns false at the oldest snapshot.
func (h *History) Undo() (string, bool) {
	h.Flush()
	if h.cursor == 0 {
		return "", false
	}
	h.cursor--
	return h.apply(h.snapshots[h.cursor]), true
}

// Redo steps forward one snapshot. It returns false at the newest snapshot.
func (h *History) Redo() (string, bool) {
	h.Flush()
	if h.cursor >= len(h.snapshots)-1 {
		return "", false
	}
	h.cursor++
	return h.apply(h.snapshots[h.cursor]), true
}

func (h *History) CanUndo() bool { return h.cursor > 0 || h.mode == ModeRecording }
func (h *History) CanRedo() bool { return h.mode != ModeRecording && h.cursor < len(h.snapshots)-1 }

// Current returns the snapshot at the cursor.
func (h *History) Current() string { return h.snapshots[h.cursor] }

func (h *History) Len() int             { return len(h.snapshots) }
func (h *History) Cursor() int          { return h.cursor }
func (h *History) Mode() Mode           { return h.mode }
func (h *History) Delay() time.Duration { return h.delay }

// Snapshots returns a copy of the retained snapshots, oldest first.
func (h *History) Snapshots() []string {
	out := make([]string, len(h.snapshots))
	copy(out, h.snapshots)
	return out
}

// push truncates forward history, appends text and evicts the oldest entry
// when the limit is exceeded. The cursor does not move on eviction.
func (h *History) push(text string) {
	h.snapshots = append(h.snapshots[:h.cursor+1], text)
	if len(h.snapshots) > h.limit {
		h.snapshots = append([]string(nil), h.snapshots[1:]...)
		return
	}
	h.cursor++
}

func (h *History) apply(text string) string {
	h.mode = ModeApplyingHistoryEntry
	h.applied = text
	return text
}
