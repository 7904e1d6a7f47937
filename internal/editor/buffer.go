// Package editor is the interactive document editor: a rune buffer with a
// caret, a selection and a scroll offset, a Controller that routes edits
// through an undo history, and a bubbletea Model on top.
package editor

import "strings"

// row is one visual line: the rune range [start, end) of the buffer. last
// marks the final row of a logical line, where the caret may sit at end.
type row struct {
	start, end int
	last       bool
}

// Buffer holds the text being edited. Positions are rune offsets.
type Buffer struct {
	text   []rune
	caret  int
	anchor int // selection anchor, -1 when nothing is selected
	scroll int // first visible row
	width  int
	height int
	goal   int // preferred column for vertical moves, -1 when unset
}

// NewBuffer returns a buffer holding s with the caret at the start.
func NewBuffer(s string) *Buffer {
	return &Buffer{text: []rune(s), anchor: -1, goal: -1}
}

func (b *Buffer) Text() string { return string(b.text) }
func (b *Buffer) Len() int     { return len(b.text) }
func (b *Buffer) Caret() int   { return b.caret }

// ScrollOffset is the index of the first visible row.
func (b *Buffer) ScrollOffset() int { return b.scroll }

// SetText replaces the content. The caret and scroll offset are clamped, the
// selection is cleared.
func (b *Buffer) SetText(s string) {
	b.text = []rune(s)
	b.anchor = -1
	b.goal = -1
	b.caret = clamp(b.caret, 0, len(b.text))
	b.scroll = clamp(b.scroll, 0, b.maxScroll())
}

// SetSize sets the wrap width and the number of visible rows. Zero means
// unbounded.
func (b *Buffer) SetSize(width, height int) {
	b.width, b.height = width, height
	b.scroll = clamp(b.scroll, 0, b.maxScroll())
	b.scrollToCaret()
}

// SetCaret moves the caret to pos, clears the selection and scrolls the
// caret into view.
func (b *Buffer) SetCaret(pos int) {
	b.caret = clamp(pos, 0, len(b.text))
	b.anchor = -1
	b.goal = -1
	b.scrollToCaret()
}

// SetScrollOffset sets the first visible row without moving the caret.
func (b *Buffer) SetScrollOffset(n int) {
	b.scroll = clamp(n, 0, b.maxScroll())
}

// Select selects [start, end) and puts the caret at end.
func (b *Buffer) Select(start, end int) {
	start = clamp(start, 0, len(b.text))
	end = clamp(end, 0, len(b.text))
	b.anchor = start
	b.caret = end
	b.goal = -1
	if start == end {
		b.anchor = -1
	}
	b.scrollToCaret()
}

// SelectAll selects the whole text.
func (b *Buffer) SelectAll() { b.Select(0, len(b.text)) }

// Selection returns the ordered selected range. ok is false when the
// selection is empty.
func (b *Buffer) Selection() (start, end int, ok bool) {
	if b.anchor < 0 || b.anchor == b.caret {
		return b.caret, b.caret, false
	}
	if b.anchor < b.caret {
		return b.anchor, b.caret, true
	}
	return b.caret, b.anchor, true
}

// SelectedText returns the selected text, or "".
func (b *Buffer) SelectedText() string {
	start, end, ok := b.Selection()
	if !ok {
		return ""
	}
	return string(b.text[start:end])
}

// Insert replaces the selection (if any) with s and leaves the caret after it.
func (b *Buffer) Insert(s string) {
	start, end, _ := b.Selection()
	b.replace(start, end, []rune(s))
}

// Backspace deletes the selection or the rune before the caret.
func (b *Buffer) Backspace() bool {
	if start, end, ok := b.Selection(); ok {
		b.replace(start, end, nil)
		return true
	}
	if b.caret == 0 {
		return false
	}
	b.replace(b.caret-1, b.caret, nil)
	return true
}

// Delete deletes the selection or the rune after the caret.
func (b *Buffer) Delete() bool {
	if start, end, ok := b.Selection(); ok {
		b.replace(start, end, nil)
		return true
	}
	if b.caret >= len(b.text) {
		return false
	}
	b.replace(b.caret, b.caret+1, nil)
	return true
}

func (b *Buffer) replace(start, end int, r []rune) {
	out := make([]rune, 0, len(b.text)-(end-start)+len(r))
	out = append(out, b.text[:start]...)
	out = append(out, r...)
	out = append(out, b.text[end:]...)
	b.text = out
	b.SetCaret(start + len(r))
}

// Move moves the caret. With extend the selection grows from the current
// anchor, otherwise it is cleared.
func (b *Buffer) Move(d Direction, extend bool) {
	if extend && b.anchor < 0 {
		b.anchor = b.caret
	}
	if !extend {
		// Collapsing a selection with left/right lands on its edge.
		if start, end, ok := b.Selection(); ok && (d == Left || d == Right) {
			b.anchor = -1
			if d == Left {
				b.caret = start
			} else {
				b.caret = end
			}
			b.goal = -1
			b.scrollToCaret()
			return
		}
		b.anchor = -1
	}

	rows := b.rows()
	ri := rowOf(rows, b.caret)
	switch d {
	case Left:
		b.caret = max(b.caret-1, 0)
		b.goal = -1
	case Right:
		b.caret = min(b.caret+1, len(b.text))
		b.goal = -1
	case Home:
		b.caret = rows[ri].start
		b.goal = -1
	case End:
		b.caret = rows[ri].end
		b.goal = -1
	case Up, Down:
		if b.goal < 0 {
			b.goal = b.caret - rows[ri].start
		}
		target := ri - 1
		if d == Down {
			target = ri + 1
		}
		switch {
		case target < 0:
			b.caret = 0
		case target >= len(rows):
			b.caret = len(b.text)
		default:
			r := rows[target]
			b.caret = min(r.start+b.goal, r.end)
			if !r.last && b.caret == r.end && r.end > r.start {
				b.caret--
			}
		}
	}
	b.scrollToCaret()
}

// Direction is a caret movement.
type Direction int

const (
	Left Direction = iota
	Right
	Up
	Down
	Home
	End
)

// rows lays the text out into visual rows, wrapping at width runes.
func (b *Buffer) rows() []row {
	var rows []row
	start := 0
	for i := 0; i <= len(b.text); i++ {
		if i < len(b.text) && b.text[i] != '\n' {
			continue
		}
		rows = append(rows, wrapLine(start, i, b.width)...)
		start = i + 1
	}
	return rows
}

func wrapLine(start, end, width int) []row {
	if width <= 0 || end-start <= width {
		return []row{{start: start, end: end, last: true}}
	}
	var rows []row
	for s := start; s < end; s += width {
		e := min(s+width, end)
		rows = append(rows, row{start: s, end: e, last: e == end})
	}
	return rows
}

// rowOf returns the index of the row holding pos.
func rowOf(rows []row, pos int) int {
	for i, r := range rows {
		if pos >= r.start && (pos < r.end || (pos == r.end && r.last)) {
			return i
		}
	}
	return len(rows) - 1
}

func (b *Buffer) maxScroll() int {
	if b.height <= 0 {
		return 0
	}
	return max(len(b.rows())-b.height, 0)
}

func (b *Buffer) scrollToCaret() {
	if b.height <= 0 {
		b.scroll = 0
		return
	}
	ri := rowOf(b.rows(), b.caret)
	if ri < b.scroll {
		b.scroll = ri
	} else if ri >= b.scroll+b.height {
		b.scroll = ri - b.height + 1
	}
}

// CaretPosition returns the caret's visual row and column.
func (b *Buffer) CaretPosition() (rowIdx, col int) {
	rows := b.rows()
	ri := rowOf(rows, b.caret)
	return ri, b.caret - rows[ri].start
}

// visibleRows returns the rows currently in view.
func (b *Buffer) visibleRows() []row {
	rows := b.rows()
	if b.height <= 0 {
		return rows
	}
	from := min(b.scroll, len(rows))
	to := min(from+b.height, len(rows))
	return rows[from:to]
}

// String renders the text with no decoration. Useful in tests.
func (b *Buffer) String() string {
	var sb strings.Builder
	for i, r := range b.visibleRows() {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(string(b.text[r.start:r.end]))
	}
	return sb.String()
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
