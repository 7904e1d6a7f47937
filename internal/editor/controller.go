package editor

import (
	"unicode/utf8"

	"github.com/alexanderramin/outreach/internal/edithistory"
	"github.com/alexanderramin/outreach/internal/textstyle"
)

// Controller couples a Buffer with its undo history. Typed edits go through
// Edited/Commit; bold, undo and redo are applied directly.
type Controller struct {
	buf  *Buffer
	hist *edithistory.History
}

// NewController returns a controller editing text.
func NewController(text string, opts ...edithistory.Option) *Controller {
	return &Controller{
		buf:  NewBuffer(text),
		hist: edithistory.New(text, opts...),
	}
}

func (c *Controller) Buffer() *Buffer                { return c.buf }
func (c *Controller) History() *edithistory.History { return c.hist }
func (c *Controller) Text() string                  { return c.buf.Text() }

// Load replaces the document and starts a fresh history.
func (c *Controller) Load(text string) {
	c.buf.SetText(text)
	c.buf.SetCaret(0)
	c.buf.SetScrollOffset(0)
	c.hist.Reset(text)
}

// Edited records the buffer after a typed mutation. When ok, the returned
// ticket must be passed to Commit once the history delay has elapsed.
func (c *Controller) Edited() (edithistory.Ticket, bool) {
	return c.hist.RecordEdit(c.buf.Text())
}

// Commit commits a debounced edit.
func (c *Controller) Commit(t edithistory.Ticket) bool {
	return c.hist.Commit(t)
}

// ApplyBold replaces the selection with its bold form as one undoable step.
// The caret lands right after the bolded run and the scroll offset is left
// where it was. It reports false when nothing is selected.
func (c *Controller) ApplyBold() bool {
	start, end, ok := c.buf.Selection()
	if !ok {
		return false
	}
	scroll := c.buf.ScrollOffset()

	runes := []rune(c.buf.Text())
	bolded := textstyle.Bold(string(runes[start:end]))
	next := string(runes[:start]) + bolded + string(runes[end:])

	c.buf.SetText(next)
	c.hist.RecordAtomicEdit(next)
	c.buf.SetCaret(start + utf8.RuneCountInString(bolded))
	c.buf.SetScrollOffset(scroll)
	return true
}

// Undo restores the previous snapshot. The caret keeps its offset, clamped
// to the restored text.
func (c *Controller) Undo() bool {
	text, ok := c.hist.Undo()
	if ok {
		c.restore(text)
	}
	return ok
}

// Redo restores the next snapshot.
func (c *Controller) Redo() bool {
	text, ok := c.hist.Redo()
	if ok {
		c.restore(text)
	}
	return ok
}

func (c *Controller) restore(text string) {
	caret := c.buf.Caret()
	c.buf.SetText(text)
	c.buf.SetCaret(min(caret, c.buf.Len()))
}
