package editor

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/outreach/internal/cli/formatter"
	"github.com/alexanderramin/outreach/internal/domain"
	"github.com/alexanderramin/outreach/internal/edithistory"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type focus int

const (
	focusBody focus = iota
	focusSubject
)

// commitMsg fires when the debounce delay of an edit has elapsed.
type commitMsg struct{ ticket edithistory.Ticket }

// CloseMsg is emitted when the user leaves the editor.
type CloseMsg struct{ Document domain.GeneratedDocument }

// ExportMsg asks the parent to export the current document.
type ExportMsg struct{ Document domain.GeneratedDocument }

// CopiedMsg reports the result of a clipboard copy.
type CopiedMsg struct{ Err error }

var (
	styleCaret     = lipgloss.NewStyle().Reverse(true)
	styleSelection = lipgloss.NewStyle().Background(formatter.ColorBlue).Foreground(lipgloss.Color("#282828"))
	styleFrame     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(formatter.ColorDim).Padding(0, 1)
	styleFocused   = styleFrame.BorderForeground(formatter.ColorHeader)
)

// Model is the bubbletea editor for one generated document. The subject is
// edited in a single-line input; the body goes through the Controller.
type Model struct {
	kind    domain.DocumentKind
	subject textinput.Model
	body    *Controller
	focus   focus
	keys    KeyMap
	help    help.Model
	copy    func(string) error
	status  string
	width   int
	height  int
}

// ModelOption configures a Model.
type ModelOption func(*Model)

// WithClipboard replaces the system clipboard writer.
func WithClipboard(fn func(string) error) ModelOption {
	return func(m *Model) { m.copy = fn }
}

// WithHistory passes options to the body's undo history.
func WithHistory(opts ...edithistory.Option) ModelOption {
	return func(m *Model) { m.body = NewController(m.body.Text(), opts...) }
}

// NewModel returns an editor seeded with doc.
func NewModel(doc domain.GeneratedDocument, opts ...ModelOption) Model {
	ti := textinput.New()
	ti.Prompt = "Subject: "
	ti.Placeholder = "(none)"
	ti.SetValue(doc.Subject)
	ti.Blur()

	m := Model{
		kind:    doc.Kind,
		subject: ti,
		body:    NewController(doc.Body),
		keys:    DefaultKeyMap(),
		help:    help.New(),
		copy:    clipboard.WriteAll,
	}
	for _, o := range opts {
		o(&m)
	}
	return m
}

// Document returns the edited document.
func (m Model) Document() domain.GeneratedDocument {
	return domain.GeneratedDocument{
		Kind:    m.kind,
		Subject: strings.TrimSpace(m.subject.Value()),
		Body:    m.body.Text(),
	}
}

// Controller exposes the body controller.
func (m Model) Controller() *Controller { return m.body }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.subject.Width = max(msg.Width-len(m.subject.Prompt)-6, 10)
		m.help.Width = msg.Width
		// frame border+padding, subject, status and help lines
		m.body.Buffer().SetSize(max(msg.Width-4, 0), max(msg.Height-8, 3))
		return m, nil

	case commitMsg:
		m.body.Commit(msg.ticket)
		return m, nil

	case CopiedMsg:
		if msg.Err != nil {
			m.status = formatter.StyleRed.Render("copy failed: " + msg.Err.Error())
		} else {
			m.status = formatter.StyleGreen.Render("copied to clipboard")
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.focus == focusSubject {
		var cmd tea.Cmd
		m.subject, cmd = m.subject.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""
	switch {
	case key.Matches(msg, m.keys.Close):
		doc := m.Document()
		return m, func() tea.Msg { return CloseMsg{Document: doc} }
	case key.Matches(msg, m.keys.Copy):
		text, write := m.Document().Text(), m.copy
		return m, func() tea.Msg { return CopiedMsg{Err: write(text)} }
	case key.Matches(msg, m.keys.Export):
		doc := m.Document()
		return m, func() tea.Msg { return ExportMsg{Document: doc} }
	case key.Matches(msg, m.keys.Focus):
		if m.focus == focusBody {
			m.focus = focusSubject
			return m, m.subject.Focus()
		}
		m.focus = focusBody
		m.subject.Blur()
		return m, nil
	}

	if m.focus == focusSubject {
		var cmd tea.Cmd
		m.subject, cmd = m.subject.Update(msg)
		return m, cmd
	}

	buf := m.body.Buffer()
	switch {
	case key.Matches(msg, m.keys.Bold):
		if !m.body.ApplyBold() {
			m.status = formatter.Dim("select text to bold")
		}
		return m, nil
	case key.Matches(msg, m.keys.Undo):
		m.body.Undo()
		return m, nil
	case key.Matches(msg, m.keys.Redo):
		m.body.Redo()
		return m, nil
	case key.Matches(msg, m.keys.SelectAll):
		buf.SelectAll()
		return m, nil
	}

	switch msg.Type {
	case tea.KeyLeft, tea.KeyRight, tea.KeyUp, tea.KeyDown, tea.KeyHome, tea.KeyEnd:
		buf.Move(direction(msg.Type), false)
		return m, nil
	case tea.KeyShiftLeft, tea.KeyShiftRight, tea.KeyShiftUp, tea.KeyShiftDown, tea.KeyShiftHome, tea.KeyShiftEnd:
		buf.Move(direction(msg.Type), true)
		return m, nil
	case tea.KeyBackspace:
		if !buf.Backspace() {
			return m, nil
		}
	case tea.KeyDelete:
		if !buf.Delete() {
			return m, nil
		}
	case tea.KeyEnter:
		buf.Insert("\n")
	case tea.KeySpace:
		buf.Insert(" ")
	case tea.KeyRunes:
		buf.Insert(string(msg.Runes))
	default:
		return m, nil
	}
	return m, m.scheduleCommit()
}

// scheduleCommit records a typed edit and arms its debounce tick.
func (m Model) scheduleCommit() tea.Cmd {
	ticket, ok := m.body.Edited()
	if !ok {
		return nil
	}
	return tea.Tick(m.body.History().Delay(), func(time.Time) tea.Msg {
		return commitMsg{ticket: ticket}
	})
}

func direction(t tea.KeyType) Direction {
	switch t {
	case tea.KeyLeft, tea.KeyShiftLeft:
		return Left
	case tea.KeyRight, tea.KeyShiftRight:
		return Right
	case tea.KeyUp, tea.KeyShiftUp:
		return Up
	case tea.KeyDown, tea.KeyShiftDown:
		return Down
	case tea.KeyHome, tea.KeyShiftHome:
		return Home
	default:
		return End
	}
}

func (m Model) View() string {
	var b strings.Builder
	title := "REFERRAL EMAIL"
	if m.kind == domain.KindCoverLetter {
		title = "COVER LETTER"
	}
	b.WriteString(formatter.StyleHeader.Render(title))
	b.WriteString("\n")
	b.WriteString(m.subject.View())
	b.WriteString("\n")

	frame := styleFrame
	if m.focus == focusBody {
		frame = styleFocused
	}
	if m.width > 0 {
		frame = frame.Width(m.width - 2)
	}
	b.WriteString(frame.Render(m.renderBody()))
	b.WriteString("\n")

	hist := m.body.History()
	b.WriteString(formatter.Dim(fmt.Sprintf("history %d/%d", hist.Cursor()+1, hist.Len())))
	if m.status != "" {
		b.WriteString("  " + m.status)
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// renderBody draws the visible rows with the selection highlighted and the
// caret shown in reverse video.
func (m Model) renderBody() string {
	buf := m.body.Buffer()
	start, end, hasSel := buf.Selection()
	caret := buf.Caret()
	showCaret := m.focus == focusBody

	rows := buf.visibleRows()
	lines := make([]string, len(rows))
	for i, r := range rows {
		var sb strings.Builder
		for p := r.start; p < r.end; p++ {
			ch := string(buf.text[p])
			switch {
			case showCaret && p == caret:
				sb.WriteString(styleCaret.Render(ch))
			case hasSel && p >= start && p < end:
				sb.WriteString(styleSelection.Render(ch))
			default:
				sb.WriteString(ch)
			}
		}
		if showCaret && caret == r.end && r.last {
			sb.WriteString(styleCaret.Render(" "))
		}
		lines[i] = sb.String()
	}
	return strings.Join(lines, "\n")
}
