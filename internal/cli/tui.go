package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexanderramin/outreach/internal/cli/formatter"
	"github.com/alexanderramin/outreach/internal/domain"
	"github.com/alexanderramin/outreach/internal/editor"
	"github.com/alexanderramin/outreach/internal/export"
	"github.com/alexanderramin/outreach/internal/service"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

type tuiState int

const (
	stateForm tuiState = iota
	stateGenerating
	stateEditor
)

// generatedMsg carries the outcome of one generation call.
type generatedMsg struct {
	res *service.GenerationResult
	err error
}

// exportedMsg reports a PDF written from the editor.
type exportedMsg struct {
	path string
	err  error
}

// tuiModel is the interactive generator: request form, then a spinner while
// the model runs, then the editor on the result. Closing the editor returns
// to the form with the previous request kept.
type tuiModel struct {
	ctx   context.Context
	app   *App
	svc   service.GenerationService
	state tuiState

	kind *domain.DocumentKind
	req  *domain.JobRequest
	form *requestForm

	spinner spinner.Model
	editor  editor.Model

	// loading gates duplicate submissions while a call is in flight.
	loading bool
	// result and err are mutually exclusive; the last completion wins.
	result *domain.GeneratedDocument
	err    error
	notice string

	exportDir     string
	width, height int
}

func newTUIModel(ctx context.Context, app *App, svc service.GenerationService) tuiModel {
	kind := domain.KindReferralEmail
	req := domain.DefaultJobRequest()
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = formatter.StyleHeader

	return tuiModel{
		ctx:       ctx,
		app:       app,
		svc:       svc,
		kind:      &kind,
		req:       &req,
		form:      newRequestForm(&kind, &req, true),
		spinner:   sp,
		exportDir: ".",
	}
}

func (m tuiModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		if m.state == stateEditor {
			ed, cmd := m.editor.Update(m.editorSize())
			m.editor = ed.(editor.Model)
			return m, cmd
		}
		return m.updateForm(msg)

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}

	case generatedMsg:
		return m.finish(msg)

	case exportedMsg:
		if msg.err != nil {
			m.notice = formatter.Error("Export failed: " + msg.err.Error())
		} else {
			m.notice = formatter.Success("Wrote " + msg.path)
		}
		return m, nil

	case spinner.TickMsg:
		if m.state != stateGenerating {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	switch m.state {
	case stateForm:
		return m.updateForm(msg)
	case stateEditor:
		return m.updateEditor(msg)
	}
	return m, nil
}

func (m tuiModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form.Form = f
	}
	switch m.form.State {
	case huh.StateCompleted:
		m.form.apply()
		return m.submit()
	case huh.StateAborted:
		return m, tea.Quit
	}
	return m, cmd
}

func (m tuiModel) updateEditor(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case editor.CloseMsg:
		doc := msg.Document
		m.result = &doc
		m.state = stateForm
		m.notice = ""
		m.form = newRequestForm(m.kind, m.req, true)
		return m, m.form.Init()
	case editor.ExportMsg:
		return m, m.exportPDF(msg.Document)
	}
	ed, cmd := m.editor.Update(msg)
	m.editor = ed.(editor.Model)
	return m, cmd
}

// submit starts a generation unless one is already running.
func (m tuiModel) submit() (tea.Model, tea.Cmd) {
	if m.loading {
		return m, nil
	}
	m.loading = true
	m.state = stateGenerating
	m.notice = ""

	run := generateReferral.run
	if *m.kind == domain.KindCoverLetter {
		run = generateCoverLetter.run
	}
	ctx, svc, req := m.ctx, m.svc, *m.req
	generate := func() tea.Msg {
		res, err := run(svc, ctx, req)
		return generatedMsg{res: res, err: err}
	}
	return m, tea.Batch(m.spinner.Tick, generate)
}

func (m tuiModel) finish(msg generatedMsg) (tea.Model, tea.Cmd) {
	m.loading = false
	if msg.err != nil {
		m.err = msg.err
		m.result = nil
		m.state = stateForm
		m.form = newRequestForm(m.kind, m.req, true)
		return m, m.form.Init()
	}

	doc := msg.res.Document
	m.result = &doc
	m.err = nil
	if msg.res.SaveErr != nil {
		m.notice = formatter.Warning("History not saved: " + service.UserMessage(msg.res.SaveErr))
	}
	m.editor = editor.NewModel(doc, editor.WithClipboard(m.app.copy))
	m.state = stateEditor
	if m.width > 0 {
		ed, _ := m.editor.Update(m.editorSize())
		m.editor = ed.(editor.Model)
	}
	return m, nil
}

// editorSize leaves room for the header and notice lines.
func (m tuiModel) editorSize() tea.WindowSizeMsg {
	return tea.WindowSizeMsg{Width: m.width, Height: max(m.height-2, 0)}
}

func (m tuiModel) exportPDF(doc domain.GeneratedDocument) tea.Cmd {
	path := filepath.Join(m.exportDir, export.FileName(doc, "pdf"))
	return func() tea.Msg {
		f, err := os.Create(path)
		if err != nil {
			return exportedMsg{err: err}
		}
		if err := export.WritePDF(f, doc); err != nil {
			f.Close()
			return exportedMsg{err: err}
		}
		return exportedMsg{path: path, err: f.Close()}
	}
}

func (m tuiModel) View() string {
	var b strings.Builder
	b.WriteString(formatter.Header("outreach"))
	b.WriteString("\n")
	if m.notice != "" {
		b.WriteString(m.notice)
		b.WriteString("\n")
	}

	switch m.state {
	case stateGenerating:
		label := generateReferral.spinnerText()
		if *m.kind == domain.KindCoverLetter {
			label = generateCoverLetter.spinnerText()
		}
		fmt.Fprintf(&b, "\n%s %s\n", m.spinner.View(), label)
	case stateEditor:
		b.WriteString(m.editor.View())
	default:
		if m.err != nil {
			b.WriteString(formatter.Error(service.UserMessage(m.err)))
			b.WriteString("\n\n")
		} else if m.result != nil {
			b.WriteString(formatter.Dim("Last: " + formatter.Truncate(m.result.Title(), 60)))
			b.WriteString("\n\n")
		}
		b.WriteString(m.form.View())
	}
	return b.String()
}

// runTUI runs the interactive generator on the terminal.
func runTUI(cmd *cobra.Command, app *App) error {
	svc, err := app.generation()
	if err != nil {
		return err
	}
	m := newTUIModel(cmd.Context(), app, svc)
	_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithInput(cmd.InOrStdin()), tea.WithOutput(cmd.OutOrStdout())).Run()
	return err
}

// editorProgram wraps the editor so closing it ends the program.
type editorProgram struct {
	editor.Model
	done bool
}

func (p editorProgram) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case editor.CloseMsg:
		p.done = true
		return p, tea.Quit
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return p, tea.Quit
		}
	}
	m, cmd := p.Model.Update(msg)
	p.Model = m.(editor.Model)
	return p, cmd
}

// runEditor opens doc in the editor and returns the edited document. An
// interrupted session returns doc unchanged.
func runEditor(cmd *cobra.Command, app *App, doc domain.GeneratedDocument) (domain.GeneratedDocument, error) {
	final, err := tea.NewProgram(
		editorProgram{Model: editor.NewModel(doc, editor.WithClipboard(app.copy))},
		tea.WithAltScreen(), tea.WithInput(cmd.InOrStdin()), tea.WithOutput(cmd.ErrOrStderr()),
	).Run()
	if err != nil {
		return doc, err
	}
	p := final.(editorProgram)
	if !p.done {
		return doc, nil
	}
	return p.Document(), nil
}
