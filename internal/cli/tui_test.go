package cli

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/outreach/internal/domain"
	"github.com/alexanderramin/outreach/internal/editor"
	"github.com/alexanderramin/outreach/internal/llm"
	"github.com/alexanderramin/outreach/internal/service"
	"github.com/alexanderramin/outreach/internal/teatest"
	"github.com/alexanderramin/outreach/internal/testutil"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTUI(t *testing.T, model *fakeLLM) tuiModel {
	t.Helper()
	app, _ := testApp(t, model)
	m := newTUIModel(context.Background(), app, app.Generation)
	m.exportDir = t.TempDir()
	return m
}

// submitRequest fills the request directly and submits, returning the
// generation command without running it.
func submitRequest(t *testing.T, m tuiModel, req domain.JobRequest) (tuiModel, tea.Cmd) {
	t.Helper()
	*m.req = req
	next, cmd := m.submit()
	require.NotNil(t, cmd)
	return next.(tuiModel), cmd
}

func update(t *testing.T, m tuiModel, msg tea.Msg) tuiModel {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(tuiModel)
}

func TestTUI_StartsOnForm(t *testing.T) {
	d := teatest.New(t, newTestTUI(t, &fakeLLM{text: referralReply}), teatest.WithSize(100, 40))
	d.DrainInit()

	m := d.Model.(tuiModel)
	assert.Equal(t, stateForm, m.state)
	assert.Contains(t, d.View(), "Company")
}

func TestTUI_LoadingGatesDuplicateSubmit(t *testing.T) {
	model := &fakeLLM{text: referralReply}
	m, _ := submitRequest(t, newTestTUI(t, model), testutil.NewTestJobRequest())
	assert.True(t, m.loading)
	assert.Equal(t, stateGenerating, m.state)
	assert.Contains(t, m.View(), "Writing referral email")

	again, cmd := m.submit()
	assert.Nil(t, cmd)
	assert.True(t, again.(tuiModel).loading)
	assert.Zero(t, model.calls())
}

func TestTUI_SuccessOpensEditor(t *testing.T) {
	m := newTestTUI(t, &fakeLLM{text: referralReply})
	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	m, cmd := submitRequest(t, m, testutil.NewTestJobRequest())

	batch, ok := cmd().(tea.BatchMsg)
	require.True(t, ok)
	var result tea.Msg
	for _, c := range batch {
		if c == nil {
			continue
		}
		if msg, ok := c().(generatedMsg); ok {
			result = msg
		}
	}
	require.NotNil(t, result)

	m = update(t, m, result)
	assert.False(t, m.loading)
	assert.Equal(t, stateEditor, m.state)
	assert.NoError(t, m.err)
	require.NotNil(t, m.result)
	assert.Contains(t, m.View(), "REFERRAL EMAIL")
	assert.Contains(t, m.editor.Document().Body, "Hi Sir,")
}

func TestTUI_ErrorAndResultAreExclusive(t *testing.T) {
	m := newTestTUI(t, &fakeLLM{})
	doc := domain.GeneratedDocument{Kind: domain.KindReferralEmail, Subject: "S", Body: "B"}

	m, _ = submitRequest(t, m, testutil.NewTestJobRequest())
	m = update(t, m, generatedMsg{res: &service.GenerationResult{Document: doc}})
	require.NotNil(t, m.result)

	m = update(t, m, generatedMsg{err: &llm.EmptyResponseError{Model: "fake"}})
	assert.Nil(t, m.result)
	assert.Error(t, m.err)
	assert.Equal(t, stateForm, m.state)
	assert.Contains(t, m.View(), service.MsgGenerationFailed)

	m = update(t, m, generatedMsg{res: &service.GenerationResult{Document: doc}})
	assert.NoError(t, m.err)
	require.NotNil(t, m.result)
}

func TestTUI_LastCompletionWins(t *testing.T) {
	m := newTestTUI(t, &fakeLLM{})
	first := domain.GeneratedDocument{Kind: domain.KindReferralEmail, Body: "first"}
	second := domain.GeneratedDocument{Kind: domain.KindReferralEmail, Body: "second"}

	m = update(t, m, generatedMsg{res: &service.GenerationResult{Document: first}})
	m = update(t, m, generatedMsg{res: &service.GenerationResult{Document: second}})

	require.NotNil(t, m.result)
	assert.Equal(t, "second", m.result.Body)
	assert.Equal(t, "second", m.editor.Document().Body)
}

func TestTUI_SaveErrShowsWarning(t *testing.T) {
	m := newTestTUI(t, &fakeLLM{})
	doc := domain.GeneratedDocument{Kind: domain.KindCoverLetter, Body: "Dear Hiring Manager,"}

	m = update(t, m, generatedMsg{res: &service.GenerationResult{Document: doc, SaveErr: errors.New("disk full")}})

	assert.Equal(t, stateEditor, m.state)
	assert.Contains(t, m.View(), "History not saved")
}

func TestTUI_CloseEditorReturnsToFormKeepingRequest(t *testing.T) {
	m := newTestTUI(t, &fakeLLM{})
	*m.req = testutil.NewTestJobRequest(testutil.WithCompany("Globex"))
	m = update(t, m, generatedMsg{res: &service.GenerationResult{Document: domain.GeneratedDocument{Kind: domain.KindReferralEmail, Body: "B"}}})

	edited := domain.GeneratedDocument{Kind: domain.KindReferralEmail, Subject: "S", Body: "edited"}
	m = update(t, m, editor.CloseMsg{Document: edited})

	assert.Equal(t, stateForm, m.state)
	require.NotNil(t, m.result)
	assert.Equal(t, "edited", m.result.Body)
	assert.Equal(t, "Globex", m.req.CompanyName)
	assert.Contains(t, m.View(), "Last: S")
}

func TestTUI_ExportWritesPDF(t *testing.T) {
	m := newTestTUI(t, &fakeLLM{})
	doc := domain.GeneratedDocument{Kind: domain.KindCoverLetter, Body: "Dear Hiring Manager,\n\nHello."}
	m = update(t, m, generatedMsg{res: &service.GenerationResult{Document: doc}})

	_, cmd := m.Update(editor.ExportMsg{Document: doc})
	require.NotNil(t, cmd)
	msg := cmd().(exportedMsg)
	require.NoError(t, msg.err)
	assert.Equal(t, filepath.Join(m.exportDir, "cover-letter.pdf"), msg.path)

	data, err := os.ReadFile(msg.path)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-", string(data[:5]))

	m = update(t, m, msg)
	assert.Contains(t, m.View(), "Wrote ")
}

func TestTUI_CtrlCQuits(t *testing.T) {
	d := teatest.New(t, newTestTUI(t, &fakeLLM{}), teatest.WithSize(80, 30))
	d.DrainInit()
	d.PressCtrlC()
	assert.True(t, d.Quitting)
}

func TestRequestForm_ApplyIncludes(t *testing.T) {
	kind := domain.KindReferralEmail
	req := domain.DefaultJobRequest()
	f := newRequestForm(&kind, &req, true)
	assert.ElementsMatch(t, []string{"resume", "job-id"}, f.includes)

	f.includes = []string{"email", "projects"}
	f.apply()
	assert.False(t, req.IncludeResumeLink)
	assert.False(t, req.IncludeJobID)
	assert.True(t, req.IncludeEmail)
	assert.True(t, req.IncludeProjects)
}
