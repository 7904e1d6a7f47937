package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/outreach/internal/domain"
	"github.com/alexanderramin/outreach/internal/latex"
	"github.com/alexanderramin/outreach/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCompiler struct {
	pdf    []byte
	err    error
	source string
}

func (f *fakeCompiler) Compile(_ context.Context, source string) ([]byte, error) {
	f.source = source
	return f.pdf, f.err
}

const resumeTeX = "\\documentclass{article}\n\\begin{document}\n\\section{Skills}\nGo\n\\end{document}"

func TestResumeService_EditReturnsLaTeXWithoutFences(t *testing.T) {
	fake := &fakeLLM{text: "```latex\n" + resumeTeX + "\n```"}
	svc := NewResumeService(fake, nil)

	edit, err := svc.Edit(context.Background(), resumeTeX, "add Rust to skills")
	require.NoError(t, err)
	assert.False(t, edit.NeedsClarification())
	assert.Equal(t, resumeTeX, edit.LaTeX)
	assert.Equal(t, llm.TaskResumeEdit, fake.requests[0].Task)
}

func TestResumeService_EditClarification(t *testing.T) {
	fake := &fakeLLM{text: "CLARIFICATION NEEDED: Which section should Rust go in?"}
	svc := NewResumeService(fake, nil)

	edit, err := svc.Edit(context.Background(), resumeTeX, "add Rust")
	require.NoError(t, err)
	assert.True(t, edit.NeedsClarification())
	assert.Equal(t, "Which section should Rust go in?", edit.Clarification)
	assert.Empty(t, edit.LaTeX)
}

func TestResumeService_EditValidatesFirst(t *testing.T) {
	fake := &fakeLLM{text: "x"}
	svc := NewResumeService(fake, nil)

	_, err := svc.Edit(context.Background(), "", "add Rust")
	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "Please provide your LaTeX resume code first.", UserMessage(err))
	assert.Zero(t, fake.calls())
}

func TestResumeService_EditWithoutModel(t *testing.T) {
	compiler := &fakeCompiler{pdf: []byte("%PDF-1.7")}
	svc := NewResumeService(nil, compiler)

	_, err := svc.Edit(context.Background(), resumeTeX, "add Rust")
	assert.ErrorIs(t, err, llm.ErrMissingAPIKey)

	out, err := svc.Compile(context.Background(), resumeTeX)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.7"), out.PDF)
}

func TestResumeService_Compile(t *testing.T) {
	compiler := &fakeCompiler{pdf: []byte("%PDF-1.7")}
	obs := &recordingUseCaseObserver{}
	svc := NewResumeService(nil, compiler, obs)

	out, err := svc.Compile(context.Background(), resumeTeX)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.7"), out.PDF)
	assert.Equal(t, 1, out.EstimatedPages)
	assert.Equal(t, resumeTeX, compiler.source)
	require.Len(t, obs.events, 1)
	assert.Equal(t, "compile-resume", obs.events[0].Name)
}

func TestResumeService_CompileErrorShowsServiceText(t *testing.T) {
	compiler := &fakeCompiler{err: &latex.CompileError{Status: 400, Detail: "! Missing $ inserted."}}
	svc := NewResumeService(nil, compiler)

	_, err := svc.Compile(context.Background(), resumeTeX)
	require.Error(t, err)
	assert.Equal(t, "! Missing $ inserted.", UserMessage(err))
}
