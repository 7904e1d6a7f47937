package service

import (
	"context"
	"strings"
	"time"

	"github.com/alexanderramin/outreach/internal/latex"
	"github.com/alexanderramin/outreach/internal/llm"
	"github.com/alexanderramin/outreach/internal/prompt"
)

type resumeService struct {
	llm      llm.LLMClient
	compiler latex.Compiler
	observer UseCaseObserver
}

// NewResumeService builds the resume use cases. client may be nil; Edit then
// fails with llm.ErrMissingAPIKey while Compile keeps working.
func NewResumeService(client llm.LLMClient, compiler latex.Compiler, observers ...UseCaseObserver) ResumeService {
	return &resumeService{
		llm:      client,
		compiler: compiler,
		observer: useCaseObserverOrNoop(observers),
	}
}

// Edit asks the model to apply request to the LaTeX source. A reply that
// starts with the clarification prefix is returned as a question.
func (s *resumeService) Edit(ctx context.Context, source, request string) (edit *ResumeEdit, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "edit-resume",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	var p string
	p, err = prompt.BuildResumeEdit(source, request)
	if err != nil {
		return nil, err
	}

	if s.llm == nil {
		return nil, llm.ErrMissingAPIKey
	}

	var resp *llm.GenerateResponse
	resp, err = s.llm.Generate(ctx, llm.GenerateRequest{Task: llm.TaskResumeEdit, Prompt: p})
	if err != nil {
		return nil, err
	}

	text := strings.TrimSpace(resp.Text)
	if rest, ok := strings.CutPrefix(text, prompt.ClarificationPrefix); ok {
		fields["clarification"] = true
		return &ResumeEdit{Clarification: strings.TrimSpace(rest)}, nil
	}
	return &ResumeEdit{LaTeX: llm.StripCodeFences(text)}, nil
}

func (s *resumeService) Compile(ctx context.Context, source string) (out *CompiledResume, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"estimated_pages": latex.EstimatePages(source)}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "compile-resume",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	var pdf []byte
	pdf, err = s.compiler.Compile(ctx, source)
	if err != nil {
		return nil, err
	}
	fields["bytes"] = len(pdf)
	return &CompiledResume{PDF: pdf, EstimatedPages: latex.EstimatePages(source)}, nil
}
