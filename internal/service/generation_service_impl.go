package service

import (
	"context"
	"time"

	"github.com/alexanderramin/outreach/internal/domain"
	"github.com/alexanderramin/outreach/internal/generation"
	"github.com/alexanderramin/outreach/internal/llm"
	"github.com/alexanderramin/outreach/internal/prompt"
)

type generationService struct {
	llm      llm.LLMClient
	profiles ProfileService
	history  HistoryService
	now      func() time.Time
	observer UseCaseObserver
}

// GenerationOption configures a GenerationService.
type GenerationOption func(*generationService)

// WithClock overrides the time source used for the cover-letter date.
func WithClock(now func() time.Time) GenerationOption {
	return func(s *generationService) { s.now = now }
}

// WithObserver sets the use-case observer.
func WithObserver(o UseCaseObserver) GenerationOption {
	return func(s *generationService) {
		if o != nil {
			s.observer = o
		}
	}
}

// NewGenerationService wires the pipeline: profile merge, prompt, model call,
// post-processing and history. history may be nil, in which case nothing
// is recorded.
func NewGenerationService(client llm.LLMClient, profiles ProfileService, history HistoryService, opts ...GenerationOption) GenerationService {
	s := &generationService{
		llm:      client,
		profiles: profiles,
		history:  history,
		now:      time.Now,
		observer: NoopUseCaseObserver{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *generationService) GenerateReferral(ctx context.Context, req domain.JobRequest) (*GenerationResult, error) {
	return s.generate(ctx, "generate-referral", req, req.ValidateForReferral, func(merged domain.JobRequest, profile domain.Profile) (string, llm.TaskType, error) {
		p, err := prompt.BuildReferral(merged, profile)
		return p, llm.TaskReferral, err
	}, func(raw string, merged domain.JobRequest) domain.GeneratedDocument {
		return generation.FinalizeReferral(raw, merged)
	})
}

func (s *generationService) GenerateCoverLetter(ctx context.Context, req domain.JobRequest) (*GenerationResult, error) {
	return s.generate(ctx, "generate-cover-letter", req, req.ValidateForCoverLetter, func(merged domain.JobRequest, profile domain.Profile) (string, llm.TaskType, error) {
		p, err := prompt.BuildCoverLetter(merged, profile, s.now())
		return p, llm.TaskCoverLetter, err
	}, func(raw string, _ domain.JobRequest) domain.GeneratedDocument {
		return generation.FinalizeCoverLetter(raw)
	})
}

type buildFunc func(merged domain.JobRequest, profile domain.Profile) (string, llm.TaskType, error)
type finalizeFunc func(raw string, merged domain.JobRequest) domain.GeneratedDocument

// generate runs one pass of the pipeline. The request is validated before
// the profile is read or the model is called; a failed history write does
// not fail the call.
func (s *generationService) generate(ctx context.Context, name string, req domain.JobRequest, validate func() error, build buildFunc, finalize finalizeFunc) (result *GenerationResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{
		"company": req.CompanyName,
		"role":    req.Role,
	}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      name,
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	if err = validate(); err != nil {
		return nil, err
	}

	var profile domain.Profile
	profile, err = s.profiles.Get(ctx)
	if err != nil {
		return nil, err
	}
	merged := req.WithProfileDefaults(profile)

	var text string
	var task llm.TaskType
	text, task, err = build(merged, profile)
	if err != nil {
		return nil, err
	}

	var resp *llm.GenerateResponse
	resp, err = s.llm.Generate(ctx, llm.GenerateRequest{Task: task, Prompt: text})
	if err != nil {
		return nil, err
	}
	fields["model"] = resp.Model
	fields["latency_ms"] = resp.LatencyMs

	doc := finalize(resp.Text, merged)
	result = &GenerationResult{Document: doc, Request: merged}
	if s.history != nil {
		result.Entry, result.SaveErr = s.history.Record(ctx, merged, doc)
		if result.SaveErr != nil {
			fields["history_error"] = result.SaveErr.Error()
		}
	}
	return result, nil
}
