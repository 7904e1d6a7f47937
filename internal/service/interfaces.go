package service

import (
	"context"
	"io"

	"github.com/alexanderramin/outreach/internal/domain"
	"github.com/alexanderramin/outreach/internal/repository"
)

type GenerationService interface {
	GenerateReferral(ctx context.Context, req domain.JobRequest) (*GenerationResult, error)
	GenerateCoverLetter(ctx context.Context, req domain.JobRequest) (*GenerationResult, error)
}

type ProfileService interface {
	// Get returns the stored profile, or an empty one when none was saved.
	Get(ctx context.Context) (domain.Profile, error)
	Save(ctx context.Context, p domain.Profile) error
	Import(ctx context.Context, r io.Reader) (domain.Profile, error)
	Export(ctx context.Context, w io.Writer) error
}

type HistoryService interface {
	Record(ctx context.Context, req domain.JobRequest, doc domain.GeneratedDocument) (*domain.HistoryEntry, error)
	List(ctx context.Context, f repository.HistoryFilter) ([]*domain.HistoryEntry, error)
	Get(ctx context.Context, id string) (*domain.HistoryEntry, error)
	Delete(ctx context.Context, id string) error
	Clear(ctx context.Context) (int64, error)
}

type TemplateService interface {
	Save(ctx context.Context, name string, req domain.JobRequest) (*domain.Template, error)
	List(ctx context.Context, query string) ([]*domain.Template, error)
	// Get resolves a template by id or by case-insensitive name.
	Get(ctx context.Context, ref string) (*domain.Template, error)
	// Apply returns the stored request; it replaces the form wholesale.
	Apply(ctx context.Context, ref string) (domain.JobRequest, error)
	Delete(ctx context.Context, ref string) error
	Export(ctx context.Context, w io.Writer) error
	Import(ctx context.Context, r io.Reader) (int, error)
}

type ResumeService interface {
	Edit(ctx context.Context, latex, request string) (*ResumeEdit, error)
	Compile(ctx context.Context, latex string) (*CompiledResume, error)
}

// GenerationResult is a finalized document plus the history entry recorded
// for it. SaveErr is set when the document was produced but could not be
// stored; the document is still usable.
type GenerationResult struct {
	Document domain.GeneratedDocument
	Request  domain.JobRequest
	Entry    *domain.HistoryEntry
	SaveErr  error
}

// ResumeEdit is either replacement LaTeX or a question for the user.
type ResumeEdit struct {
	LaTeX         string
	Clarification string
}

// NeedsClarification reports whether the model asked a question instead of
// editing.
func (e *ResumeEdit) NeedsClarification() bool { return e.Clarification != "" }

type CompiledResume struct {
	PDF            []byte
	EstimatedPages int
}
