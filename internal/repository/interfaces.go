package repository

import (
	"context"

	"github.com/alexanderramin/outreach/internal/domain"
)

// HistoryFilter narrows a history listing. Query matches company, role and
// subject case-insensitively.
type HistoryFilter struct {
	Query string
	Kind  domain.DocumentKind
	Limit int
}

type ProfileRepo interface {
	Get(ctx context.Context) (*domain.Profile, error)
	Upsert(ctx context.Context, p *domain.Profile) error
}

type HistoryRepo interface {
	Append(ctx context.Context, h *domain.HistoryEntry) error
	GetByID(ctx context.Context, id string) (*domain.HistoryEntry, error)
	List(ctx context.Context, f HistoryFilter) ([]*domain.HistoryEntry, error)
	Count(ctx context.Context) (int, error)
	// TrimTo deletes all but the keep most recent entries.
	TrimTo(ctx context.Context, keep int) (int64, error)
	Delete(ctx context.Context, id string) error
	Clear(ctx context.Context) (int64, error)
}

type TemplateRepo interface {
	// Save inserts t, or replaces the request of the template with the
	// same name (case-insensitive), keeping its id.
	Save(ctx context.Context, t *domain.Template) error
	GetByID(ctx context.Context, id string) (*domain.Template, error)
	GetByName(ctx context.Context, name string) (*domain.Template, error)
	List(ctx context.Context, query string) ([]*domain.Template, error)
	Delete(ctx context.Context, id string) error
}
