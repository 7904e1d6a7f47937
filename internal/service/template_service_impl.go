package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/alexanderramin/outreach/internal/db"
	"github.com/alexanderramin/outreach/internal/domain"
	"github.com/alexanderramin/outreach/internal/repository"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

type templateService struct {
	templates repository.TemplateRepo
	uow       db.UnitOfWork
	observer  UseCaseObserver
}

// templateDocument is the YAML shape used by Export and Import.
type templateDocument struct {
	Templates []domain.Template `yaml:"templates"`
}

func NewTemplateService(
	templates repository.TemplateRepo,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) TemplateService {
	return &templateService{
		templates: templates,
		uow:       uow,
		observer:  useCaseObserverOrNoop(observers),
	}
}

// Save stores req under name. Saving under an existing name replaces that
// template's request.
func (s *templateService) Save(ctx context.Context, name string, req domain.JobRequest) (*domain.Template, error) {
	t := &domain.Template{
		ID:        uuid.New().String(),
		Name:      strings.TrimSpace(name),
		Request:   req,
		CreatedAt: time.Now().UTC(),
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	if err := s.templates.Save(ctx, t); err != nil {
		return nil, fmt.Errorf("saving template %q: %w", t.Name, err)
	}
	return t, nil
}

func (s *templateService) List(ctx context.Context, query string) ([]*domain.Template, error) {
	return s.templates.List(ctx, strings.TrimSpace(query))
}

func (s *templateService) Get(ctx context.Context, ref string) (*domain.Template, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, &domain.ValidationError{Fields: []string{"template"}, Message: "template name or id is required"}
	}
	t, err := s.templates.GetByID(ctx, ref)
	if err == nil {
		return t, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	return s.templates.GetByName(ctx, ref)
}

func (s *templateService) Apply(ctx context.Context, ref string) (req domain.JobRequest, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"template": ref}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "apply-template",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	var t *domain.Template
	t, err = s.Get(ctx, ref)
	if err != nil {
		return domain.JobRequest{}, err
	}
	fields["template_id"] = t.ID
	return t.Request, nil
}

func (s *templateService) Delete(ctx context.Context, ref string) error {
	t, err := s.Get(ctx, ref)
	if err != nil {
		return err
	}
	return s.templates.Delete(ctx, t.ID)
}

func (s *templateService) Export(ctx context.Context, w io.Writer) error {
	list, err := s.templates.List(ctx, "")
	if err != nil {
		return err
	}
	doc := templateDocument{Templates: make([]domain.Template, 0, len(list))}
	for _, t := range list {
		doc.Templates = append(doc.Templates, *t)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding templates: %w", err)
	}
	return enc.Close()
}

// Import saves every template of a YAML document in one transaction. Names
// that already exist are overwritten.
func (s *templateService) Import(ctx context.Context, r io.Reader) (n int, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{}
	defer func() {
		fields["imported"] = n
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "import-templates",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	var doc templateDocument
	if err = yaml.NewDecoder(r).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return 0, fmt.Errorf("parsing templates: %w", err)
	}
	for i := range doc.Templates {
		t := &doc.Templates[i]
		t.Name = strings.TrimSpace(t.Name)
		if err = t.Validate(); err != nil {
			return 0, fmt.Errorf("template %d: %w", i+1, err)
		}
	}

	now := time.Now().UTC()
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txTemplates := repository.NewSQLiteTemplateRepo(tx)
		for i := range doc.Templates {
			t := doc.Templates[i]
			t.ID = uuid.New().String()
			if t.CreatedAt.IsZero() {
				t.CreatedAt = now
			}
			if err := txTemplates.Save(ctx, &t); err != nil {
				return fmt.Errorf("saving template %q: %w", t.Name, err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return len(doc.Templates), nil
}
