package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/outreach/internal/db"
	"github.com/alexanderramin/outreach/internal/domain"
	"github.com/alexanderramin/outreach/internal/repository"
	"github.com/google/uuid"
)

type historyService struct {
	history repository.HistoryRepo
	uow     db.UnitOfWork
	limit   int
}

// NewHistoryService returns a HistoryService that keeps the most recent
// domain.HistoryLimit entries.
func NewHistoryService(history repository.HistoryRepo, uow db.UnitOfWork) HistoryService {
	return &historyService{history: history, uow: uow, limit: domain.HistoryLimit}
}

// Record appends an entry for doc and trims the store in one transaction.
func (s *historyService) Record(ctx context.Context, req domain.JobRequest, doc domain.GeneratedDocument) (*domain.HistoryEntry, error) {
	entry := &domain.HistoryEntry{
		ID:          uuid.New().String(),
		Kind:        doc.Kind,
		Subject:     doc.Subject,
		CompanyName: strings.TrimSpace(req.CompanyName),
		Role:        strings.TrimSpace(req.Role),
		JobID:       strings.TrimSpace(req.JobID),
		Body:        doc.Body,
		CreatedAt:   time.Now().UTC(),
	}

	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txHistory := repository.NewSQLiteHistoryRepo(tx)
		if err := txHistory.Append(ctx, entry); err != nil {
			return err
		}
		if _, err := txHistory.TrimTo(ctx, s.limit); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("recording history: %w", err)
	}
	return entry, nil
}

func (s *historyService) List(ctx context.Context, f repository.HistoryFilter) ([]*domain.HistoryEntry, error) {
	return s.history.List(ctx, f)
}

func (s *historyService) Get(ctx context.Context, id string) (*domain.HistoryEntry, error) {
	return s.history.GetByID(ctx, strings.TrimSpace(id))
}

func (s *historyService) Delete(ctx context.Context, id string) error {
	return s.history.Delete(ctx, strings.TrimSpace(id))
}

func (s *historyService) Clear(ctx context.Context) (int64, error) {
	return s.history.Clear(ctx)
}
