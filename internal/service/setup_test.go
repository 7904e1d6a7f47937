package service

import (
	"context"
	"database/sql"
	"sync"
	"testing"

	"github.com/alexanderramin/outreach/internal/db"
	"github.com/alexanderramin/outreach/internal/llm"
	"github.com/alexanderramin/outreach/internal/repository"
	"github.com/alexanderramin/outreach/internal/testutil"
)

type testEnv struct {
	db        *sql.DB
	uow       db.UnitOfWork
	profiles  *repository.SQLiteProfileRepo
	history   *repository.SQLiteHistoryRepo
	templates *repository.SQLiteTemplateRepo
}

func setupEnv(t *testing.T) testEnv {
	t.Helper()
	database := testutil.NewTestDB(t)
	return testEnv{
		db:        database,
		uow:       testutil.NewTestUoW(database),
		profiles:  repository.NewSQLiteProfileRepo(database),
		history:   repository.NewSQLiteHistoryRepo(database),
		templates: repository.NewSQLiteTemplateRepo(database),
	}
}

// fakeLLM returns a canned reply and records every request.
type fakeLLM struct {
	mu       sync.Mutex
	text     string
	err      error
	requests []llm.GenerateRequest
}

func (f *fakeLLM) Generate(_ context.Context, req llm.GenerateRequest) (*llm.GenerateResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, req)
	if f.err != nil {
		return nil, f.err
	}
	return &llm.GenerateResponse{Text: f.text, Model: "fake-model", LatencyMs: 1}, nil
}

func (f *fakeLLM) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}

// recordingUseCaseObserver keeps every event it receives.
type recordingUseCaseObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (o *recordingUseCaseObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, e)
}

const referralReply = "Subject: Referral Request for SDE\n\n" +
	"Hi Sir,\n\nI'm Asha.\n\n" +
	"Resume: https://stale.example.com\n\n" +
	"Thank you for your time and consideration.\n\nWarm regards,\nAsha Rao"
