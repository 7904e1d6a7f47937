package testutil

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/alexanderramin/outreach/internal/domain"
	"github.com/google/uuid"
)

var fixtureClock atomic.Int64

// nextTimestamp returns strictly increasing timestamps so list ordering is
// deterministic.
func nextTimestamp() time.Time {
	n := fixtureClock.Add(1)
	return time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(n) * time.Second)
}

// Job request options
type RequestOption func(*domain.JobRequest)

func WithJobID(id string) RequestOption {
	return func(r *domain.JobRequest) { r.JobID = id }
}

func WithCompany(name string) RequestOption {
	return func(r *domain.JobRequest) { r.CompanyName = name }
}

func WithRole(role string) RequestOption {
	return func(r *domain.JobRequest) { r.Role = role }
}

// WithAllClosingItems fills every closing value and turns every flag on.
func WithAllClosingItems() RequestOption {
	return func(r *domain.JobRequest) {
		r.ResumeLink = "https://example.com/resume.pdf"
		r.JobLink = "https://careers.example.com/jobs/1"
		r.Email = "asha@example.com"
		r.Contact = "+1 555 0100"
		r.IncludeResumeLink, r.IncludeJobID, r.IncludeJobLink = true, true, true
		r.IncludeEmail, r.IncludeContact = true, true
	}
}

// NewTestJobRequest returns a valid referral request for Acme/SDE/J1.
func NewTestJobRequest(opts ...RequestOption) domain.JobRequest {
	r := domain.DefaultJobRequest()
	r.CompanyName = "Acme"
	r.Role = "SDE"
	r.JobID = "J1"
	r.JobDescription = "Build backend services in Go on AWS."
	for _, o := range opts {
		o(&r)
	}
	return r
}

// NewTestProfile returns a fully populated profile.
func NewTestProfile() domain.Profile {
	return domain.Profile{
		Name:           "Asha Rao",
		Degree:         "B.Tech CSE",
		GraduationYear: "2026",
		University:     "State University",
		CGPA:           "9.1",
		ResumeLink:     "https://example.com/resume.pdf",
		Email:          "asha@example.com",
		Contact:        "+1 555 0100",
		Website:        "https://asha.dev",
		Skills:         "- Languages: Go, Python",
		Experience:     "- Backend intern at Initech",
		Projects:       "- Ledger: Go, PostgreSQL",
	}
}

// History options
type HistoryOption func(*domain.HistoryEntry)

func WithKind(k domain.DocumentKind) HistoryOption {
	return func(h *domain.HistoryEntry) { h.Kind = k }
}

func WithHistoryCompany(company, role string) HistoryOption {
	return func(h *domain.HistoryEntry) {
		h.CompanyName = company
		h.Role = role
	}
}

func WithCreatedAt(t time.Time) HistoryOption {
	return func(h *domain.HistoryEntry) { h.CreatedAt = t }
}

// NewTestHistoryEntry returns a referral-email history entry with a fresh id
// and a timestamp later than every previous fixture.
func NewTestHistoryEntry(opts ...HistoryOption) *domain.HistoryEntry {
	h := &domain.HistoryEntry{
		ID:          uuid.New().String(),
		Kind:        domain.KindReferralEmail,
		Subject:     "Referral Request for SDE - Job ID: J1",
		CompanyName: "Acme",
		Role:        "SDE",
		JobID:       "J1",
		Body:        "Hi Sir,\nbody",
		CreatedAt:   nextTimestamp(),
	}
	for _, o := range opts {
		o(h)
	}
	return h
}

// NewTestTemplate returns a template named name holding a valid request.
func NewTestTemplate(name string, opts ...RequestOption) *domain.Template {
	return &domain.Template{
		ID:        uuid.New().String(),
		Name:      name,
		Request:   NewTestJobRequest(opts...),
		CreatedAt: nextTimestamp(),
	}
}

// Seq returns "prefix-n" names for bulk fixtures.
func Seq(prefix string, n int) string {
	return fmt.Sprintf("%s-%02d", prefix, n)
}
