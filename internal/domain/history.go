package domain

import "time"

// HistoryEntry records one successful generation.
type HistoryEntry struct {
	ID          string       `json:"id"`
	Kind        DocumentKind `json:"type"`
	Subject     string       `json:"subject"`
	CompanyName string       `json:"companyName"`
	Role        string       `json:"role"`
	JobID       string       `json:"jobId,omitempty"`
	Body        string       `json:"body"`
	CreatedAt   time.Time    `json:"timestamp"`
}

// Document reconstructs the generated document from the entry.
func (h *HistoryEntry) Document() GeneratedDocument {
	return GeneratedDocument{Kind: h.Kind, Subject: h.Subject, Body: h.Body}
}

// HistoryLimit is the number of most-recent entries kept.
const HistoryLimit = 50
