package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/outreach/internal/db"
	"github.com/alexanderramin/outreach/internal/domain"
)

// SQLiteHistoryRepo implements HistoryRepo using a SQLite database.
type SQLiteHistoryRepo struct {
	db db.DBTX
}

// NewSQLiteHistoryRepo creates a new SQLiteHistoryRepo.
func NewSQLiteHistoryRepo(conn db.DBTX) *SQLiteHistoryRepo {
	return &SQLiteHistoryRepo{db: conn}
}

const historyColumns = `id, kind, subject, company_name, role, job_id, body, created_at`

func (r *SQLiteHistoryRepo) Append(ctx context.Context, h *domain.HistoryEntry) error {
	query := `INSERT INTO history (` + historyColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		h.ID,
		string(h.Kind),
		h.Subject,
		h.CompanyName,
		h.Role,
		h.JobID,
		h.Body,
		formatTime(h.CreatedAt),
	)
	return storageErr("inserting history entry", err)
}

func (r *SQLiteHistoryRepo) GetByID(ctx context.Context, id string) (*domain.HistoryEntry, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+historyColumns+` FROM history WHERE id = ?`, id)
	h, err := scanHistory(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("history entry %s: %w", id, ErrNotFound)
		}
		return nil, storageErr("scanning history entry", err)
	}
	return h, nil
}

// List returns matching entries, newest first.
func (r *SQLiteHistoryRepo) List(ctx context.Context, f HistoryFilter) ([]*domain.HistoryEntry, error) {
	var (
		where []string
		args  []any
	)
	if q := strings.TrimSpace(f.Query); q != "" {
		p := likePattern(q)
		where = append(where, `(company_name LIKE ? ESCAPE '\' OR role LIKE ? ESCAPE '\' OR subject LIKE ? ESCAPE '\')`)
		args = append(args, p, p, p)
	}
	if f.Kind != "" {
		where = append(where, `kind = ?`)
		args = append(args, string(f.Kind))
	}

	query := `SELECT ` + historyColumns + ` FROM history`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, ` AND `)
	}
	query += ` ORDER BY created_at DESC, rowid DESC`
	if f.Limit > 0 {
		query += fmt.Sprintf(` LIMIT %d`, f.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storageErr("listing history", err)
	}
	defer rows.Close()

	var out []*domain.HistoryEntry
	for rows.Next() {
		h, err := scanHistory(rows)
		if err != nil {
			return nil, storageErr("scanning history entry", err)
		}
		out = append(out, h)
	}
	return out, storageErr("listing history", rows.Err())
}

func (r *SQLiteHistoryRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM history`).Scan(&n); err != nil {
		return 0, storageErr("counting history", err)
	}
	return n, nil
}

func (r *SQLiteHistoryRepo) TrimTo(ctx context.Context, keep int) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM history WHERE id NOT IN (
		SELECT id FROM history ORDER BY created_at DESC, rowid DESC LIMIT ?)`, keep)
	if err != nil {
		return 0, storageErr("trimming history", err)
	}
	n, _ := res.RowsAffected()
	return n, nil
}

func (r *SQLiteHistoryRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM history WHERE id = ?`, id)
	if err != nil {
		return storageErr("deleting history entry", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("history entry %s: %w", id, ErrNotFound)
	}
	return nil
}

func (r *SQLiteHistoryRepo) Clear(ctx context.Context) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM history`)
	if err != nil {
		return 0, storageErr("clearing history", err)
	}
	n, _ := res.RowsAffected()
	return n, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanHistory(s scanner) (*domain.HistoryEntry, error) {
	var (
		h       domain.HistoryEntry
		kind    string
		created string
	)
	if err := s.Scan(&h.ID, &kind, &h.Subject, &h.CompanyName, &h.Role, &h.JobID, &h.Body, &created); err != nil {
		return nil, err
	}
	h.Kind = domain.DocumentKind(kind)
	h.CreatedAt = parseTime(created)
	return &h, nil
}
