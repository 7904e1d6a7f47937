package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/outreach/internal/db"
	"github.com/alexanderramin/outreach/internal/domain"
)

// SQLiteTemplateRepo implements TemplateRepo using a SQLite database. The
// saved JobRequest is stored as JSON.
type SQLiteTemplateRepo struct {
	db db.DBTX
}

// NewSQLiteTemplateRepo creates a new SQLiteTemplateRepo.
func NewSQLiteTemplateRepo(conn db.DBTX) *SQLiteTemplateRepo {
	return &SQLiteTemplateRepo{db: conn}
}

func (r *SQLiteTemplateRepo) Save(ctx context.Context, t *domain.Template) error {
	data, err := json.Marshal(t.Request)
	if err != nil {
		return fmt.Errorf("encoding template request: %w", err)
	}
	if existing, err := r.GetByName(ctx, t.Name); err == nil {
		t.ID = existing.ID
		t.CreatedAt = existing.CreatedAt
		_, err := r.db.ExecContext(ctx,
			`UPDATE templates SET name = ?, request_json = ?, updated_at = ? WHERE id = ?`,
			t.Name, string(data), nowUTC(), t.ID)
		return storageErr("updating template", err)
	} else if !errors.Is(err, ErrNotFound) {
		return err
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO templates (id, name, request_json, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		t.ID, t.Name, string(data), formatTime(t.CreatedAt), nowUTC())
	return storageErr("inserting template", err)
}

func (r *SQLiteTemplateRepo) GetByID(ctx context.Context, id string) (*domain.Template, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, name, request_json, created_at FROM templates WHERE id = ?`, id)
	return r.get(row, "template "+id)
}

func (r *SQLiteTemplateRepo) GetByName(ctx context.Context, name string) (*domain.Template, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, name, request_json, created_at FROM templates WHERE name = ? COLLATE NOCASE`, strings.TrimSpace(name))
	return r.get(row, fmt.Sprintf("template %q", name))
}

func (r *SQLiteTemplateRepo) get(row *sql.Row, what string) (*domain.Template, error) {
	t, err := scanTemplate(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", what, ErrNotFound)
		}
		return nil, storageErr("scanning template", err)
	}
	return t, nil
}

// List returns templates newest first. A non-empty query matches the
// template name, company and role.
func (r *SQLiteTemplateRepo) List(ctx context.Context, query string) ([]*domain.Template, error) {
	q := `SELECT id, name, request_json, created_at FROM templates`
	var args []any
	if strings.TrimSpace(query) != "" {
		p := likePattern(query)
		q += ` WHERE name LIKE ? ESCAPE '\'
			OR json_extract(request_json, '$.companyName') LIKE ? ESCAPE '\'
			OR json_extract(request_json, '$.role') LIKE ? ESCAPE '\'`
		args = append(args, p, p, p)
	}
	q += ` ORDER BY created_at DESC, rowid DESC`

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, storageErr("listing templates", err)
	}
	defer rows.Close()

	var out []*domain.Template
	for rows.Next() {
		t, err := scanTemplate(rows)
		if err != nil {
			return nil, storageErr("scanning template", err)
		}
		out = append(out, t)
	}
	return out, storageErr("listing templates", rows.Err())
}

func (r *SQLiteTemplateRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM templates WHERE id = ?`, id)
	if err != nil {
		return storageErr("deleting template", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("template %s: %w", id, ErrNotFound)
	}
	return nil
}

func scanTemplate(s scanner) (*domain.Template, error) {
	var (
		t       domain.Template
		data    string
		created string
	)
	if err := s.Scan(&t.ID, &t.Name, &data, &created); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(data), &t.Request); err != nil {
		return nil, fmt.Errorf("decoding template %s: %w", t.ID, err)
	}
	t.CreatedAt = parseTime(created)
	return &t, nil
}
