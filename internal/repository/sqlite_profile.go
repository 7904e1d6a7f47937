package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/outreach/internal/db"
	"github.com/alexanderramin/outreach/internal/domain"
)

// SQLiteProfileRepo implements ProfileRepo using a SQLite database.
type SQLiteProfileRepo struct {
	db db.DBTX
}

// NewSQLiteProfileRepo creates a new SQLiteProfileRepo.
func NewSQLiteProfileRepo(conn db.DBTX) *SQLiteProfileRepo {
	return &SQLiteProfileRepo{db: conn}
}

func (r *SQLiteProfileRepo) Get(ctx context.Context) (*domain.Profile, error) {
	query := `SELECT name, degree, graduation_year, university, cgpa, resume_link,
		email, contact, website, skills, experience, projects
		FROM profile WHERE id = 1`
	row := r.db.QueryRowContext(ctx, query)

	var p domain.Profile
	err := row.Scan(
		&p.Name,
		&p.Degree,
		&p.GraduationYear,
		&p.University,
		&p.CGPA,
		&p.ResumeLink,
		&p.Email,
		&p.Contact,
		&p.Website,
		&p.Skills,
		&p.Experience,
		&p.Projects,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("profile: %w", ErrNotFound)
		}
		return nil, storageErr("scanning profile", err)
	}
	return &p, nil
}

func (r *SQLiteProfileRepo) Upsert(ctx context.Context, p *domain.Profile) error {
	query := `INSERT OR REPLACE INTO profile (id, name, degree, graduation_year, university,
		cgpa, resume_link, email, contact, website, skills, experience, projects, updated_at)
		VALUES (1, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.Name,
		p.Degree,
		p.GraduationYear,
		p.University,
		p.CGPA,
		p.ResumeLink,
		p.Email,
		p.Contact,
		p.Website,
		p.Skills,
		p.Experience,
		p.Projects,
		nowUTC(),
	)
	return storageErr("upserting profile", err)
}
