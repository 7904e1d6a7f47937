package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Every statement is safe to re-run.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	// Single-row table: the profile is written wholesale.
	`CREATE TABLE IF NOT EXISTS profile (
		id              INTEGER PRIMARY KEY CHECK(id = 1),
		name            TEXT NOT NULL DEFAULT '',
		degree          TEXT NOT NULL DEFAULT '',
		graduation_year TEXT NOT NULL DEFAULT '',
		university      TEXT NOT NULL DEFAULT '',
		cgpa            TEXT NOT NULL DEFAULT '',
		resume_link     TEXT NOT NULL DEFAULT '',
		email           TEXT NOT NULL DEFAULT '',
		contact         TEXT NOT NULL DEFAULT '',
		website         TEXT NOT NULL DEFAULT '',
		skills          TEXT NOT NULL DEFAULT '',
		experience      TEXT NOT NULL DEFAULT '',
		projects        TEXT NOT NULL DEFAULT '',
		updated_at      TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS history (
		id           TEXT PRIMARY KEY,
		kind         TEXT NOT NULL CHECK(kind IN ('email','cover-letter')),
		subject      TEXT NOT NULL DEFAULT '',
		company_name TEXT NOT NULL DEFAULT '',
		role         TEXT NOT NULL DEFAULT '',
		body         TEXT NOT NULL,
		created_at   TEXT NOT NULL
	)`,
	`ALTER TABLE history ADD COLUMN job_id TEXT NOT NULL DEFAULT ''`,
	`CREATE INDEX IF NOT EXISTS idx_history_created ON history(created_at)`,

	`CREATE TABLE IF NOT EXISTS templates (
		id           TEXT PRIMARY KEY,
		name         TEXT NOT NULL,
		request_json TEXT NOT NULL,
		created_at   TEXT NOT NULL,
		updated_at   TEXT NOT NULL
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_templates_name ON templates(name COLLATE NOCASE)`,
}
