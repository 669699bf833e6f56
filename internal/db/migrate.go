package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// LegacyBlankPrefix marks visit IDs written before visits carried an explicit
// kind column. Such rows are blank visits.
const LegacyBlankPrefix = "blank-"

// Migrate runs all schema migrations. Every statement is safe to re-run.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// ALTER TABLE ADD COLUMN is not idempotent in SQLite.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	if err := migrateLegacyBlankVisits(db); err != nil {
		return fmt.Errorf("backfilling visit kinds: %w", err)
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS teams (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		created_at TEXT NOT NULL
	)`,

	`CREATE UNIQUE INDEX IF NOT EXISTS idx_teams_name ON teams(name COLLATE NOCASE)`,

	`CREATE TABLE IF NOT EXISTS projects (
		id                 TEXT PRIMARY KEY,
		name               TEXT NOT NULL,
		address            TEXT NOT NULL DEFAULT '',
		team_id            TEXT REFERENCES teams(id) ON DELETE SET NULL,
		visit_duration     TEXT NOT NULL DEFAULT '0',
		annual_visits      INTEGER NOT NULL DEFAULT 0,
		annual_total_hours TEXT NOT NULL DEFAULT '0',
		status             TEXT NOT NULL DEFAULT 'active'
		                   CHECK(status IN ('active','archived')),
		archived_at        TEXT,
		created_at         TEXT NOT NULL,
		updated_at         TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_projects_team ON projects(team_id)`,

	// project_id carries no foreign key: visit history outlives its project
	// and dangling references are reported, not rejected.
	`CREATE TABLE IF NOT EXISTS visits (
		id              TEXT PRIMARY KEY,
		project_id      TEXT,
		date            TEXT NOT NULL,
		personnel       TEXT NOT NULL DEFAULT '[]',
		departure_time  TEXT NOT NULL DEFAULT '',
		arrival_time    TEXT NOT NULL DEFAULT '',
		end_time        TEXT NOT NULL DEFAULT '',
		break_duration  TEXT NOT NULL DEFAULT '',
		total_hours     TEXT NOT NULL DEFAULT '0',
		hourly_rate     TEXT,
		invoiced        INTEGER NOT NULL DEFAULT 0,
		invoiced_at     TEXT,
		tasks_performed TEXT NOT NULL DEFAULT '{}',
		notes           TEXT NOT NULL DEFAULT '',
		created_at      TEXT NOT NULL,
		updated_at      TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_visits_project ON visits(project_id)`,
	`CREATE INDEX IF NOT EXISTS idx_visits_date ON visits(date)`,

	// Explicit visit kind replaces the ID prefix convention.
	`ALTER TABLE visits ADD COLUMN kind TEXT NOT NULL DEFAULT 'linked'
		CHECK(kind IN ('linked','blank'))`,

	`CREATE TABLE IF NOT EXISTS settings (
		id                  TEXT PRIMARY KEY DEFAULT 'default',
		default_hourly_rate TEXT NOT NULL DEFAULT '45',
		overdue_days        INTEGER NOT NULL DEFAULT 30,
		currency            TEXT NOT NULL DEFAULT 'EUR',
		custom_tasks        TEXT NOT NULL DEFAULT '[]'
	)`,

	`CREATE TABLE IF NOT EXISTS personnel_names (
		name       TEXT PRIMARY KEY COLLATE NOCASE,
		last_used  TEXT NOT NULL
	)`,
}

// migrateLegacyBlankVisits marks prefixed rows as blank visits and clears any
// project reference they carry. Idempotent.
func migrateLegacyBlankVisits(db *sql.DB) error {
	_, err := db.ExecContext(context.Background(),
		`UPDATE visits SET kind = 'blank', project_id = NULL
		 WHERE id LIKE ? AND (kind != 'blank' OR project_id IS NOT NULL)`,
		LegacyBlankPrefix+"%")
	return err
}
