package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
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
	`CREATE TABLE IF NOT EXISTS projects (
		id          TEXT PRIMARY KEY,
		key         TEXT NOT NULL DEFAULT '',
		name        TEXT NOT NULL,
		status      TEXT NOT NULL DEFAULT 'active'
		            CHECK(status IN ('active','archived')),
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,

	`CREATE UNIQUE INDEX IF NOT EXISTS idx_projects_key ON projects(key) WHERE key != ''`,

	`CREATE TABLE IF NOT EXISTS work_items (
		id           TEXT PRIMARY KEY,
		project_id   TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		parent_id    TEXT REFERENCES work_items(id) ON DELETE CASCADE,
		title        TEXT NOT NULL,
		description  TEXT NOT NULL DEFAULT '',
		type         TEXT NOT NULL
		             CHECK(type IN ('epic','feature','story','task','bug')),
		status       TEXT NOT NULL DEFAULT 'todo'
		             CHECK(status IN ('todo','in_progress','on_hold','done')),
		assignee_id  TEXT NOT NULL DEFAULT '',
		estimate     REAL CHECK(estimate IS NULL OR estimate >= 0),
		actual_hours REAL CHECK(actual_hours IS NULL OR actual_hours >= 0),
		created_at   TEXT NOT NULL,
		updated_at   TEXT NOT NULL,
		completed_at TEXT
	)`,

	`CREATE INDEX IF NOT EXISTS idx_work_items_project ON work_items(project_id)`,
	`CREATE INDEX IF NOT EXISTS idx_work_items_parent ON work_items(parent_id)`,
	`CREATE INDEX IF NOT EXISTS idx_work_items_status ON work_items(status)`,
}
