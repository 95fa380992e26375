package db

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openMigrateTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openMigrateTestDB(t)

	// Run migrations a second time — should succeed without error.
	err := Migrate(db)
	require.NoError(t, err)

	err = Migrate(db)
	require.NoError(t, err)
}

func TestMigrate_CreatesAllTables(t *testing.T) {
	db := openMigrateTestDB(t)

	expected := []string{"projects", "work_items"}
	for _, table := range expected {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
		assert.Equal(t, table, name)
	}
}

func TestMigrate_CreatesIndexes(t *testing.T) {
	db := openMigrateTestDB(t)

	expected := []string{
		"idx_projects_key",
		"idx_work_items_project",
		"idx_work_items_parent",
		"idx_work_items_status",
	}
	for _, idx := range expected {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='index' AND name=?`, idx).Scan(&name)
		require.NoError(t, err, "index %s should exist", idx)
	}
}

func TestMigrate_RejectsInvalidStatus(t *testing.T) {
	db := openMigrateTestDB(t)

	_, err := db.Exec(`INSERT INTO projects (id, name, created_at, updated_at) VALUES ('p1', 'P', '2026-01-01T00:00:00Z', '2026-01-01T00:00:00Z')`)
	require.NoError(t, err)

	_, err = db.Exec(`INSERT INTO work_items (id, project_id, title, type, status, created_at, updated_at)
		VALUES ('w1', 'p1', 'T', 'task', 'bogus', '2026-01-01T00:00:00Z', '2026-01-01T00:00:00Z')`)
	require.Error(t, err, "CHECK constraint should reject unknown status")
}

func TestMigrate_RejectsNegativeEstimate(t *testing.T) {
	db := openMigrateTestDB(t)

	_, err := db.Exec(`INSERT INTO projects (id, name, created_at, updated_at) VALUES ('p1', 'P', '2026-01-01T00:00:00Z', '2026-01-01T00:00:00Z')`)
	require.NoError(t, err)

	_, err = db.Exec(`INSERT INTO work_items (id, project_id, title, type, estimate, created_at, updated_at)
		VALUES ('w1', 'p1', 'T', 'task', -2, '2026-01-01T00:00:00Z', '2026-01-01T00:00:00Z')`)
	require.Error(t, err, "CHECK constraint should reject negative estimate")
}
