package db

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenDB(MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))
}

func TestMigrate_CreatesAllTables(t *testing.T) {
	db := openTestDB(t)

	for _, table := range []string{"teams", "projects", "visits", "settings", "personnel_names"} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
		assert.Equal(t, table, name)
	}
}

func TestMigrate_CreatesIndexes(t *testing.T) {
	db := openTestDB(t)

	for _, idx := range []string{"idx_teams_name", "idx_projects_team", "idx_visits_project", "idx_visits_date"} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='index' AND name=?`, idx).Scan(&name)
		require.NoError(t, err, "index %s should exist", idx)
	}
}

func TestMigrate_ForeignKeysEnabled(t *testing.T) {
	db := openTestDB(t)

	var fk int
	require.NoError(t, db.QueryRow(`PRAGMA foreign_keys`).Scan(&fk))
	assert.Equal(t, 1, fk)
}

func TestMigrate_VisitKindColumn(t *testing.T) {
	db := openTestDB(t)

	rows, err := db.Query(`PRAGMA table_info(visits)`)
	require.NoError(t, err)
	defer rows.Close()

	found := false
	for rows.Next() {
		var cid int
		var name, typ string
		var notNull, pk int
		var dflt sql.NullString
		require.NoError(t, rows.Scan(&cid, &name, &typ, &notNull, &dflt, &pk))
		if name == "kind" {
			found = true
			assert.Equal(t, "'linked'", dflt.String)
		}
	}
	require.NoError(t, rows.Err())
	assert.True(t, found, "visits table should have kind column")
}

func TestMigrate_VisitKindCheckConstraint(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO visits (id, kind, date, created_at, updated_at)
		VALUES ('v1', 'other', '2025-01-01', '2025-01-01T00:00:00Z', '2025-01-01T00:00:00Z')`)
	assert.Error(t, err, "unknown kind should be rejected by CHECK constraint")
}

func TestMigrate_ProjectStatusCheckConstraint(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO projects (id, name, status, created_at, updated_at)
		VALUES ('p1', 'Park', 'paused', '2025-01-01T00:00:00Z', '2025-01-01T00:00:00Z')`)
	assert.Error(t, err)
}

func TestMigrate_TeamDeleteClearsProjectTeam(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO teams (id, name, created_at) VALUES ('t1', 'North', '2025-01-01T00:00:00Z')`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO projects (id, name, team_id, created_at, updated_at)
		VALUES ('p1', 'Park', 't1', '2025-01-01T00:00:00Z', '2025-01-01T00:00:00Z')`)
	require.NoError(t, err)

	_, err = db.Exec(`DELETE FROM teams WHERE id = 't1'`)
	require.NoError(t, err)

	var teamID sql.NullString
	require.NoError(t, db.QueryRow(`SELECT team_id FROM projects WHERE id = 'p1'`).Scan(&teamID))
	assert.False(t, teamID.Valid)
}

func TestMigrate_BackfillsLegacyBlankVisits(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO visits (id, project_id, date, created_at, updated_at)
		VALUES ('blank-1700000000', 'p9', '2024-03-02', '2024-03-02T00:00:00Z', '2024-03-02T00:00:00Z'),
		       ('v2', 'p1', '2024-03-02', '2024-03-02T00:00:00Z', '2024-03-02T00:00:00Z')`)
	require.NoError(t, err)

	require.NoError(t, Migrate(db))

	var kind string
	var projectID sql.NullString
	require.NoError(t, db.QueryRow(`SELECT kind, project_id FROM visits WHERE id = 'blank-1700000000'`).Scan(&kind, &projectID))
	assert.Equal(t, "blank", kind)
	assert.False(t, projectID.Valid)

	require.NoError(t, db.QueryRow(`SELECT kind FROM visits WHERE id = 'v2'`).Scan(&kind))
	assert.Equal(t, "linked", kind)
}
