package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrateCreatesTables(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, Migrate(db, false))

	for _, table := range EntityTables {
		var name string
		err := db.QueryRow(
			`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&name)
		require.NoError(t, err, "table %s missing", table)
	}

	// Re-running without drop is a no-op.
	require.NoError(t, Migrate(db, false))
}

func TestMigrateForceDropsData(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, Migrate(db, false))
	_, err = db.Exec(`INSERT INTO tags(id, name) VALUES('t1', 'groceries')`)
	require.NoError(t, err)

	require.NoError(t, Migrate(db, true))

	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM tags`).Scan(&count))
	assert.Equal(t, 0, count)
}
