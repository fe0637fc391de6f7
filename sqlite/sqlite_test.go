package sqlite_test

import (
	"context"
	"testing"

	"github.com/cjubb39/awardscan"
	"github.com/cjubb39/awardscan/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDB_Open(t *testing.T) {
	t.Parallel()

	t.Run("creates schema on first open", func(t *testing.T) {
		t.Parallel()

		db := sqlite.NewDB(":memory:")
		err := db.Open()
		require.NoError(t, err)
		defer db.Close()

		// Verify tables exist by querying them
		ctx := context.Background()

		// Check pages table exists
		var pageCount int
		err = db.QueryRowContext(ctx, "SELECT COUNT(*) FROM pages").Scan(&pageCount)
		require.NoError(t, err)
		require.Zero(t, pageCount)
	})

	t.Run("returns error for invalid path", func(t *testing.T) {
		t.Parallel()

		db := sqlite.NewDB("/nonexistent/path/db.sqlite")
		err := db.Open()
		require.Error(t, err)
		assert.Equal(t, awardscan.EUNAVAILABLE, awardscan.ErrorCode(err))
	})

	t.Run("records the schema version", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)

		var version int
		err := db.QueryRowContext(context.Background(), "PRAGMA user_version").Scan(&version)
		require.NoError(t, err)
		assert.Equal(t, sqlite.SchemaVersion, version)
	})

	t.Run("reopens an existing cache", func(t *testing.T) {
		t.Parallel()

		dbPath := t.TempDir() + "/cache.db"
		first := sqlite.NewDB(dbPath)
		require.NoError(t, first.Open())
		_, err := first.ExecContext(context.Background(),
			`INSERT INTO pages (id, url, fetched_at) VALUES ('a', 'https://en.wikipedia.org/wiki/Wings', '2026-01-01T00:00:00Z')`)
		require.NoError(t, err)
		require.NoError(t, first.Close())

		second := sqlite.NewDB(dbPath)
		require.NoError(t, second.Open())
		defer second.Close()

		var n int
		require.NoError(t, second.QueryRowContext(context.Background(), "SELECT COUNT(*) FROM pages").Scan(&n))
		assert.Equal(t, 1, n)
	})

	t.Run("refuses a cache from a newer schema", func(t *testing.T) {
		t.Parallel()

		dbPath := t.TempDir() + "/cache.db"
		first := sqlite.NewDB(dbPath)
		require.NoError(t, first.Open())
		_, err := first.ExecContext(context.Background(), "PRAGMA user_version = 99")
		require.NoError(t, err)
		require.NoError(t, first.Close())

		err = sqlite.NewDB(dbPath).Open()
		assert.Equal(t, awardscan.EINVALID, awardscan.ErrorCode(err))
	})

	t.Run("enables WAL mode for file-based databases", func(t *testing.T) {
		t.Parallel()

		dbPath := t.TempDir() + "/test.db"
		db := sqlite.NewDB(dbPath)
		err := db.Open()
		require.NoError(t, err)
		defer db.Close()

		ctx := context.Background()
		var journalMode string
		err = db.QueryRowContext(ctx, "PRAGMA journal_mode").Scan(&journalMode)
		require.NoError(t, err)
		require.Equal(t, "wal", journalMode)
	})
}

func setupTestDB(t *testing.T) *sqlite.DB {
	t.Helper()
	db := sqlite.NewDB(":memory:")
	require.NoError(t, db.Open())
	t.Cleanup(func() { db.Close() })
	return db
}
