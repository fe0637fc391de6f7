// Package sqlite provides the SQLite-backed page cache of awardscan.
package sqlite

import (
	"context"
	"database/sql"

	"github.com/cjubb39/awardscan"
	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

// SchemaVersion is the version of the pages schema, kept in the database's
// user_version.
const SchemaVersion = 1

// DB is a page cache database.
type DB struct {
	db   *sql.DB
	path string
}

// NewDB creates a new DB instance with the given path.
// Use ":memory:" for an in-memory database.
func NewDB(path string) *DB {
	return &DB{path: path}
}

// Open opens the cache database and creates the schema if needed. A cache
// written by a newer schema version is refused with EINVALID.
func (db *DB) Open() error {
	conn, err := sql.Open("sqlite3", db.path)
	if err != nil {
		return awardscan.WrapErrorf(awardscan.EUNAVAILABLE, err, "open page cache %s", db.path)
	}

	// SQLite only supports one writer at a time, so limit to one connection.
	conn.SetMaxOpenConns(1)

	if err := conn.Ping(); err != nil {
		conn.Close()
		return awardscan.WrapErrorf(awardscan.EUNAVAILABLE, err, "open page cache %s", db.path)
	}

	// Concurrent year lookups share the single connection.
	if _, err := conn.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		conn.Close()
		return awardscan.WrapErrorf(awardscan.EUNAVAILABLE, err, "set busy timeout")
	}

	// WAL is not supported for in-memory databases.
	if db.path != ":memory:" {
		if _, err := conn.Exec("PRAGMA journal_mode = WAL"); err != nil {
			conn.Close()
			return awardscan.WrapErrorf(awardscan.EUNAVAILABLE, err, "enable WAL mode")
		}
	}

	db.db = conn

	if err := db.migrate(); err != nil {
		conn.Close()
		return err
	}

	return nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	if db.db != nil {
		return db.db.Close()
	}
	return nil
}

// QueryRowContext executes a query that returns a single row.
func (db *DB) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return db.db.QueryRowContext(ctx, query, args...)
}

// ExecContext executes a statement that doesn't return rows.
func (db *DB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return db.db.ExecContext(ctx, query, args...)
}

// migrate brings the schema up to SchemaVersion.
func (db *DB) migrate() error {
	var version int
	if err := db.db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return awardscan.WrapErrorf(awardscan.EUNAVAILABLE, err, "read schema version")
	}
	if version > SchemaVersion {
		return awardscan.Errorf(awardscan.EINVALID, "page cache %s has schema version %d, newer than %d", db.path, version, SchemaVersion)
	}
	if version == SchemaVersion {
		return nil
	}

	schema := `
		CREATE TABLE IF NOT EXISTS pages (
			id TEXT PRIMARY KEY,
			url TEXT NOT NULL UNIQUE,
			content TEXT NOT NULL DEFAULT '',
			content_hash TEXT NOT NULL DEFAULT '',
			fetched_at TEXT NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_pages_fetched_at ON pages(fetched_at);

		PRAGMA user_version = 1;
	`
	if _, err := db.db.Exec(schema); err != nil {
		return awardscan.WrapErrorf(awardscan.EINTERNAL, err, "create schema")
	}
	return nil
}
