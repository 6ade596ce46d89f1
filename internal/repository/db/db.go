package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"time"

	_ "modernc.org/sqlite"
)

const sqliteDriverName = "sqlite"

var (
	// ErrConnect reports that no connection to the database file could be made.
	ErrConnect = errors.New("connect to sqlite")
	// ErrSchema reports a failed schema statement on a live connection.
	ErrSchema = errors.New("apply sqlite schema")
)

// Options tune the connection pool.
type Options struct {
	MaxOpenConns int
	BusyTimeout  time.Duration
}

// DSN builds a modernc.org/sqlite data source name. Pragmas in the DSN are
// applied to every new connection in the pool, not only the first one.
func DSN(path string, busyTimeout time.Duration) string {
	q := url.Values{}
	q.Add("_pragma", "busy_timeout("+strconv.FormatInt(busyTimeout.Milliseconds(), 10)+")")
	q.Add("_pragma", "journal_mode(WAL)")
	q.Add("_pragma", "foreign_keys(1)")
	return path + "?" + q.Encode()
}

// Open returns a bounded pool over the SQLite file at path. No connection is
// made yet; the file is created on first use.
func Open(path string, opts Options) (*sql.DB, error) {
	db, err := sql.Open(sqliteDriverName, DSN(path, opts.BusyTimeout))
	if err != nil {
		return nil, fmt.Errorf("open sqlite at %q: %w", path, err)
	}

	maxOpen := opts.MaxOpenConns
	if maxOpen <= 0 {
		maxOpen = 1
	}
	db.SetMaxOpenConns(maxOpen)
	db.SetMaxIdleConns(maxOpen)
	return db, nil
}

const schemaUsers = `
CREATE TABLE IF NOT EXISTS users (
    id       INTEGER PRIMARY KEY,
    name     TEXT NOT NULL,
    email    TEXT NOT NULL,
    password TEXT NOT NULL
);
`

const schemaTodoList = `
CREATE TABLE IF NOT EXISTS todo_list (
    id   INTEGER PRIMARY KEY,
    item VARCHAR(64) NOT NULL
);
`

// EnsureSchema creates the users and todo_list tables if they are missing.
// A failure to reach the file wraps ErrConnect; a failure of any statement
// once connected wraps ErrSchema. Callers treat the two differently.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	conn, err := db.Conn(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConnect, err)
	}
	defer func() { _ = conn.Close() }()

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: begin transaction: %w", ErrSchema, err)
	}
	defer func() {
		// no-op after a successful commit
		_ = tx.Rollback()
	}()

	for i, stmt := range []string{
		schemaUsers,
		schemaTodoList,
	} {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("%w: statement %d: %w", ErrSchema, i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: commit: %w", ErrSchema, err)
	}
	return nil
}
