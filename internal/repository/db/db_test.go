package db

import (
	"context"
	"errors"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestDSN_EncodesPragmas(t *testing.T) {
	dsn := DSN("data.sqlite", 2*time.Second)
	path, rawQuery, ok := strings.Cut(dsn, "?")
	if !ok || path != "data.sqlite" {
		t.Fatalf("unexpected dsn %q", dsn)
	}
	q, err := url.ParseQuery(rawQuery)
	if err != nil {
		t.Fatalf("parse query: %v", err)
	}
	want := []string{"busy_timeout(2000)", "journal_mode(WAL)", "foreign_keys(1)"}
	got := q["_pragma"]
	if len(got) != len(want) {
		t.Fatalf("pragmas=%v; want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("pragma %d = %q; want %q", i, got[i], want[i])
		}
	}
}

func TestEnsureSchema_CreatesFileAndTables(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.sqlite")
	db, err := Open(path, Options{MaxOpenConns: 2, BusyTimeout: time.Second})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer func() { _ = db.Close() }()

	ctx := context.Background()
	if err := EnsureSchema(ctx, db); err != nil {
		t.Fatalf("EnsureSchema: %v", err)
	}
	// idempotent
	if err := EnsureSchema(ctx, db); err != nil {
		t.Fatalf("EnsureSchema second run: %v", err)
	}

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("database file not created: %v", err)
	}

	for _, table := range []string{"users", "todo_list"} {
		var name string
		err := db.QueryRowContext(ctx,
			`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&name)
		if err != nil {
			t.Fatalf("table %s missing: %v", table, err)
		}
	}

	// item is NOT NULL
	if _, err := db.ExecContext(ctx, `INSERT INTO todo_list (id, item) VALUES (NULL, NULL)`); err == nil {
		t.Fatalf("expected NOT NULL violation")
	}
}

func TestEnsureSchema_UnreachableFileIsConnectError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "dir", "data.sqlite")
	db, err := Open(path, Options{MaxOpenConns: 1})
	if err != nil {
		t.Fatalf("Open should be lazy, got %v", err)
	}
	defer func() { _ = db.Close() }()

	err = EnsureSchema(context.Background(), db)
	if !errors.Is(err, ErrConnect) {
		t.Fatalf("expected ErrConnect, got %v", err)
	}
	if errors.Is(err, ErrSchema) {
		t.Fatalf("connect failure must not be reported as schema failure: %v", err)
	}
}

func TestEnsureSchema_StatementFailureIsSchemaError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer func() { _ = db.Close() }()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(schemaUsers)).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta(schemaTodoList)).WillReturnError(errors.New("malformed schema"))
	mock.ExpectRollback()

	err = EnsureSchema(context.Background(), db)
	if !errors.Is(err, ErrSchema) {
		t.Fatalf("expected ErrSchema, got %v", err)
	}
	if !strings.Contains(err.Error(), "statement 2") {
		t.Fatalf("expected failing statement index in %q", err.Error())
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("mock expectations: %v", err)
	}
}

func TestEnsureSchema_ClosedPoolIsConnectError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	mock.ExpectClose()
	if err := db.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	err = EnsureSchema(context.Background(), db)
	if !errors.Is(err, ErrConnect) {
		t.Fatalf("expected ErrConnect, got %v", err)
	}
}
