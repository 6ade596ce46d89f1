package repository

import (
	"context"
	"database/sql"
	"time"

	"todo_api/internal/models"
)

const (
	opList   = "list"
	opInsert = "insert"
	opDelete = "delete"

	selectTodoItemsSQL = `SELECT id, item FROM todo_list`
	insertTodoItemSQL  = `INSERT INTO todo_list (id, item) VALUES (NULL, ?)`
	deleteTodoItemSQL  = `DELETE FROM todo_list WHERE id = ?`
)

// TodoSQLite runs each operation on its own connection taken from the pool
// and returns it before the call ends. Nothing is shared between calls.
type TodoSQLite struct {
	db        *sql.DB
	opTimeout time.Duration
}

func NewTodoSQLite(db *sql.DB, opTimeout time.Duration) *TodoSQLite {
	return &TodoSQLite{db: db, opTimeout: opTimeout}
}

var _ TodoRepo = (*TodoSQLite)(nil)

func (r *TodoSQLite) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.opTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, r.opTimeout)
}

// prepare acquires a connection and prepares query on it. The returned
// release func closes the statement and hands the connection back.
func (r *TodoSQLite) prepare(ctx context.Context, op, query string) (*sql.Stmt, func(), error) {
	conn, err := r.db.Conn(ctx)
	if err != nil {
		return nil, nil, storageErr(op, StageConnect, err)
	}
	stmt, err := conn.PrepareContext(ctx, query)
	if err != nil {
		_ = conn.Close()
		return nil, nil, storageErr(op, StagePrepare, err)
	}
	release := func() {
		_ = stmt.Close()
		_ = conn.Close()
	}
	return stmt, release, nil
}

// List returns every todo item. Any failure, including a single row that
// does not decode, discards the whole result.
func (r *TodoSQLite) List(ctx context.Context) ([]models.TodoItem, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	stmt, release, err := r.prepare(ctx, opList, selectTodoItemsSQL)
	if err != nil {
		return nil, err
	}
	defer release()

	rows, err := stmt.QueryContext(ctx)
	if err != nil {
		return nil, storageErr(opList, StageExecute, err)
	}
	defer func() { _ = rows.Close() }()

	out := make([]models.TodoItem, 0)
	for rows.Next() {
		var it models.TodoItem
		if err := rows.Scan(&it.ID, &it.Item); err != nil {
			return nil, storageErr(opList, StageDecode, err)
		}
		out = append(out, it)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr(opList, StageDecode, err)
	}
	return out, nil
}

// Insert stores item under a database-assigned id and returns rows affected.
func (r *TodoSQLite) Insert(ctx context.Context, item string) (int64, error) {
	return r.exec(ctx, opInsert, insertTodoItemSQL, item)
}

// Delete removes the item with id. A missing id yields 0 and no error.
func (r *TodoSQLite) Delete(ctx context.Context, id int64) (int64, error) {
	return r.exec(ctx, opDelete, deleteTodoItemSQL, id)
}

func (r *TodoSQLite) exec(ctx context.Context, op, query string, args ...any) (int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	stmt, release, err := r.prepare(ctx, op, query)
	if err != nil {
		return 0, err
	}
	defer release()

	res, err := stmt.ExecContext(ctx, args...)
	if err != nil {
		return 0, storageErr(op, StageExecute, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, storageErr(op, StageExecute, err)
	}
	return n, nil
}
