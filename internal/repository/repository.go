package repository

import (
	"context"
	"database/sql"
	"time"

	"todo_api/internal/models"
)

// TodoRepo is the persistence gateway for todo_list.
type TodoRepo interface {
	List(ctx context.Context) ([]models.TodoItem, error)
	Insert(ctx context.Context, item string) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

type Repository struct {
	TodoRepo TodoRepo
}

// NewRepository wires the gateways over a shared pool. opTimeout bounds each
// operation; zero disables the bound.
func NewRepository(db *sql.DB, opTimeout time.Duration) *Repository {
	return &Repository{
		TodoRepo: NewTodoSQLite(db, opTimeout),
	}
}
