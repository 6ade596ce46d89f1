package service

import (
	"context"

	"todo_api/internal/models"
	"todo_api/internal/repository"
)

// TodoList exposes the todo item operations to the HTTP layer.
type TodoList interface {
	List(ctx context.Context) ([]models.TodoItem, error)
	Create(ctx context.Context, item string) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

// Service aggregates all sub-services.
type Service struct {
	TodoList
}

func NewService(repos *repository.Repository) *Service {
	return &Service{
		TodoList: NewTodoService(repos.TodoRepo),
	}
}
