package service

import (
	"context"

	"todo_api/internal/models"
	"todo_api/internal/repository"
)

// TodoService passes requests straight to the gateway. Item text is stored
// as given; there is no validation beyond the JSON type.
type TodoService struct {
	todoRepo repository.TodoRepo
}

func NewTodoService(todoRepo repository.TodoRepo) *TodoService {
	return &TodoService{todoRepo: todoRepo}
}

func (s *TodoService) List(ctx context.Context) ([]models.TodoItem, error) {
	items, err := s.todoRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []models.TodoItem{}
	}
	return items, nil
}

func (s *TodoService) Create(ctx context.Context, item string) (int64, error) {
	return s.todoRepo.Insert(ctx, item)
}

func (s *TodoService) Delete(ctx context.Context, id int64) (int64, error) {
	return s.todoRepo.Delete(ctx, id)
}
