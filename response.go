package todo_api

import "todo_api/internal/models"

// TodoList is the body of GET /todo.
type TodoList struct {
	Items []models.TodoItem `json:"items"`
}

// StatusMessage is the body of successful POST /todo and DELETE /todo/:id.
type StatusMessage struct {
	Message string `json:"message"`
}

// ErrorResponse carries the static reason of a failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}
