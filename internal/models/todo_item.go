package models

// TodoItem is a single row of the todo_list table.
type TodoItem struct {
	ID   int64  `json:"id"`
	Item string `json:"item"` // VARCHAR(64) by convention, not enforced
}
