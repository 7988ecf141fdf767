package repository

import (
	"context"

	"todo-backend/internal/model"
)

// Repository is the composed interface for the todo domain data store.
type Repository interface {
	TodoRepository
}

// TodoRepository defines all data access methods for the Todo entity.
//
// GetOneTodo returns a zero-value Todo (ID == "") when nothing matches — the
// use case layer decides whether that is an error.
type TodoRepository interface {
	CreateTodo(ctx context.Context, opt CreateTodoOptions) (model.Todo, error)
	GetOneTodo(ctx context.Context, opt GetOneTodoOptions) (model.Todo, error)
	ListTodos(ctx context.Context, opt ListTodosOptions) ([]model.Todo, error)
	UpdateTodo(ctx context.Context, opt UpdateTodoOptions) (model.Todo, error)
	DeleteTodo(ctx context.Context, opt DeleteTodoOptions) error

	// ListDueTodos returns unnotified, uncompleted todos whose due date is at
	// or before the given instant, joined with the owner's registered push
	// tokens. Todos whose owner has no device are not returned.
	ListDueTodos(ctx context.Context, opt ListDueTodosOptions) ([]DueTodo, error)

	// MarkNotified sets is_notified on the given todo ids.
	MarkNotified(ctx context.Context, ids []string) error
}
