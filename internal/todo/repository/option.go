package repository

import (
	"time"

	"todo-backend/internal/model"
)

// CreateTodoOptions holds parameters for inserting a new Todo.
// ID, created_at and updated_at are assigned by the database.
type CreateTodoOptions struct {
	UserID           string
	Title            string
	Description      string
	Priority         model.Priority
	DueDate          *time.Time
	Reminder         *time.Time
	CategoryID       string
	Tags             []string
	IsRecurring      bool
	RecurringPattern model.RecurringPattern
	Order            int
}

// GetOneTodoOptions holds filter parameters for fetching a single Todo.
// All non-empty fields are applied as AND conditions.
type GetOneTodoOptions struct {
	ID     string
	UserID string
}

// ListTodosOptions holds filter parameters for listing Todos. The store only
// scopes by owner; filtering and sorting happen in memory on the snapshot.
type ListTodosOptions struct {
	UserID string
}

// UpdateTodoOptions carries the full post-merge column values for an update.
// The use case resolves partial input against the existing row first, so the
// store runs a single static UPDATE; updated_at is refreshed unconditionally.
type UpdateTodoOptions struct {
	ID               string
	UserID           string
	Title            string
	Description      string
	Completed        bool
	Priority         model.Priority
	DueDate          *time.Time
	Reminder         *time.Time
	CategoryID       string
	Tags             []string
	IsRecurring      bool
	RecurringPattern model.RecurringPattern
	Order            int
}

// DeleteTodoOptions identifies the Todo to remove.
type DeleteTodoOptions struct {
	ID     string
	UserID string
}

// ListDueTodosOptions bounds the due-todo query.
type ListDueTodosOptions struct {
	Before time.Time
}

// DueTodo is one row of the due-todo query: a todo joined with its owner's
// registered push tokens.
type DueTodo struct {
	ID     string
	Title  string
	UserID string
	Tokens []string
}
