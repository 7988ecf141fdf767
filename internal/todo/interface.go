package todo

import (
	"context"

	"todo-backend/internal/model"
)

// UseCase defines the business logic interface for the todo domain.
// Filtering, sorting and statistics happen over an in-memory snapshot of the
// caller's todos, matching the mobile client's query model.
type UseCase interface {
	// List fetches the caller's todos and returns them filtered and sorted.
	List(ctx context.Context, sc model.Scope, input ListTodosInput) (ListTodosOutput, error)

	// Detail returns a single todo by id.
	Detail(ctx context.Context, sc model.Scope, id string) (DetailTodoOutput, error)

	// Create persists a new todo; id and timestamps are server-assigned.
	Create(ctx context.Context, sc model.Scope, input CreateTodoInput) (CreateTodoOutput, error)

	// Update applies a partial update and refreshes updated_at.
	Update(ctx context.Context, sc model.Scope, input UpdateTodoInput) (UpdateTodoOutput, error)

	// Delete removes a todo by id.
	Delete(ctx context.Context, sc model.Scope, id string) error

	// ToggleComplete flips the completion flag (an update, so updated_at moves).
	ToggleComplete(ctx context.Context, sc model.Scope, id string) (UpdateTodoOutput, error)

	// Stats computes the counts snapshot for the caller's todos.
	Stats(ctx context.Context, sc model.Scope) (StatsOutput, error)
}
