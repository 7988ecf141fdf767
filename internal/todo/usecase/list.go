package usecase

import (
	"context"

	"todo-backend/internal/model"
	"todo-backend/internal/todo"
	repo "todo-backend/internal/todo/repository"
)

// List fetches the caller's full todo snapshot and applies the filter
// specification in memory. The store is only scoped by owner — filtering and
// sorting stay client-side semantics, computed per request.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input todo.ListTodosInput) (todo.ListTodosOutput, error) {
	snapshot, err := uc.repo.ListTodos(ctx, repo.ListTodosOptions{UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListTodos: %v", err)
		return todo.ListTodosOutput{}, err
	}

	filtered := todo.FilterAndSort(snapshot, input.Filters)
	return todo.ListTodosOutput{
		Todos: filtered,
		Total: len(filtered),
	}, nil
}
