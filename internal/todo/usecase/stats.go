package usecase

import (
	"context"
	"time"

	"todo-backend/internal/model"
	"todo-backend/internal/todo"
	repo "todo-backend/internal/todo/repository"
)

// Stats computes the counts snapshot against the current wall clock.
// Never cached: "today" and "overdue" shift with time.
func (uc *implUseCase) Stats(ctx context.Context, sc model.Scope) (todo.StatsOutput, error) {
	snapshot, err := uc.repo.ListTodos(ctx, repo.ListTodosOptions{UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Stats ListTodos: %v", err)
		return todo.StatsOutput{}, err
	}

	return todo.StatsOutput{Stats: todo.ComputeStats(snapshot, time.Now())}, nil
}
