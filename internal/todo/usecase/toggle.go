package usecase

import (
	"context"

	"todo-backend/internal/model"
	"todo-backend/internal/todo"
	repo "todo-backend/internal/todo/repository"
)

// ToggleComplete flips the completion flag of a todo. It is a regular update,
// so updated_at moves — which is what feeds the completed-today statistics.
func (uc *implUseCase) ToggleComplete(ctx context.Context, sc model.Scope, id string) (todo.UpdateTodoOutput, error) {
	existing, err := uc.repo.GetOneTodo(ctx, repo.GetOneTodoOptions{ID: id, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ToggleComplete GetOneTodo: %v", err)
		return todo.UpdateTodoOutput{}, err
	}
	if existing.ID == "" {
		return todo.UpdateTodoOutput{}, todo.ErrTodoNotFound
	}

	item, err := uc.repo.UpdateTodo(ctx, repo.UpdateTodoOptions{
		ID:               existing.ID,
		UserID:           sc.UserID,
		Title:            existing.Title,
		Description:      existing.Description,
		Completed:        !existing.Completed,
		Priority:         existing.Priority,
		DueDate:          existing.DueDate,
		Reminder:         existing.Reminder,
		CategoryID:       existing.CategoryID,
		Tags:             existing.Tags,
		IsRecurring:      existing.IsRecurring,
		RecurringPattern: existing.RecurringPattern,
		Order:            existing.Order,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ToggleComplete UpdateTodo: %v", err)
		return todo.UpdateTodoOutput{}, err
	}
	if item.ID == "" {
		return todo.UpdateTodoOutput{}, todo.ErrTodoNotFound
	}
	return todo.UpdateTodoOutput{Todo: item}, nil
}
