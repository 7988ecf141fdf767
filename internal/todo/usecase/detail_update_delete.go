package usecase

import (
	"context"

	"todo-backend/internal/model"
	"todo-backend/internal/todo"
	repo "todo-backend/internal/todo/repository"
)

// Detail retrieves a single Todo by ID. Returns ErrTodoNotFound when not found.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (todo.DetailTodoOutput, error) {
	item, err := uc.repo.GetOneTodo(ctx, repo.GetOneTodoOptions{ID: id, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneTodo: %v", err)
		return todo.DetailTodoOutput{}, err
	}
	if item.ID == "" {
		return todo.DetailTodoOutput{}, todo.ErrTodoNotFound
	}
	return todo.DetailTodoOutput{Todo: item}, nil
}

// Update applies a partial update: nil input fields keep the stored value.
// The merged row is validated as a whole, then written in one UPDATE that
// refreshes updated_at.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input todo.UpdateTodoInput) (todo.UpdateTodoOutput, error) {
	existing, err := uc.repo.GetOneTodo(ctx, repo.GetOneTodoOptions{ID: input.ID, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update GetOneTodo: %v", err)
		return todo.UpdateTodoOutput{}, err
	}
	if existing.ID == "" {
		return todo.UpdateTodoOutput{}, todo.ErrTodoNotFound
	}

	merged := repo.UpdateTodoOptions{
		ID:          existing.ID,
		UserID:      sc.UserID,
		Title:       mergeString(input.Title, existing.Title),
		Description: mergeString(input.Description, existing.Description),
		Completed:   mergeBool(input.Completed, existing.Completed),
		Priority:    existing.Priority,
		DueDate:     existing.DueDate,
		Reminder:    existing.Reminder,
		CategoryID:  existing.CategoryID,
		Tags:        existing.Tags,
		IsRecurring: mergeBool(input.IsRecurring, existing.IsRecurring),
		// Order is a manual sort hint; it survives unrelated updates.
		Order:            mergeInt(input.Order, existing.Order),
		RecurringPattern: existing.RecurringPattern,
	}
	if input.Priority != nil {
		merged.Priority = *input.Priority
	}
	if input.DueDate != nil {
		merged.DueDate = input.DueDate
	}
	if input.Reminder != nil {
		merged.Reminder = input.Reminder
	}
	if input.CategoryID != nil {
		merged.CategoryID = *input.CategoryID
	}
	if input.Tags != nil {
		merged.Tags = input.Tags
	}
	if input.RecurringPattern != nil {
		merged.RecurringPattern = *input.RecurringPattern
	}

	if err := validateTodoFields(merged.Title, merged.Priority, merged.CategoryID, merged.IsRecurring, merged.RecurringPattern); err != nil {
		return todo.UpdateTodoOutput{}, err
	}

	item, err := uc.repo.UpdateTodo(ctx, merged)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateTodo: %v", err)
		return todo.UpdateTodoOutput{}, err
	}
	if item.ID == "" {
		return todo.UpdateTodoOutput{}, todo.ErrTodoNotFound
	}
	return todo.UpdateTodoOutput{Todo: item}, nil
}

// Delete removes a Todo by ID. Returns ErrTodoNotFound when not found.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	existing, err := uc.repo.GetOneTodo(ctx, repo.GetOneTodoOptions{ID: id, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete GetOneTodo: %v", err)
		return err
	}
	if existing.ID == "" {
		return todo.ErrTodoNotFound
	}
	if err := uc.repo.DeleteTodo(ctx, repo.DeleteTodoOptions{ID: id, UserID: sc.UserID}); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteTodo: %v", err)
		return err
	}
	return nil
}
