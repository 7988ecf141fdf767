package usecase

import (
	"context"
	"time"

	"todo-backend/internal/model"
	"todo-backend/internal/todo"
	repo "todo-backend/internal/todo/repository"
	"todo-backend/pkg/gcalendar"
)

// Create validates and persists a new todo. When calendar export is
// configured and the todo carries a due date, a calendar event is created
// best-effort: an export failure is logged and never fails the create.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input todo.CreateTodoInput) (todo.CreateTodoOutput, error) {
	if err := validateTodoFields(input.Title, input.Priority, input.CategoryID, input.IsRecurring, input.RecurringPattern); err != nil {
		return todo.CreateTodoOutput{}, err
	}

	item, err := uc.repo.CreateTodo(ctx, repo.CreateTodoOptions{
		UserID:           sc.UserID,
		Title:            input.Title,
		Description:      input.Description,
		Priority:         input.Priority,
		DueDate:          input.DueDate,
		Reminder:         input.Reminder,
		CategoryID:       input.CategoryID,
		Tags:             input.Tags,
		IsRecurring:      input.IsRecurring,
		RecurringPattern: input.RecurringPattern,
		Order:            input.Order,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateTodo: %v", err)
		return todo.CreateTodoOutput{}, err
	}

	if uc.calendar != nil && item.DueDate != nil {
		uc.exportCalendarEvent(ctx, item)
	}

	return todo.CreateTodoOutput{Todo: item}, nil
}

// exportCalendarEvent mirrors the todo into the user's calendar as a one-hour
// block ending at the due date.
func (uc *implUseCase) exportCalendarEvent(ctx context.Context, item model.Todo) {
	_, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  uc.calendarID,
		Summary:     item.Title,
		Description: item.Description,
		StartTime:   item.DueDate.Add(-time.Hour),
		EndTime:     *item.DueDate,
		Timezone:    uc.timezone,
	})
	if err != nil {
		uc.l.Warnf(ctx, "uc.Create calendar export failed for todo %s: %v", item.ID, err)
	}
}
