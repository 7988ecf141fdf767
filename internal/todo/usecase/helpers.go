package usecase

import (
	"todo-backend/internal/model"
	"todo-backend/internal/todo"
)

// validateTodoFields enforces the field rules shared by create and update:
// non-empty title, known priority and category, and a recurring pattern only
// on recurring todos.
func validateTodoFields(title string, priority model.Priority, categoryID string, isRecurring bool, pattern model.RecurringPattern) error {
	if title == "" {
		return todo.ErrTitleRequired
	}

	switch priority {
	case model.PriorityLow, model.PriorityMedium, model.PriorityHigh:
	default:
		return todo.ErrInvalidPriority
	}

	if !model.ValidCategory(categoryID) {
		return todo.ErrUnknownCategory
	}

	if pattern != "" {
		if !isRecurring {
			return todo.ErrInvalidPattern
		}
		switch pattern {
		case model.RecurringDaily, model.RecurringWeekly, model.RecurringMonthly:
		default:
			return todo.ErrInvalidPattern
		}
	}

	return nil
}

// mergeString returns the updated value when provided, else the existing one.
func mergeString(updated *string, existing string) string {
	if updated != nil {
		return *updated
	}
	return existing
}

func mergeBool(updated *bool, existing bool) bool {
	if updated != nil {
		return *updated
	}
	return existing
}

func mergeInt(updated *int, existing int) int {
	if updated != nil {
		return *updated
	}
	return existing
}
