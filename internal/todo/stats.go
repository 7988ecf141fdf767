package todo

import (
	"time"

	"todo-backend/internal/model"
)

// ComputeStats derives the counts snapshot from a todo collection, evaluated
// against the given wall-clock time.
//
// CompletedToday / CompletedThisWeek key off UpdatedAt: there is no dedicated
// completion timestamp, so any update to an already-completed todo counts it
// into the current window again. This mirrors the mobile client's behavior.
func ComputeStats(todos []model.Todo, now time.Time) Stats {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	// Week starts on the most recent Sunday at or before today.
	weekStart := today.AddDate(0, 0, -int(today.Weekday()))

	s := Stats{Total: len(todos)}
	for _, t := range todos {
		if t.Completed {
			s.Completed++
			if !t.UpdatedAt.Before(today) {
				s.CompletedToday++
			}
			if !t.UpdatedAt.Before(weekStart) {
				s.CompletedThisWeek++
			}
			continue
		}
		if t.DueDate != nil && t.DueDate.Before(now) {
			s.Overdue++
		}
	}
	s.Active = s.Total - s.Completed
	return s
}

// IsOverdue reports whether a todo is past its due date. Completed todos and
// todos without a due date are never overdue.
func IsOverdue(t model.Todo, now time.Time) bool {
	if t.DueDate == nil || t.Completed {
		return false
	}
	return t.DueDate.Before(now)
}
