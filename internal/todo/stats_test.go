package todo_test

import (
	"testing"
	"time"

	"todo-backend/internal/model"
	"todo-backend/internal/todo"
)

func TestComputeStats(t *testing.T) {
	// Wednesday 2025-03-12 15:00 UTC; the week started Sunday 2025-03-09.
	now := time.Date(2025, 3, 12, 15, 0, 0, 0, time.UTC)
	today := time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)

	t.Run("Empty Collection", func(t *testing.T) {
		s := todo.ComputeStats(nil, now)
		if s != (todo.Stats{}) {
			t.Errorf("expected zero stats, got %+v", s)
		}
	})

	t.Run("Counts And Active Completed Invariant", func(t *testing.T) {
		lastMonth := now.AddDate(0, -1, 0)
		todos := []model.Todo{
			{Completed: true, UpdatedAt: today.Add(2 * time.Hour)},
			{Completed: true, UpdatedAt: today.Add(5 * time.Hour)},
			{Completed: true, UpdatedAt: lastMonth},
			{Completed: false, UpdatedAt: now},
			{Completed: false, UpdatedAt: now},
		}

		s := todo.ComputeStats(todos, now)
		if s.Total != 5 || s.Completed != 3 || s.Active != 2 {
			t.Errorf("unexpected counts: %+v", s)
		}
		if s.Active+s.Completed != s.Total {
			t.Errorf("active+completed != total: %+v", s)
		}
		if s.CompletedToday != 2 {
			t.Errorf("expected completedToday=2, got %d", s.CompletedToday)
		}
	})

	t.Run("Overdue Ignores Completed", func(t *testing.T) {
		past := now.Add(-24 * time.Hour)
		future := now.Add(24 * time.Hour)
		todos := []model.Todo{
			{Completed: false, DueDate: &past},
			{Completed: true, DueDate: &past}, // completed: not overdue
			{Completed: false, DueDate: &future},
			{Completed: false}, // no due date
		}

		s := todo.ComputeStats(todos, now)
		if s.Overdue != 1 {
			t.Errorf("expected overdue=1, got %d", s.Overdue)
		}
	})

	t.Run("Completed This Week Bounded By Sunday", func(t *testing.T) {
		monday := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)   // inside week
		saturday := time.Date(2025, 3, 8, 9, 0, 0, 0, time.UTC)  // before week start
		sunday := time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC)    // exactly week start
		todos := []model.Todo{
			{Completed: true, UpdatedAt: monday},
			{Completed: true, UpdatedAt: saturday},
			{Completed: true, UpdatedAt: sunday},
		}

		s := todo.ComputeStats(todos, now)
		if s.CompletedThisWeek != 2 {
			t.Errorf("expected completedThisWeek=2, got %d", s.CompletedThisWeek)
		}
	})

	t.Run("Updated At Boundary Is Inclusive", func(t *testing.T) {
		todos := []model.Todo{{Completed: true, UpdatedAt: today}}
		s := todo.ComputeStats(todos, now)
		if s.CompletedToday != 1 {
			t.Errorf("midnight update must count as today, got %d", s.CompletedToday)
		}
	})
}

func TestIsOverdue(t *testing.T) {
	now := time.Date(2025, 3, 12, 15, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	cases := []struct {
		name string
		todo model.Todo
		want bool
	}{
		{"No Due Date", model.Todo{}, false},
		{"Completed With Past Due", model.Todo{Completed: true, DueDate: &past}, false},
		{"Past Due", model.Todo{DueDate: &past}, true},
		{"Future Due", model.Todo{DueDate: &future}, false},
		{"Due Exactly Now", model.Todo{DueDate: &now}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := todo.IsOverdue(tc.todo, now); got != tc.want {
				t.Errorf("IsOverdue = %v, want %v", got, tc.want)
			}
		})
	}
}
