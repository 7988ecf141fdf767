package todo_test

import (
	"testing"
	"time"

	"todo-backend/internal/model"
	"todo-backend/internal/todo"
)

func tp(t time.Time) *time.Time { return &t }

func titles(todos []model.Todo) []string {
	out := make([]string, len(todos))
	for i, t := range todos {
		out[i] = t.Title
	}
	return out
}

func equalTitles(got []model.Todo, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range want {
		if got[i].Title != want[i] {
			return false
		}
	}
	return true
}

func TestFilterAndSort(t *testing.T) {
	now := time.Date(2025, 3, 12, 15, 0, 0, 0, time.UTC)

	t.Run("Empty Input", func(t *testing.T) {
		out := todo.FilterAndSort(nil, todo.DefaultFilters())
		if out == nil || len(out) != 0 {
			t.Errorf("expected empty non-nil slice, got %v", out)
		}
	})

	t.Run("Completion Filter", func(t *testing.T) {
		todos := []model.Todo{
			{Title: "a", Completed: false},
			{Title: "b", Completed: true},
			{Title: "c", Completed: false},
		}

		active := todo.FilterAndSort(todos, todo.Filters{Filter: todo.FilterActive})
		if !equalTitles(active, []string{"a", "c"}) {
			t.Errorf("active filter: got %v", titles(active))
		}

		completed := todo.FilterAndSort(todos, todo.Filters{Filter: todo.FilterCompleted})
		if !equalTitles(completed, []string{"b"}) {
			t.Errorf("completed filter: got %v", titles(completed))
		}

		all := todo.FilterAndSort(todos, todo.Filters{Filter: todo.FilterAll})
		if len(all) != 3 {
			t.Errorf("all filter: expected 3, got %d", len(all))
		}
	})

	t.Run("Category Filter Excludes Uncategorized", func(t *testing.T) {
		todos := []model.Todo{
			{Title: "work", CategoryID: "work"},
			{Title: "none"}, // no category
			{Title: "health", CategoryID: "health"},
		}

		out := todo.FilterAndSort(todos, todo.Filters{Filter: todo.FilterAll, Category: "work"})
		if !equalTitles(out, []string{"work"}) {
			t.Errorf("category filter: got %v", titles(out))
		}
	})

	t.Run("Search Matches Title Description And Tags", func(t *testing.T) {
		todos := []model.Todo{
			{Title: "Grocery shopping", Description: "Buy milk"},
			{Title: "Weekly errands", Tags: []string{"groceries"}},
			{Title: "Morning workout", Description: "Gym session", Tags: []string{"fitness"}},
		}
		f := todo.Filters{Filter: todo.FilterAll, Search: "groc"}

		out := todo.FilterAndSort(todos, f)
		if !equalTitles(out, []string{"Grocery shopping", "Weekly errands"}) {
			t.Errorf("search: got %v", titles(out))
		}
	})

	t.Run("Search Is Case Insensitive", func(t *testing.T) {
		todos := []model.Todo{{Title: "Call DENTIST"}}
		out := todo.FilterAndSort(todos, todo.Filters{Filter: todo.FilterAll, Search: "dentist"})
		if len(out) != 1 {
			t.Errorf("expected case-insensitive match, got %v", titles(out))
		}
	})

	t.Run("Whitespace Search Is Not Trimmed", func(t *testing.T) {
		todos := []model.Todo{
			{Title: "no-spaces-here"},
			{Title: "has   three spaces"},
		}
		out := todo.FilterAndSort(todos, todo.Filters{Filter: todo.FilterAll, Search: "   "})
		if !equalTitles(out, []string{"has   three spaces"}) {
			t.Errorf("whitespace search must match literally, got %v", titles(out))
		}
	})

	t.Run("Empty Description Never Matches", func(t *testing.T) {
		todos := []model.Todo{{Title: "x", Description: ""}}
		out := todo.FilterAndSort(todos, todo.Filters{Filter: todo.FilterAll, Search: "milk"})
		if len(out) != 0 {
			t.Errorf("expected no match, got %v", titles(out))
		}
	})

	t.Run("Sort By Created Descending", func(t *testing.T) {
		todos := []model.Todo{
			{Title: "old", CreatedAt: now.Add(-48 * time.Hour)},
			{Title: "new", CreatedAt: now},
			{Title: "mid", CreatedAt: now.Add(-24 * time.Hour)},
		}
		out := todo.FilterAndSort(todos, todo.Filters{Filter: todo.FilterAll, SortBy: todo.SortCreatedAt})
		if !equalTitles(out, []string{"new", "mid", "old"}) {
			t.Errorf("created_at sort: got %v", titles(out))
		}
	})

	t.Run("Sort By Due Date Without Date Last", func(t *testing.T) {
		tomorrow := now.Add(24 * time.Hour)
		todos := []model.Todo{
			{Title: "B", DueDate: tp(tomorrow)},
			{Title: "A"}, // no due date
			{Title: "C", DueDate: tp(now)},
		}
		out := todo.FilterAndSort(todos, todo.Filters{Filter: todo.FilterAll, SortBy: todo.SortDueDate})
		if !equalTitles(out, []string{"C", "B", "A"}) {
			t.Errorf("due_date sort: got %v", titles(out))
		}
	})

	t.Run("Sort By Priority High First", func(t *testing.T) {
		todos := []model.Todo{
			{Title: "low", Priority: model.PriorityLow},
			{Title: "high", Priority: model.PriorityHigh},
			{Title: "medium", Priority: model.PriorityMedium},
			{Title: "high2", Priority: model.PriorityHigh},
		}
		out := todo.FilterAndSort(todos, todo.Filters{Filter: todo.FilterAll, SortBy: todo.SortPriority})

		// No medium or low todo may appear before a high one.
		seenNonHigh := false
		for _, item := range out {
			if item.Priority != model.PriorityHigh {
				seenNonHigh = true
			} else if seenNonHigh {
				t.Fatalf("high priority after lower one: %v", titles(out))
			}
		}
		if !equalTitles(out, []string{"high", "high2", "medium", "low"}) {
			t.Errorf("priority sort: got %v", titles(out))
		}
	})

	t.Run("Sort By Title", func(t *testing.T) {
		todos := []model.Todo{
			{Title: "banana"},
			{Title: "Apple"},
			{Title: "cherry"},
		}
		out := todo.FilterAndSort(todos, todo.Filters{Filter: todo.FilterAll, SortBy: todo.SortTitle})
		if !equalTitles(out, []string{"Apple", "banana", "cherry"}) {
			t.Errorf("title sort: got %v", titles(out))
		}
	})

	t.Run("Idempotent", func(t *testing.T) {
		todos := []model.Todo{
			{Title: "b", Priority: model.PriorityLow, CreatedAt: now},
			{Title: "a", Priority: model.PriorityHigh, CreatedAt: now.Add(-time.Hour)},
		}
		f := todo.Filters{Filter: todo.FilterAll, SortBy: todo.SortPriority}

		once := todo.FilterAndSort(todos, f)
		twice := todo.FilterAndSort(once, f)
		if !equalTitles(twice, titles(once)) {
			t.Errorf("expected idempotent result, got %v then %v", titles(once), titles(twice))
		}
	})

	t.Run("Input Not Mutated", func(t *testing.T) {
		todos := []model.Todo{
			{Title: "z", CreatedAt: now.Add(-time.Hour)},
			{Title: "a", CreatedAt: now},
		}
		todo.FilterAndSort(todos, todo.Filters{Filter: todo.FilterAll, SortBy: todo.SortTitle})
		if todos[0].Title != "z" || todos[1].Title != "a" {
			t.Errorf("input slice was reordered: %v", titles(todos))
		}
	})
}
