package todo

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"todo-backend/internal/model"
)

// priorityRank orders priorities for sorting: high first.
var priorityRank = map[model.Priority]int{
	model.PriorityHigh:   0,
	model.PriorityMedium: 1,
	model.PriorityLow:    2,
}

// FilterAndSort returns a new slice containing the todos that pass the filter
// specification, ordered by its sort key. The input is never mutated; callers
// hand in a snapshot and keep it.
//
// The filter stages run in a fixed order: completion state, then category,
// then search. Sorting is stable, so ties keep their input order.
func FilterAndSort(todos []model.Todo, f Filters) []model.Todo {
	filtered := make([]model.Todo, 0, len(todos))
	for _, t := range todos {
		switch f.Filter {
		case FilterActive:
			if t.Completed {
				continue
			}
		case FilterCompleted:
			if !t.Completed {
				continue
			}
		}

		// A category filter excludes uncategorized todos: empty CategoryID
		// never equals a concrete category id.
		if f.Category != "" && t.CategoryID != f.Category {
			continue
		}

		if f.Search != "" && !matchesSearch(t, f.Search) {
			continue
		}

		filtered = append(filtered, t)
	}

	sortTodos(filtered, f.SortBy)
	return filtered
}

// matchesSearch reports whether any of title, description or a tag contains
// the search string, case-insensitively. An empty description never matches.
func matchesSearch(t model.Todo, search string) bool {
	needle := strings.ToLower(search)
	if strings.Contains(strings.ToLower(t.Title), needle) {
		return true
	}
	if t.Description != "" && strings.Contains(strings.ToLower(t.Description), needle) {
		return true
	}
	for _, tag := range t.Tags {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}

func sortTodos(todos []model.Todo, sortBy SortType) {
	switch sortBy {
	case SortCreatedAt:
		// Most recent first.
		sort.SliceStable(todos, func(i, j int) bool {
			return todos[i].CreatedAt.After(todos[j].CreatedAt)
		})
	case SortDueDate:
		// Ascending by date; todos without a due date sort after all that have one.
		sort.SliceStable(todos, func(i, j int) bool {
			a, b := todos[i].DueDate, todos[j].DueDate
			if a == nil {
				return false
			}
			if b == nil {
				return true
			}
			return a.Before(*b)
		})
	case SortPriority:
		sort.SliceStable(todos, func(i, j int) bool {
			return priorityRank[todos[i].Priority] < priorityRank[todos[j].Priority]
		})
	case SortTitle:
		collator := collate.New(language.Und, collate.IgnoreCase)
		sort.SliceStable(todos, func(i, j int) bool {
			return collator.CompareString(todos[i].Title, todos[j].Title) < 0
		})
	}
}
