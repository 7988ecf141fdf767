package todo

import (
	"time"

	"todo-backend/internal/model"
)

// FilterType selects todos by completion state.
type FilterType string

const (
	FilterAll       FilterType = "all"
	FilterActive    FilterType = "active"
	FilterCompleted FilterType = "completed"
)

// SortType selects the ordering applied after filtering.
type SortType string

const (
	SortCreatedAt SortType = "created_at"
	SortDueDate   SortType = "due_date"
	SortPriority  SortType = "priority"
	SortTitle     SortType = "title"
)

// Filters is the filter specification applied to a todo snapshot.
// It has no persisted identity — rebuilt per query from request parameters.
//
// Search is matched as-is: it is deliberately NOT trimmed, so a whitespace-only
// search only matches fields that literally contain those spaces.
type Filters struct {
	Filter   FilterType
	Category string
	Search   string
	SortBy   SortType
}

// DefaultFilters returns the filter specification the mobile client starts with.
func DefaultFilters() Filters {
	return Filters{
		Filter: FilterAll,
		SortBy: SortCreatedAt,
	}
}

// Stats is a derived counts snapshot. It is computed fresh against wall-clock
// time on every call — "overdue" and "today" are time-relative, so caching a
// Stats value would silently go stale.
type Stats struct {
	Total             int
	Completed         int
	Active            int
	Overdue           int
	CompletedToday    int
	CompletedThisWeek int
}

// --- UseCase Inputs ---

type ListTodosInput struct {
	Filters Filters
}

type CreateTodoInput struct {
	Title            string
	Description      string
	Priority         model.Priority
	DueDate          *time.Time
	Reminder         *time.Time
	CategoryID       string
	Tags             []string
	IsRecurring      bool
	RecurringPattern model.RecurringPattern
	Order            int
}

// UpdateTodoInput is a partial update: nil fields are left untouched.
type UpdateTodoInput struct {
	ID               string
	Title            *string
	Description      *string
	Completed        *bool
	Priority         *model.Priority
	DueDate          *time.Time
	Reminder         *time.Time
	CategoryID       *string
	Tags             []string // nil = unchanged, empty = clear
	IsRecurring      *bool
	RecurringPattern *model.RecurringPattern
	Order            *int
}

// --- UseCase Outputs ---

type ListTodosOutput struct {
	Todos []model.Todo
	Total int
}

type DetailTodoOutput struct {
	Todo model.Todo
}

type CreateTodoOutput struct {
	Todo model.Todo
}

type UpdateTodoOutput struct {
	Todo model.Todo
}

type StatsOutput struct {
	Stats Stats
}
