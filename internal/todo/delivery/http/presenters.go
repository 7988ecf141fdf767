package http

import (
	"time"

	"todo-backend/internal/model"
	"todo-backend/internal/todo"
)

// --- Request DTOs ---

type listReq struct {
	Filter   string `form:"filter"   binding:"omitempty,oneof=all active completed"`
	Category string `form:"category"`
	Search   string `form:"search"`
	SortBy   string `form:"sort_by"  binding:"omitempty,oneof=created_at due_date priority title"`
}

func (r listReq) validate() error { return nil }

func (r listReq) toInput() todo.ListTodosInput {
	f := todo.DefaultFilters()
	if r.Filter != "" {
		f.Filter = todo.FilterType(r.Filter)
	}
	if r.SortBy != "" {
		f.SortBy = todo.SortType(r.SortBy)
	}
	f.Category = r.Category
	f.Search = r.Search
	return todo.ListTodosInput{Filters: f}
}

// ---

type createReq struct {
	Title            string     `json:"title"             binding:"required,max=500"`
	Description      string     `json:"description"       binding:"max=2000"`
	Priority         string     `json:"priority"          binding:"omitempty,oneof=low medium high"`
	DueDate          *time.Time `json:"due_date"`
	Reminder         *time.Time `json:"reminder"`
	CategoryID       string     `json:"category_id"`
	Tags             []string   `json:"tags"`
	IsRecurring      bool       `json:"is_recurring"`
	RecurringPattern string     `json:"recurring_pattern" binding:"omitempty,oneof=daily weekly monthly"`
	Order            int        `json:"order"`
}

func (r createReq) validate() error { return nil }

func (r createReq) toInput() todo.CreateTodoInput {
	priority := model.PriorityMedium
	if r.Priority != "" {
		priority = model.Priority(r.Priority)
	}
	return todo.CreateTodoInput{
		Title:            r.Title,
		Description:      r.Description,
		Priority:         priority,
		DueDate:          r.DueDate,
		Reminder:         r.Reminder,
		CategoryID:       r.CategoryID,
		Tags:             r.Tags,
		IsRecurring:      r.IsRecurring,
		RecurringPattern: model.RecurringPattern(r.RecurringPattern),
		Order:            r.Order,
	}
}

// ---

type updateReq struct {
	ID               string     `json:"-"` // populated from URI param
	Title            *string    `json:"title"             binding:"omitempty,max=500"`
	Description      *string    `json:"description"       binding:"omitempty,max=2000"`
	Completed        *bool      `json:"completed"`
	Priority         *string    `json:"priority"          binding:"omitempty,oneof=low medium high"`
	DueDate          *time.Time `json:"due_date"`
	Reminder         *time.Time `json:"reminder"`
	CategoryID       *string    `json:"category_id"`
	Tags             []string   `json:"tags"`
	IsRecurring      *bool      `json:"is_recurring"`
	RecurringPattern *string    `json:"recurring_pattern" binding:"omitempty,oneof=daily weekly monthly"`
	Order            *int       `json:"order"`
}

func (r updateReq) validate() error { return nil }

func (r updateReq) toInput() todo.UpdateTodoInput {
	input := todo.UpdateTodoInput{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Completed:   r.Completed,
		DueDate:     r.DueDate,
		Reminder:    r.Reminder,
		CategoryID:  r.CategoryID,
		Tags:        r.Tags,
		IsRecurring: r.IsRecurring,
		Order:       r.Order,
	}
	if r.Priority != nil {
		p := model.Priority(*r.Priority)
		input.Priority = &p
	}
	if r.RecurringPattern != nil {
		p := model.RecurringPattern(*r.RecurringPattern)
		input.RecurringPattern = &p
	}
	return input
}

// --- Response DTOs ---

type todoResp struct {
	ID               string     `json:"id"`
	Title            string     `json:"title"`
	Description      string     `json:"description,omitempty"`
	Completed        bool       `json:"completed"`
	Priority         string     `json:"priority"`
	DueDate          *time.Time `json:"due_date,omitempty"`
	Reminder         *time.Time `json:"reminder,omitempty"`
	CategoryID       string     `json:"category_id,omitempty"`
	Tags             []string   `json:"tags"`
	IsRecurring      bool       `json:"is_recurring"`
	RecurringPattern string     `json:"recurring_pattern,omitempty"`
	Order            int        `json:"order"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

func newTodoResp(item model.Todo) todoResp {
	tags := item.Tags
	if tags == nil {
		tags = []string{}
	}
	return todoResp{
		ID:               item.ID,
		Title:            item.Title,
		Description:      item.Description,
		Completed:        item.Completed,
		Priority:         string(item.Priority),
		DueDate:          item.DueDate,
		Reminder:         item.Reminder,
		CategoryID:       item.CategoryID,
		Tags:             tags,
		IsRecurring:      item.IsRecurring,
		RecurringPattern: string(item.RecurringPattern),
		Order:            item.Order,
		CreatedAt:        item.CreatedAt,
		UpdatedAt:        item.UpdatedAt,
	}
}

type listResp struct {
	Todos []todoResp `json:"todos"`
	Total int        `json:"total"`
}

func (h *handler) newListResp(out todo.ListTodosOutput) listResp {
	todos := make([]todoResp, len(out.Todos))
	for i, item := range out.Todos {
		todos[i] = newTodoResp(item)
	}
	return listResp{
		Todos: todos,
		Total: out.Total,
	}
}

type detailResp struct {
	Todo todoResp `json:"todo"`
}

func (h *handler) newDetailResp(out todo.DetailTodoOutput) detailResp {
	return detailResp{Todo: newTodoResp(out.Todo)}
}

type createResp struct {
	Todo todoResp `json:"todo"`
}

func (h *handler) newCreateResp(out todo.CreateTodoOutput) createResp {
	return createResp{Todo: newTodoResp(out.Todo)}
}

type updateResp struct {
	Todo todoResp `json:"todo"`
}

func (h *handler) newUpdateResp(out todo.UpdateTodoOutput) updateResp {
	return updateResp{Todo: newTodoResp(out.Todo)}
}

type statsResp struct {
	Total             int `json:"total"`
	Completed         int `json:"completed"`
	Active            int `json:"active"`
	Overdue           int `json:"overdue"`
	CompletedToday    int `json:"completed_today"`
	CompletedThisWeek int `json:"completed_this_week"`
}

func (h *handler) newStatsResp(out todo.StatsOutput) statsResp {
	return statsResp{
		Total:             out.Stats.Total,
		Completed:         out.Stats.Completed,
		Active:            out.Stats.Active,
		Overdue:           out.Stats.Overdue,
		CompletedToday:    out.Stats.CompletedToday,
		CompletedThisWeek: out.Stats.CompletedThisWeek,
	}
}

type categoriesResp struct {
	Categories []model.Category `json:"categories"`
}
