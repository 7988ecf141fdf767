package postgre

import (
	"context"
	"database/sql"

	"todo-backend/internal/model"
	repo "todo-backend/internal/todo/repository"
)

const todoColumns = `id, user_id, title, description, completed, priority, due_date, reminder,
	category_id, tags, is_recurring, recurring_pattern, sort_order, is_notified, created_at, updated_at`

// CreateTodo inserts a new Todo row and returns the created entity.
func (r *implRepository) CreateTodo(ctx context.Context, opt repo.CreateTodoOptions) (model.Todo, error) {
	query := `
		INSERT INTO todos (user_id, title, description, completed, priority, due_date, reminder,
			category_id, tags, is_recurring, recurring_pattern, sort_order, is_notified, created_at, updated_at)
		VALUES ($1, $2, $3, FALSE, $4, $5, $6, $7, $8, $9, $10, $11, FALSE, NOW(), NOW())
		RETURNING ` + todoColumns

	row := r.db.QueryRowContext(ctx, query,
		opt.UserID,
		opt.Title,
		opt.Description,
		opt.Priority,
		opt.DueDate,
		opt.Reminder,
		nullableString(opt.CategoryID),
		marshalTags(opt.Tags),
		opt.IsRecurring,
		nullableString(string(opt.RecurringPattern)),
		opt.Order,
	)

	item, err := scanTodo(row)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTodo"), err)
		return model.Todo{}, repo.ErrFailedToInsert
	}
	return item, nil
}

// GetOneTodo retrieves a single Todo by the provided filters (AND condition).
// Returns zero-value Todo (ID == "") when not found — do NOT return error for not-found.
func (r *implRepository) GetOneTodo(ctx context.Context, opt repo.GetOneTodoOptions) (model.Todo, error) {
	mods, args := buildGetOneQuery(opt)
	query := `SELECT ` + todoColumns + ` FROM todos WHERE ` + mods + ` LIMIT 1`

	item, err := scanTodo(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return model.Todo{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneTodo"), err)
		return model.Todo{}, repo.ErrFailedToGet
	}
	return item, nil
}

// ListTodos returns the full todo snapshot for one user, oldest first.
func (r *implRepository) ListTodos(ctx context.Context, opt repo.ListTodosOptions) ([]model.Todo, error) {
	query := `SELECT ` + todoColumns + ` FROM todos WHERE user_id = $1 ORDER BY created_at ASC`

	rows, err := r.db.QueryContext(ctx, query, opt.UserID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTodos"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var items []model.Todo
	for rows.Next() {
		item, err := scanTodo(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListTodos"), err)
			return nil, repo.ErrFailedToList
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListTodos"), err)
		return nil, repo.ErrFailedToList
	}
	return items, nil
}

// UpdateTodo writes the merged column values and returns the updated entity.
// updated_at is always refreshed, so a completion toggle moves it too.
func (r *implRepository) UpdateTodo(ctx context.Context, opt repo.UpdateTodoOptions) (model.Todo, error) {
	query := `
		UPDATE todos
		SET title = $1, description = $2, completed = $3, priority = $4, due_date = $5,
			reminder = $6, category_id = $7, tags = $8, is_recurring = $9,
			recurring_pattern = $10, sort_order = $11, updated_at = NOW()
		WHERE id = $12 AND user_id = $13
		RETURNING ` + todoColumns

	row := r.db.QueryRowContext(ctx, query,
		opt.Title,
		opt.Description,
		opt.Completed,
		opt.Priority,
		opt.DueDate,
		opt.Reminder,
		nullableString(opt.CategoryID),
		marshalTags(opt.Tags),
		opt.IsRecurring,
		nullableString(string(opt.RecurringPattern)),
		opt.Order,
		opt.ID,
		opt.UserID,
	)

	item, err := scanTodo(row)
	if err == sql.ErrNoRows {
		return model.Todo{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateTodo"), err)
		return model.Todo{}, repo.ErrFailedToUpdate
	}
	return item, nil
}

// DeleteTodo removes a Todo by ID scoped to its owner.
func (r *implRepository) DeleteTodo(ctx context.Context, opt repo.DeleteTodoOptions) error {
	query := `DELETE FROM todos WHERE id = $1 AND user_id = $2`
	if _, err := r.db.ExecContext(ctx, query, opt.ID, opt.UserID); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteTodo"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}
