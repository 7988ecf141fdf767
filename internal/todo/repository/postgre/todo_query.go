package postgre

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"todo-backend/internal/model"
	repo "todo-backend/internal/todo/repository"
)

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanTodo(row rowScanner) (model.Todo, error) {
	var (
		item             model.Todo
		description      sql.NullString
		categoryID       sql.NullString
		recurringPattern sql.NullString
		tagsRaw          []byte
	)

	err := row.Scan(
		&item.ID,
		&item.UserID,
		&item.Title,
		&description,
		&item.Completed,
		&item.Priority,
		&item.DueDate,
		&item.Reminder,
		&categoryID,
		&tagsRaw,
		&item.IsRecurring,
		&recurringPattern,
		&item.Order,
		&item.IsNotified,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		return model.Todo{}, err
	}

	item.Description = description.String
	item.CategoryID = categoryID.String
	item.RecurringPattern = model.RecurringPattern(recurringPattern.String)
	if len(tagsRaw) > 0 {
		if err := json.Unmarshal(tagsRaw, &item.Tags); err != nil {
			return model.Todo{}, fmt.Errorf("unmarshal tags: %w", err)
		}
	}
	return item, nil
}

// marshalTags stores tags as a JSONB array; nil becomes the empty array.
func marshalTags(tags []string) []byte {
	if tags == nil {
		tags = []string{}
	}
	raw, _ := json.Marshal(tags)
	return raw
}

// nullableString maps the empty string to SQL NULL.
func nullableString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func buildGetOneQuery(opt repo.GetOneTodoOptions) (string, []any) {
	var (
		conds []string
		args  []any
	)
	if opt.ID != "" {
		args = append(args, opt.ID)
		conds = append(conds, fmt.Sprintf("id = $%d", len(args)))
	}
	if opt.UserID != "" {
		args = append(args, opt.UserID)
		conds = append(conds, fmt.Sprintf("user_id = $%d", len(args)))
	}
	return strings.Join(conds, " AND "), args
}

// ListDueTodos fetches unnotified, uncompleted todos due at or before the
// bound, with the owner's push tokens aggregated per todo. The INNER JOIN
// drops todos whose owner has no registered device.
func (r *implRepository) ListDueTodos(ctx context.Context, opt repo.ListDueTodosOptions) ([]repo.DueTodo, error) {
	const query = `
		SELECT t.id, t.title, t.user_id, json_agg(d.expo_push_token)
		FROM todos t
		JOIN user_devices d ON d.user_id = t.user_id
		WHERE t.is_notified = FALSE
		  AND t.completed = FALSE
		  AND t.due_date IS NOT NULL
		  AND t.due_date <= $1
		GROUP BY t.id, t.title, t.user_id`

	rows, err := r.db.QueryContext(ctx, query, opt.Before)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListDueTodos"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var due []repo.DueTodo
	for rows.Next() {
		var (
			item      repo.DueTodo
			tokensRaw []byte
		)
		if err := rows.Scan(&item.ID, &item.Title, &item.UserID, &tokensRaw); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListDueTodos"), err)
			return nil, repo.ErrFailedToList
		}
		if err := json.Unmarshal(tokensRaw, &item.Tokens); err != nil {
			r.l.Errorf(ctx, "%s tokens: %v", r.dsn("ListDueTodos"), err)
			return nil, repo.ErrFailedToList
		}
		due = append(due, item)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListDueTodos"), err)
		return nil, repo.ErrFailedToList
	}
	return due, nil
}

// MarkNotified flags the given todos so the next notifier run skips them.
func (r *implRepository) MarkNotified(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	placeholders := make([]string, len(ids))
	args := make([]any, len(ids))
	for i, id := range ids {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = id
	}

	query := fmt.Sprintf(
		"UPDATE todos SET is_notified = TRUE, updated_at = NOW() WHERE id IN (%s)",
		strings.Join(placeholders, ", "),
	)
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("MarkNotified"), err)
		return repo.ErrFailedToMark
	}
	return nil
}
