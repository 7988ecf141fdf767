package http

import (
	"todo-backend/internal/todo"
	repo "todo-backend/internal/todo/repository"
	"todo-backend/pkg/response"
)

// mapError translates domain errors into HTTP errors. Store failures are a
// server fault, never the client's, so they map to 500 with the detail kept
// out of the envelope. Unknown errors pass through untouched so
// response.Error treats them as bad requests.
func (h *handler) mapError(err error) error {
	switch err {
	case todo.ErrTodoNotFound:
		return response.NewHTTPError(404, "todo not found")
	case todo.ErrTitleRequired:
		return response.NewHTTPError(400, "title is required")
	case todo.ErrUnknownCategory:
		return response.NewHTTPError(400, "unknown category")
	case todo.ErrInvalidPriority:
		return response.NewHTTPError(400, "invalid priority")
	case todo.ErrInvalidPattern:
		return response.NewHTTPError(400, "recurring pattern requires is_recurring")
	case repo.ErrFailedToInsert,
		repo.ErrFailedToGet,
		repo.ErrFailedToList,
		repo.ErrFailedToUpdate,
		repo.ErrFailedToDelete,
		repo.ErrFailedToMark:
		return response.NewHTTPError(500, response.DefaultErrorMessage)
	default:
		return err
	}
}
