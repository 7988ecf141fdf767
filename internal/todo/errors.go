package todo

import "errors"

// Domain-specific errors for the todo package.
var (
	ErrTodoNotFound    = errors.New("todo not found")
	ErrTitleRequired   = errors.New("todo title is required")
	ErrUnknownCategory = errors.New("unknown category")
	ErrInvalidPriority = errors.New("invalid priority")
	ErrInvalidPattern  = errors.New("recurring pattern requires is_recurring")
)
