package postgre

import (
	"database/sql"
	"fmt"

	"todo-backend/internal/todo/repository"
	"todo-backend/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a new PostgreSQL-backed Repository for the todo domain.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("todo/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("todo/repository/postgre.%s", method)
}
