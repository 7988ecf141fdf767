package postgre

import (
	"database/sql"
	"fmt"

	"todo-backend/internal/device/repository"
	"todo-backend/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a new PostgreSQL-backed Repository for the device domain.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("device/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("device/repository/postgre.%s", method)
}
