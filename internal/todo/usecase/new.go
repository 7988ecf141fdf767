package usecase

import (
	"todo-backend/internal/todo/repository"
	"todo-backend/pkg/gcalendar"
	"todo-backend/pkg/log"
)

// implUseCase is the private implementation of todo.UseCase.
type implUseCase struct {
	repo       repository.Repository
	calendar   gcalendar.ICalendar // optional; nil disables calendar export
	calendarID string              // empty targets the primary calendar
	timezone   string
	l          log.Logger
}

// New creates a new todo UseCase implementation. calendar may be nil when
// calendar export is not configured.
func New(l log.Logger, repo repository.Repository, calendar gcalendar.ICalendar, calendarID, timezone string) *implUseCase {
	return &implUseCase{
		repo:       repo,
		calendar:   calendar,
		calendarID: calendarID,
		timezone:   timezone,
		l:          l,
	}
}
