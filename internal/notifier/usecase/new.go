package usecase

import (
	"todo-backend/internal/todo/repository"
	"todo-backend/pkg/expopush"
	"todo-backend/pkg/log"
)

// implUseCase is the private implementation of notifier.UseCase.
type implUseCase struct {
	repo repository.Repository
	push expopush.IPush
	l    log.Logger
}

// New creates a new notifier UseCase implementation.
func New(l log.Logger, repo repository.Repository, push expopush.IPush) *implUseCase {
	return &implUseCase{
		repo: repo,
		push: push,
		l:    l,
	}
}
