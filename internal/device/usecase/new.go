package usecase

import (
	"todo-backend/internal/device/repository"
	"todo-backend/pkg/log"
)

// implUseCase is the private implementation of device.UseCase.
type implUseCase struct {
	repo repository.Repository
	l    log.Logger
}

// New creates a new device UseCase implementation.
func New(l log.Logger, repo repository.Repository) *implUseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}
