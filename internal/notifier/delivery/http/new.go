package http

import (
	"github.com/gin-gonic/gin"

	"todo-backend/internal/notifier"
	"todo-backend/pkg/log"
)

// Handler is the public interface for the notifier HTTP delivery layer.
type Handler interface {
	RunNow(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc notifier.UseCase
}

// New creates a new HTTP handler for the notifier trigger endpoint.
func New(l log.Logger, uc notifier.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
