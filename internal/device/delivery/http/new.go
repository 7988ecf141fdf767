package http

import (
	"github.com/gin-gonic/gin"

	"todo-backend/internal/device"
	"todo-backend/pkg/log"
)

// Handler is the public interface for the device HTTP delivery layer.
type Handler interface {
	Register(c *gin.Context)
	List(c *gin.Context)
	Unregister(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc device.UseCase
}

// New creates a new HTTP handler for the device domain.
func New(l log.Logger, uc device.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
