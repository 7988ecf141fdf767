package http

import (
	"github.com/gin-gonic/gin"

	"todo-backend/internal/middleware"
)

// RegisterRoutes maps the notifier trigger endpoint. It sits outside the
// user-facing API group and is guarded by the internal key.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("/notify-due-tasks", mw.InternalAuth(), h.RunNow)
}
