package http

import (
	"github.com/gin-gonic/gin"

	"todo-backend/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	devices := rg.Group("/devices")
	{
		devices.POST("", mw.Auth(), h.Register)
		devices.GET("", mw.Auth(), h.List)
		devices.DELETE("/:id", mw.Auth(), h.Unregister)
	}
}
