package http

import (
	"github.com/gin-gonic/gin"

	"todo-backend/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// All routes require a valid Bearer token; categories are static but still
// scoped to authenticated clients.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	todos := rg.Group("/todos")
	{
		todos.GET("", mw.Auth(), h.List)
		todos.GET("/stats", mw.Auth(), h.Stats)
		todos.POST("", mw.Auth(), h.Create)
		todos.GET("/:id", mw.Auth(), h.Detail)
		todos.PUT("/:id", mw.Auth(), h.Update)
		todos.DELETE("/:id", mw.Auth(), h.Delete)
		todos.POST("/:id/toggle", mw.Auth(), h.Toggle)
	}

	rg.GET("/categories", mw.Auth(), h.Categories)
}
