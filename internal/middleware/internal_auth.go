package middleware

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"

	"todo-backend/pkg/response"
)

// InternalAuth guards operational endpoints that only the scheduler and
// other trusted internal callers may hit.
func (m Middleware) InternalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader("X-Internal-Key")
		if m.internalKey == "" || subtle.ConstantTimeCompare([]byte(key), []byte(m.internalKey)) != 1 {
			m.l.Warnf(c.Request.Context(), "middleware.InternalAuth: rejected request from %s", c.ClientIP())
			response.Unauthorized(c)
			c.Abort()
			return
		}
		c.Next()
	}
}
