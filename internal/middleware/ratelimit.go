package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"todo-backend/pkg/response"
)

// RateLimit throttles requests per client IP. Limiters live in an
// expiring LRU so idle clients do not accumulate.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.limiters == nil {
			c.Next()
			return
		}

		ip := c.ClientIP()
		limiter, ok := m.limiters.Get(ip)
		if !ok {
			limiter = rate.NewLimiter(m.rps, m.burst)
			m.limiters.Add(ip, limiter)
		}

		if !limiter.Allow() {
			m.l.Warnf(c.Request.Context(), "middleware.RateLimit: throttled %s", ip)
			response.Error(c, response.NewHTTPError(http.StatusTooManyRequests, "too many requests"))
			c.Abort()
			return
		}

		c.Next()
	}
}
