package middleware

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"todo-backend/internal/model"
	"todo-backend/pkg/response"
)

const scopeKey = "auth_scope"

type scopeClaims struct {
	UserID string `json:"uid"`
	jwt.RegisteredClaims
}

// Auth validates the Bearer token issued by the identity provider and
// stores the resolved scope in the gin context for handlers downstream.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		token, err := bearerToken(c)
		if err != nil {
			m.l.Debugf(ctx, "middleware.Auth: %v", err)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		claims := &scopeClaims{}
		parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return m.jwtSecret, nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}))
		if err != nil || !parsed.Valid {
			m.l.Debugf(ctx, "middleware.Auth parse: %v", err)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		userID := claims.UserID
		if userID == "" {
			userID = claims.Subject
		}
		if userID == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		SetScope(c, model.Scope{UserID: userID})
		c.Next()
	}
}

// SetScope stores the caller scope on the gin context.
func SetScope(c *gin.Context, sc model.Scope) {
	c.Set(scopeKey, sc)
}

// GetScope returns the scope stored by Auth for the current request.
func GetScope(c *gin.Context) (model.Scope, bool) {
	v, ok := c.Get(scopeKey)
	if !ok {
		return model.Scope{}, false
	}
	sc, ok := v.(model.Scope)
	return sc, ok
}

func bearerToken(c *gin.Context) (string, error) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return "", fmt.Errorf("missing authorization header")
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", fmt.Errorf("malformed authorization header")
	}
	return parts[1], nil
}
