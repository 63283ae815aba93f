package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"day-planner/internal/model"
	"day-planner/pkg/response"
)

const scopeKey = "scope"

// Auth verifies the bearer session token and stores the resolved owner scope
// on the gin context. Requests without a valid token get 401.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		session, err := m.verifier.VerifyToken(ctx, token)
		if err != nil {
			m.l.Warnf(ctx, "middleware.Auth VerifyToken: %v", err)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		SetScope(c, model.Scope{UserID: session.UserID})
		c.Next()
	}
}

// SetScope stores the request scope on the gin context.
func SetScope(c *gin.Context, sc model.Scope) {
	c.Set(scopeKey, sc)
}

// GetScope returns the scope stored by Auth, or a zero scope.
func GetScope(c *gin.Context) model.Scope {
	v, ok := c.Get(scopeKey)
	if !ok {
		return model.Scope{}
	}
	sc, _ := v.(model.Scope)
	return sc
}
