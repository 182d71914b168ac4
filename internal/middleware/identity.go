package middleware

import (
	"github.com/gin-gonic/gin"

	"jumpnjoy-ops/internal/model"
)

const scopeKey = "scope"

// Identity reads the caller identity forwarded by the portal session
// gateway. Anonymous requests pass through with an empty scope — read
// endpoints work unauthenticated, and the usecase rejects anonymous
// mutations itself so the precondition stays testable in isolation.
func (mw Middleware) Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		sc := model.Scope{
			UserID:      c.GetHeader("X-User-Id"),
			Username:    c.GetHeader("X-Username"),
			DisplayName: c.GetHeader("X-Display-Name"),
			Role:        model.Role(c.GetHeader("X-User-Role")),
		}
		if sc.Username == "" {
			sc.Username = sc.DisplayName
		}
		c.Set(scopeKey, sc)
		c.Next()
	}
}

// ScopeFromContext returns the caller scope set by Identity, or an empty
// (anonymous) scope.
func ScopeFromContext(c *gin.Context) model.Scope {
	if v, ok := c.Get(scopeKey); ok {
		if sc, ok := v.(model.Scope); ok {
			return sc
		}
	}
	return model.Scope{}
}
