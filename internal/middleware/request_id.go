package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	pkgLog "jumpnjoy-ops/pkg/log"
)

const requestIDHeader = "X-Request-Id"

// RequestID assigns every request an id, honoring one forwarded by the
// portal gateway, and threads it through the context for log correlation.
func (mw Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(requestIDHeader)
		if rid == "" {
			rid = uuid.NewString()
		}

		ctx := pkgLog.WithRequestID(c.Request.Context(), rid)
		c.Request = c.Request.WithContext(ctx)
		c.Header(requestIDHeader, rid)
		c.Next()
	}
}
