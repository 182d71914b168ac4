package http

import (
	"github.com/gin-gonic/gin"

	"jumpnjoy-ops/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Identity populates the caller scope without rejecting anonymous reads;
// the usecase enforces the no-user precondition on mutations.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	days := rg.Group("/:resource/:date")
	{
		days.GET("", mw.Identity(), h.Day)
		days.GET("/progress", mw.Identity(), h.Progress)
		days.POST("/items/:type/:item/toggle", mw.Identity(), mw.RateLimit(), h.Toggle)
	}
}
