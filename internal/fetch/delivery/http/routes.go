package http

import (
	"github.com/gin-gonic/gin"

	"pronote-gateway/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// The fetch route drives a credentialed upstream login per call, so it
// sits behind the per-client rate limit.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.POST("/fetch", mw.RateLimit(), h.Fetch)
	rg.GET("/probe/login", mw.RateLimit(), h.ProbeLogin)
}
