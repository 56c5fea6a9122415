package http

import (
	"github.com/gin-gonic/gin"

	"abe-voice/internal/middleware"
)

// DefaultPath is where the voice platform posts requests.
const DefaultPath = "/webhook/alexa"

// RegisterRoutes mounts the webhook behind the IP allowlist and rate limiter.
func RegisterRoutes(r gin.IRouter, path string, h Handler, mw middleware.Middleware) {
	if path == "" {
		path = DefaultPath
	}
	r.POST(path, mw.AllowIPs(), mw.RateLimit(), h.HandleAlexa)
}
