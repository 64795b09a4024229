package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// LoginRateLimit throttles credential submissions with a shared token
// bucket. Over-limit requests get a 429 without touching the backend.
func LoginRateLimit(r rate.Limit, burst int) gin.HandlerFunc {
	limiter := rate.NewLimiter(r, burst)

	return func(c *gin.Context) {
		if !limiter.Allow() {
			c.String(http.StatusTooManyRequests, "Too many login attempts. Try again shortly.")
			c.Abort()
			return
		}
		c.Next()
	}
}
