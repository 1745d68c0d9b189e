package middleware

import (
	"net/http"

	"cavebeat-backend/pkg/cors"

	"github.com/gin-gonic/gin"
)

// CORSMiddleware adds CORS headers for cross-origin requests from the
// marketing site. allowedOrigins is a comma separated list; "*" or an empty
// value allows any origin.
//
// Preflight requests are answered with 200 and an empty body.
func CORSMiddleware(allowedOrigins string) gin.HandlerFunc {
	policy := cors.NewPolicy(allowedOrigins)

	return func(c *gin.Context) {
		if value, ok := policy.AllowOrigin(c.Request.Header.Get("Origin")); ok {
			c.Header("Access-Control-Allow-Origin", value)
			if !policy.AllowAll() {
				c.Header("Access-Control-Allow-Credentials", "true")
			}
		}
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Request-ID, X-Requested-With")
		c.Header("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		c.Header("Access-Control-Max-Age", "86400") // 24 hours
		if !policy.AllowAll() {
			c.Header("Vary", "Origin")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusOK)
			return
		}

		c.Next()
	}
}
