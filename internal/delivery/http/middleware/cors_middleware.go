package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const corsAllowedMethods = "GET, HEAD, PUT, PATCH, POST, DELETE"

// CORSMiddleware permits every origin and answers preflight requests directly.
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")

		if c.Request.Method != http.MethodOptions {
			c.Next()
			return
		}

		// Preflight
		c.Header("Access-Control-Allow-Methods", corsAllowedMethods)
		if reqHeaders := c.GetHeader("Access-Control-Request-Headers"); reqHeaders != "" {
			c.Header("Access-Control-Allow-Headers", reqHeaders)
			c.Header("Vary", "Access-Control-Request-Headers")
		}
		c.Header("Access-Control-Max-Age", "86400") // 24 hours
		c.AbortWithStatus(http.StatusNoContent)
	}
}
