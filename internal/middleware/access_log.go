package middleware

import (
	"time"

	"github.com/PythonShinobi/Otaku-Store/internal/logger"

	"github.com/gin-gonic/gin"
)

func AccessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request", map[string]any{
			"method":     c.Request.Method,
			"path":       requestPath(c),
			"status":     c.Writer.Status(),
			"latency_ms": time.Since(start).Milliseconds(),
			"ip":         c.ClientIP(),
		})
	}
}

// requestPath prefers the route template and falls back to the raw path
// for requests that matched no route.
func requestPath(c *gin.Context) string {
	if p := c.FullPath(); p != "" {
		return p
	}
	return c.Request.URL.Path
}
