package middleware

import (
	"net/http"
	"time"

	"smartystreets-api/pkg/logger"

	"github.com/gin-gonic/gin"
)

// LoggingMiddleware writes one access line per request; server errors go to
// the error log.
func LoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		format := "Request: method=%s, path=%s, status=%d, latency=%v, client_ip=%s, subject=%s, request_id=%s"
		args := []interface{}{
			c.Request.Method,
			c.Request.URL.Path,
			status,
			time.Since(start),
			c.ClientIP(),
			c.GetString("subject"),
			c.GetString(RequestIDKey),
		}
		if status >= http.StatusInternalServerError {
			logger.GlobalLogger.Errorf(format, args...)
			return
		}
		logger.GlobalLogger.Printf(format, args...)
	}
}
