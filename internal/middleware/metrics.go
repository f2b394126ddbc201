package middleware

import (
	"strconv"
	"time"

	"smartystreets-api/internal/errors"
	"smartystreets-api/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// MetricsMiddleware records request counts and latency per route template,
// plus one gateway error per failed request keyed by its error code.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())
		metrics.HTTPRequestsTotal.WithLabelValues(c.Request.Method, endpoint, status).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(c.Request.Method, endpoint, status).Observe(time.Since(start).Seconds())

		if last := c.Errors.Last(); last != nil {
			if appErr := errors.MapError(last.Err); appErr != nil {
				metrics.GatewayErrorsTotal.WithLabelValues(appErr.Code).Inc()
			}
		}
	}
}
