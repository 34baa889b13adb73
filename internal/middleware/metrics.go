package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/stwalsh4118/groundwork/api/internal/metrics"
)

// Metrics creates a middleware that records request counts and latencies.
// The route label uses the matched route pattern, not the raw URL, so
// parameterized paths do not explode label cardinality.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		metrics.ObserveHTTP(
			c.Request.Method,
			route,
			c.Writer.Status(),
			time.Since(start).Seconds(),
		)
	}
}
