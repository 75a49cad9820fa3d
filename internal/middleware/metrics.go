package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/dive-course-api/internal/service"
)

// unmatchedRoute labels requests that hit no registered route so arbitrary
// paths cannot inflate metric cardinality.
const unmatchedRoute = "unmatched"

// Metrics returns middleware that records request count and latency per route template.
func Metrics(metricsSvc *service.MetricsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if metricsSvc == nil {
			c.Next()
			return
		}
		start := time.Now()
		c.Next()
		path := c.FullPath()
		if path == "" {
			path = unmatchedRoute
		}
		metricsSvc.ObserveHTTPRequest(c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}
