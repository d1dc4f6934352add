package middleware

import (
	"strconv"
	"time"

	"thrust-planner/internal/metrics"

	"github.com/gin-gonic/gin"
)

// Metrics records duration and status per route template.
func Metrics(m *metrics.Collector) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.RecordRequest(route, c.Request.Method, strconv.Itoa(c.Writer.Status()), time.Since(start))
	}
}
