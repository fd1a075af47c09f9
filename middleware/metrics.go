package middleware

import (
	"strconv"
	"time"

	"sqlgen/metrics"

	"github.com/gin-gonic/gin"
)

// Metrics records request counts and latency labelled by route template, so
// unmatched paths collapse into a single series.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metrics.ObserveHTTPRequest(c.Request.Method, path, strconv.Itoa(c.Writer.Status()), time.Since(start))
	}
}
