package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hexeeyy/safc-meeting-scheduler/internal/metrics"
)

// Metrics observes every handled request with its matched route template so
// label cardinality stays bounded.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metrics.RecordRequest(c.Request.Method, path, strconv.Itoa(c.Writer.Status()))
		metrics.ObserveDuration(c.Request.Method, path, time.Since(start).Seconds())
	}
}
