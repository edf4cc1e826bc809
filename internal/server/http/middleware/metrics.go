package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/atelier/internal/metrics"
)

// Metrics records request count and latency labelled by the matched route.
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		m.ObserveRequest(c.Request.Method, c.FullPath(), c.Writer.Status(), time.Since(start))
	}
}
