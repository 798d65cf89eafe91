package monitoring

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// Middleware creates a Gin middleware for metrics collection
func Middleware(metrics *Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		method := c.Request.Method

		// Label by route template so unmatched paths don't explode cardinality
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		reqSize := c.Request.ContentLength
		if reqSize < 0 {
			reqSize = 0
		}

		c.Next()

		status := strconv.Itoa(c.Writer.Status())
		respSize := int64(c.Writer.Size())
		if respSize < 0 {
			respSize = 0
		}

		metrics.RecordHTTPRequest(method, path, status, time.Since(start), reqSize, respSize)
	}
}

// Timer measures an upstream call
type Timer struct {
	start    time.Time
	metrics  *Metrics
	upstream string
}

// NewTimer starts a timer for the named upstream. A nil metrics collector
// yields a timer whose Stop is a no-op.
func NewTimer(metrics *Metrics, upstream string) *Timer {
	return &Timer{
		start:    time.Now(),
		metrics:  metrics,
		upstream: upstream,
	}
}

// Stop records the elapsed time under the given outcome
func (t *Timer) Stop(outcome string) {
	if t.metrics == nil {
		return
	}
	t.metrics.RecordUpstreamCall(t.upstream, outcome, time.Since(t.start))
}
