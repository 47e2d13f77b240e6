package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// RequestObserver records per-request HTTP metrics.
type RequestObserver interface {
	ObserveRequest(method, route string, status int, elapsed time.Duration)
}

// Metrics reports every request to observer keyed by its route template.
func Metrics(observer RequestObserver) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		status := c.Writer.Status()
		if status == 0 {
			status = http.StatusOK
		}
		observer.ObserveRequest(c.Request.Method, routeOf(c), status, time.Since(start))
	}
}
