package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-expense-tracker/internal/infrastructure/metrics"
)

// Metrics records request counts and latencies labelled by route template.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		done := metrics.RequestStarted()
		c.Next()
		done(c.Request.Method, c.FullPath(), c.Writer.Status())
	}
}
