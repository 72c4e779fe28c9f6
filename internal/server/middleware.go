package server

import (
	"time"

	"github.com/SachinMhetre678/DevOpsESE-L3/internal/metrics"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// unmatchedRoute labels requests that hit no registered route, which keeps
// the route label's cardinality bounded.
const unmatchedRoute = "unmatched"

func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}

func observeRequests(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = unmatchedRoute
		}
		m.ObserveRequest(route, c.Request.Method, c.Writer.Status())
	}
}
