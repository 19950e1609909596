package middleware

import (
	"time"

	"backoffice/metrics"
	"backoffice/response"
	"backoffice/services/logger"

	"github.com/gin-gonic/gin"
)

// AccessLog writes one line per request.
func AccessLog(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		line := "%s %s %d %s rid=%s"
		args := []interface{}{c.Request.Method, c.Request.URL.Path, status, time.Since(start), GetRequestID(c)}
		if status >= 500 {
			log.Error(line, args...)
			return
		}
		log.Info(line, args...)
	}
}

// Recovery turns a panic in a handler into the generic 500 envelope.
func Recovery(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error("panic serving %s %s rid=%s: %v", c.Request.Method, c.Request.URL.Path, GetRequestID(c), r)
				response.ServerError(c)
			}
		}()
		c.Next()
	}
}

// Metrics records request count and latency by route template. Unmatched
// routes share the "unmatched" label.
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		m.ObserveHTTP(c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}
