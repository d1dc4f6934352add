package middleware

import (
	"os"
	"time"

	"github.com/gin-gonic/gin"
	kitlog "github.com/go-kit/log"
)

// NewAccessLogger returns a logfmt logger on stdout with UTC timestamps.
func NewAccessLogger() kitlog.Logger {
	l := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stdout))
	return kitlog.With(l, "ts", kitlog.DefaultTimestampUTC, "component", "http")
}

// Logger writes one logfmt record per request.
func Logger(logger kitlog.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = NewAccessLogger()
	}
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		_ = logger.Log(
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start).Round(time.Microsecond),
			"client", c.ClientIP(),
		)
	}
}
