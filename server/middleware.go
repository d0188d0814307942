package server

import (
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RequestLogger logs one line per request with latency and status,
// tagging every request with an ID that is echoed back to the client.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		started := time.Now()

		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)

		path := c.Request.URL.Path
		c.Next()

		zap.S().Infof("%s %s | %d | %s | %s | %s",
			c.Request.Method,
			path,
			c.Writer.Status(),
			time.Since(started).Round(time.Millisecond),
			c.ClientIP(),
			requestID,
		)
	}
}

// Recovery turns a handler panic into a 500 response instead of
// tearing down the whole server.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				zap.S().Errorf("panic in handler: %v\n%s", r, debug.Stack())
				respondError(c, http.StatusInternalServerError, "internal server error")
				c.Abort()
			}
		}()
		c.Next()
	}
}
