package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"brme/pkg/log"
)

// RequestIDHeader is read from and echoed on every response.
const RequestIDHeader = "X-Request-ID"

// RequestID tags the request context with an id so every log line of the request carries it.
// A client supplied id is kept when it parses as a UUID.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}

		ctx := log.WithRequestID(c.Request.Context(), id)
		c.Request = c.Request.WithContext(ctx)
		c.Header(RequestIDHeader, id)

		c.Next()
	}
}

// AccessLog logs one line per request after it completes.
func (m Middleware) AccessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		started := time.Now()
		c.Next()

		m.l.Info(c.Request.Context(), "http request",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"elapsed_ms", time.Since(started).Milliseconds(),
		)
	}
}
