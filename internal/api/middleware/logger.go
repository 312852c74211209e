package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jmoreno/solarops/internal/logger"
)

// Logger assigns each request an ID, attaches a request-scoped logger
// to the context, and logs one line per completed request.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Header("X-Request-ID", requestID)

		ctx := logger.WithField(c.Request.Context(), logger.FieldRequestID, requestID)
		c.Request = c.Request.WithContext(ctx)

		start := time.Now()
		c.Next()

		logger.FromContext(ctx).WithFields(logger.Fields{
			"method":               c.Request.Method,
			"path":                 c.Request.URL.Path,
			logger.FieldStatus:     c.Writer.Status(),
			logger.FieldSize:       c.Writer.Size(),
			logger.FieldDurationMs: time.Since(start).Milliseconds(),
		}).Info("request completed")
	}
}
