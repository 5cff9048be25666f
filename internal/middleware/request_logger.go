package middleware

import (
	"time"

	"github.com/auctionhub/marketplace-api/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestLogger logs incoming requests with timing and a per-request ID.
// The ID is echoed back in the X-Request-ID header.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Writer.Header().Set("X-Request-ID", requestID)

		c.Next()

		utils.Info("HTTP Request", map[string]any{
			"request_id": requestID,
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"latency":    time.Since(start).String(),
		})
	}
}
