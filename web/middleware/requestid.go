// Package middleware holds gin middleware shared across the web server.
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const RequestIdKey = "request_id"

// RequestId attaches a request id to every request for log correlation,
// honoring an X-Request-Id supplied by a reverse proxy.
func RequestId() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-Id")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(RequestIdKey, id)
		c.Header("X-Request-Id", id)
		c.Next()
	}
}
