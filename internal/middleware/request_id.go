package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"gdd-roadmap/pkg/log"
)

const HeaderRequestID = "X-Request-ID"

// RequestID tags the request context with an id, reusing the caller's header when present.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" || len(id) > 64 {
			id = uuid.NewString()
		}
		c.Request = c.Request.WithContext(log.WithRequestID(c.Request.Context(), id))
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}
