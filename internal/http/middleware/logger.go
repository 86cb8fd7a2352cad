package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

// Logger writes one line per API request. Tracking lookups and form
// submissions are the hot paths, so the line leads with method/path and
// keeps the request id for correlation with LogEvent output.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		log.Printf("portal %s %s status=%d took=%s request_id=%s ip=%s",
			c.Request.Method,
			path,
			c.Writer.Status(),
			time.Since(start).Round(time.Millisecond),
			GetRequestID(c),
			c.ClientIP(),
		)
	}
}
