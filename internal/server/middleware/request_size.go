// file: internal/server/middleware/request_size.go
// version: 2.0.0
// guid: f2129ae7-cf11-4888-bd4f-ab4b578f8f18

package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// DefaultBodyLimit is used when MaxRequestBodySize is given a non-positive limit.
const DefaultBodyLimit = 64 << 10

func methodHasBody(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch:
		return true
	default:
		return false
	}
}

// MaxRequestBodySize rejects or truncates request bodies larger than limitBytes.
func MaxRequestBodySize(limitBytes int64) gin.HandlerFunc {
	if limitBytes < 1 {
		limitBytes = DefaultBodyLimit
	}

	return func(c *gin.Context) {
		if !methodHasBody(c.Request.Method) {
			c.Next()
			return
		}

		if c.Request.ContentLength > limitBytes {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{
				"error":  "request body too large",
				"code":   "PAYLOAD_TOO_LARGE",
				"status": http.StatusRequestEntityTooLarge,
			})
			c.Abort()
			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limitBytes)
		c.Next()
	}
}
