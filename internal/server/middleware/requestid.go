// file: internal/server/middleware/requestid.go
// version: 1.0.0
// guid: 25ffc2f5-dede-42bf-9a89-7ddd90e64768

package middleware

import (
	"github.com/gin-gonic/gin"
	ulid "github.com/oklog/ulid/v2"
)

// RequestIDHeader carries the request id in both directions.
const RequestIDHeader = "X-Request-ID"

const requestIDKey = "request_id"

// maxRequestIDLen bounds ids accepted from clients.
const maxRequestIDLen = 128

// RequestID tags every request with an id, reusing a client supplied
// X-Request-ID when it is reasonable and minting a ULID otherwise.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" || len(id) > maxRequestIDLen {
			id = ulid.Make().String()
		}
		c.Set(requestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// GetRequestID returns the id assigned by RequestID, or "" outside it.
func GetRequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}
