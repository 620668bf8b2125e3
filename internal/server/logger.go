// file: internal/server/logger.go
// version: 3.0.0
// guid: 1d2e3f4a-5b6c-7d8e-9f0a-1b2c3d4e5f6a

package server

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jdfalk/course-group-finder/internal/server/middleware"
)

// probeRoutes are polled by monitoring and logged at debug level only.
var probeRoutes = map[string]bool{
	"/metrics":       true,
	"/api/v1/health": true,
}

// RequestLogger records one API request from arrival to response.
type RequestLogger struct {
	requestID string
	clientIP  string
	method    string
	route     string
	courses   string
	startTime time.Time
}

// NewRequestLogger starts timing a request. courses is the requested course
// list, empty for routes that take none.
func NewRequestLogger(requestID, clientIP, method, route, courses string) *RequestLogger {
	return &RequestLogger{
		requestID: requestID,
		clientIP:  clientIP,
		method:    method,
		route:     route,
		courses:   courses,
		startTime: time.Now(),
	}
}

func levelFor(route string, status int) string {
	switch {
	case status >= http.StatusInternalServerError:
		return "ERROR"
	case status >= http.StatusBadRequest:
		return "WARN"
	case probeRoutes[route]:
		return "DEBUG"
	default:
		return "INFO"
	}
}

// LogResponse writes the completed request line.
func (rl *RequestLogger) LogResponse(statusCode int, responseSize int) {
	target := rl.route
	if rl.courses != "" {
		target += " courses=" + rl.courses
	}
	log.Printf("[%s] %s %s -> %d (%d bytes) in %v from %s [request-id: %s]",
		levelFor(rl.route, statusCode), rl.method, target, statusCode, responseSize,
		time.Since(rl.startTime), rl.clientIP, rl.requestID)
}

// requestLogger logs one line per completed request. It must run after
// middleware.RequestID.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		route := c.FullPath()
		if route == "" {
			route = c.Request.URL.Path
		}
		rl := NewRequestLogger(middleware.GetRequestID(c), c.ClientIP(), c.Request.Method, route, c.Query("courses"))
		c.Next()
		rl.LogResponse(c.Writer.Status(), max(c.Writer.Size(), 0))
	}
}
