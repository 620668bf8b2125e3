// file: internal/server/middleware/ratelimit.go
// version: 3.0.0
// guid: 1331705a-85cb-4158-92f5-5ce203d8a0e7

package middleware

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// clientIdleTTL is how long a client's bucket is kept without requests.
const clientIdleTTL = 15 * time.Minute

type clientBucket struct {
	tokens   *rate.Limiter
	lastSeen time.Time
}

// ClientLimiter gives every client IP its own token bucket refilled at a
// fixed number of requests per minute.
type ClientLimiter struct {
	mu        sync.Mutex
	clients   map[string]*clientBucket
	perMinute int
	burst     int
	exempt    map[string]struct{}
	lastSweep time.Time
	now       func() time.Time
}

// NewClientLimiter allows perMinute requests per client with bursts of up to
// burst requests. Requests whose route matches one of exemptRoutes are
// never counted.
func NewClientLimiter(perMinute, burst int, exemptRoutes ...string) *ClientLimiter {
	l := &ClientLimiter{
		clients:   make(map[string]*clientBucket),
		perMinute: max(perMinute, 1),
		burst:     max(burst, 1),
		exempt:    make(map[string]struct{}, len(exemptRoutes)),
		now:       time.Now,
	}
	for _, route := range exemptRoutes {
		l.exempt[route] = struct{}{}
	}
	return l
}

// Allow takes a token from ip's bucket and reports whether one was available.
func (l *ClientLimiter) Allow(ip string) bool {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	if now.Sub(l.lastSweep) > clientIdleTTL {
		for key, b := range l.clients {
			if now.Sub(b.lastSeen) > clientIdleTTL {
				delete(l.clients, key)
			}
		}
		l.lastSweep = now
	}

	b, ok := l.clients[ip]
	if !ok {
		b = &clientBucket{tokens: rate.NewLimiter(rate.Limit(float64(l.perMinute)/60), l.burst)}
		l.clients[ip] = b
	}
	b.lastSeen = now
	return b.tokens.AllowN(now, 1)
}

// Clients returns the number of tracked client buckets.
func (l *ClientLimiter) Clients() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.clients)
}

// RetryAfter is the whole number of seconds until a drained bucket has a token again.
func (l *ClientLimiter) RetryAfter() int {
	return int(math.Ceil(60 / float64(l.perMinute)))
}

// Middleware rejects requests over the limit with 429 and a Retry-After header.
func (l *ClientLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := l.exempt[c.FullPath()]; ok {
			c.Next()
			return
		}
		ip := c.ClientIP()
		if ip == "" {
			ip = "unknown"
		}
		if !l.Allow(ip) {
			c.Header("Retry-After", strconv.Itoa(l.RetryAfter()))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":  "rate limit exceeded",
				"code":   "RATE_LIMITED",
				"status": http.StatusTooManyRequests,
			})
			return
		}
		c.Next()
	}
}
