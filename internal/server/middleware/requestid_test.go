// file: internal/server/middleware/requestid_test.go
// version: 1.0.0
// guid: 913aba7c-7afe-47d1-b423-3276c3b1691a

package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	ulid "github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
)

func requestIDRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestID())
	router.GET("/id", func(c *gin.Context) {
		c.String(http.StatusOK, GetRequestID(c))
	})
	return router
}

func TestRequestID_Generated(t *testing.T) {
	t.Parallel()

	resp := httptest.NewRecorder()
	requestIDRouter().ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/id", nil))

	id := resp.Header().Get(RequestIDHeader)
	assert.Equal(t, id, resp.Body.String())
	_, err := ulid.ParseStrict(id)
	assert.NoError(t, err)
}

func TestRequestID_PropagatesClientValue(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/id", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	resp := httptest.NewRecorder()
	requestIDRouter().ServeHTTP(resp, req)

	assert.Equal(t, "abc-123", resp.Header().Get(RequestIDHeader))
	assert.Equal(t, "abc-123", resp.Body.String())
}

func TestRequestID_RejectsOversizedValue(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/id", nil)
	req.Header.Set(RequestIDHeader, strings.Repeat("x", maxRequestIDLen+1))
	resp := httptest.NewRecorder()
	requestIDRouter().ServeHTTP(resp, req)

	assert.Len(t, resp.Header().Get(RequestIDHeader), 26)
}
