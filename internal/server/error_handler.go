// file: internal/server/error_handler.go
// version: 3.0.0
// guid: 5d6e7f8a-9b0c-1d2e-3f4a-5b6c7d8e9f0a

package server

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jdfalk/course-group-finder/internal/finder"
	"github.com/jdfalk/course-group-finder/internal/server/middleware"
	"github.com/jdfalk/course-group-finder/internal/source"
)

// Machine readable error codes carried in APIError.Code.
const (
	CodeBadRequest        = "BAD_REQUEST"
	CodeValidation        = "VALIDATION_ERROR"
	CodeNotFound          = "NOT_FOUND"
	CodeNoCatalog         = "NO_CATALOG"
	CodeSourceUnavailable = "SOURCE_UNAVAILABLE"
	CodeReloadFailed      = "RELOAD_FAILED"
	CodeInternal          = "INTERNAL_ERROR"
)

// APIError is the body of every non-2xx JSON response.
type APIError struct {
	Error  string `json:"error"`
	Code   string `json:"code,omitempty"`
	Status int    `json:"status"`
}

// DataResponse wraps single-object payloads.
type DataResponse struct {
	Data any `json:"data"`
}

// abortWith logs the failure with the request id and writes the envelope.
func abortWith(c *gin.Context, status int, code, message string) {
	level := "WARN"
	if status >= http.StatusInternalServerError {
		level = "ERROR"
	}
	log.Printf("[%s] %s %s %d %s - %s [request-id: %s]",
		level, c.Request.Method, c.Request.URL.Path, status, code, message, middleware.GetRequestID(c))

	c.AbortWithStatusJSON(status, APIError{Error: message, Code: code, Status: status})
}

// errorStatus classifies an error from the finder or the catalog source.
func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, finder.ErrNoCatalog):
		return http.StatusServiceUnavailable, CodeNoCatalog
	case errors.Is(err, source.ErrSourceUnavailable):
		return http.StatusServiceUnavailable, CodeSourceUnavailable
	default:
		return http.StatusInternalServerError, CodeInternal
	}
}

// RespondWithError maps err onto a status code and error envelope.
func RespondWithError(c *gin.Context, err error) {
	status, code := errorStatus(err)
	abortWith(c, status, code, err.Error())
}

// RespondWithBadRequest rejects a request that could not be decoded.
func RespondWithBadRequest(c *gin.Context, message string) {
	abortWith(c, http.StatusBadRequest, CodeBadRequest, message)
}

// RespondWithValidationError rejects a well-formed request with an invalid field.
func RespondWithValidationError(c *gin.Context, field, reason string) {
	abortWith(c, http.StatusBadRequest, CodeValidation, fmt.Sprintf("invalid %s: %s", field, reason))
}

func RespondWithNotFound(c *gin.Context, what string) {
	abortWith(c, http.StatusNotFound, CodeNotFound, what+" not found")
}

// RespondWithData sends 200 with payload under "data".
func RespondWithData(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, DataResponse{Data: payload})
}

// RespondWithList sends 200 with a list envelope. A nil slice is sent as [].
func RespondWithList[T any](c *gin.Context, items []T) {
	c.JSON(http.StatusOK, NewListResponse(items))
}

// bindJSON decodes the request body into dst, answering 400 on failure.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		RespondWithBadRequest(c, "invalid request body: "+err.Error())
		return false
	}
	return true
}

// queryInt reads an integer query parameter. A missing parameter yields def.
func queryInt(c *gin.Context, key string, def int) (int, error) {
	raw, ok := c.GetQuery(key)
	if !ok || raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}

// queryBool reads a boolean query parameter in any form strconv.ParseBool accepts.
func queryBool(c *gin.Context, key string, def bool) (bool, error) {
	raw, ok := c.GetQuery(key)
	if !ok || raw == "" {
		return def, nil
	}
	return strconv.ParseBool(raw)
}
