// file: internal/server/response_types.go
// version: 3.0.0
// guid: 7f8a9b0c-1d2e-3f4a-5b6c-7d8e9f0a1b2c

package server

import (
	"github.com/jdfalk/course-group-finder/internal/catalog"
	"github.com/jdfalk/course-group-finder/internal/matcher"
)

// ListResponse provides a consistent format for list responses
type ListResponse struct {
	Items any `json:"items"`
	Count int `json:"count"`
}

// StatusResponse provides a consistent format for status check responses
type StatusResponse struct {
	Status    string `json:"status"` // "ok", "degraded", "error"
	Code      string `json:"code,omitempty"`
	Version   string `json:"version"`
	Timestamp int64  `json:"timestamp"`
	Data      any    `json:"data,omitempty"`
}

// GroupResponse is one catalog group.
type GroupResponse struct {
	Position int                  `json:"position"`
	Name     string               `json:"name"`
	Courses  []catalog.CourseCode `json:"courses"`
}

// SearchResponse is a ranked search. Message is set when a non-empty query
// matched no group.
type SearchResponse struct {
	Query          matcher.Query         `json:"query"`
	Selection      string                `json:"selection"`
	CatalogVersion string                `json:"catalog_version"`
	Results        matcher.RankedResults `json:"results"`
	Message        string                `json:"message,omitempty"`
}

// MatrixResponse is the presence matrix for a query.
type MatrixResponse struct {
	CatalogVersion string `json:"catalog_version"`
	matcher.PresenceMatrix
}

// SelectionRequest edits a comma separated selection string.
type SelectionRequest struct {
	Selection string `json:"selection"`
	Add       string `json:"add"`
	Remove    string `json:"remove"`
}

// SelectionResponse returns the canonical selection and its parsed codes.
type SelectionResponse struct {
	Selection string        `json:"selection"`
	Query     matcher.Query `json:"query"`
}

// NewListResponse wraps items and their count. A nil slice is sent as [].
func NewListResponse[T any](items []T) *ListResponse {
	if items == nil {
		items = []T{}
	}
	return &ListResponse{
		Items: items,
		Count: len(items),
	}
}
