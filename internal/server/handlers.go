// file: internal/server/handlers.go
// version: 1.1.0
// guid: 51f558fd-b9f1-40f2-a88c-9cfd0208201a

package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jdfalk/course-group-finder/internal/matcher"
	"github.com/jdfalk/course-group-finder/internal/render"
)

const (
	defaultSuggestLimit = 10
	maxSuggestLimit     = 100
)

func (s *Server) healthCheck(c *gin.Context) {
	st := s.finder.Status()
	resp := StatusResponse{
		Status:    "ok",
		Version:   Version,
		Timestamp: time.Now().Unix(),
		Data:      st,
	}
	switch {
	case !st.Loaded:
		resp.Status = "error"
		resp.Code = CodeNoCatalog
		c.JSON(http.StatusServiceUnavailable, resp)
		return
	case st.LastError != "":
		resp.Status = "degraded"
		resp.Code = CodeReloadFailed
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) listCourses(c *gin.Context) {
	courses, err := s.finder.Courses()
	if err != nil {
		RespondWithError(c, err)
		return
	}
	RespondWithList(c, courses)
}

func (s *Server) listGroups(c *gin.Context) {
	groups, err := s.finder.Groups()
	if err != nil {
		RespondWithError(c, err)
		return
	}
	items := make([]GroupResponse, len(groups))
	for i, g := range groups {
		items[i] = GroupResponse{Position: i, Name: g.Name, Courses: g.Codes()}
	}
	RespondWithList(c, items)
}

func (s *Server) search(c *gin.Context) {
	res, err := s.finder.Search(c.Query("courses"))
	if err != nil {
		RespondWithError(c, err)
		return
	}

	resp := SearchResponse{
		Query:          res.Query,
		Selection:      res.Query.String(),
		CatalogVersion: res.Version,
		Results:        res.Results,
	}
	if !res.Query.Empty() && res.Results.AllZero() {
		resp.Message = render.NoMatches
	}
	matchingOnly, err := queryBool(c, "matching_only", false)
	if err != nil {
		RespondWithValidationError(c, "matching_only", "must be a boolean")
		return
	}
	if matchingOnly {
		resp.Results = res.Results.MatchingOnly()
	}
	RespondWithData(c, resp)
}

func (s *Server) matrix(c *gin.Context) {
	res, err := s.finder.Matrix(c.Query("courses"))
	if err != nil {
		RespondWithError(c, err)
		return
	}
	RespondWithData(c, MatrixResponse{CatalogVersion: res.Version, PresenceMatrix: res.Matrix})
}

func (s *Server) suggest(c *gin.Context) {
	limit, err := queryInt(c, "limit", defaultSuggestLimit)
	if err != nil || limit < 1 || limit > maxSuggestLimit {
		RespondWithValidationError(c, "limit", fmt.Sprintf("must be between 1 and %d", maxSuggestLimit))
		return
	}
	codes, err := s.finder.Suggest(c.Query("q"), limit)
	if err != nil {
		RespondWithError(c, err)
		return
	}
	RespondWithList(c, codes)
}

func (s *Server) updateSelection(c *gin.Context) {
	var req SelectionRequest
	if !bindJSON(c, &req) {
		return
	}

	selection := req.Selection
	if req.Remove != "" {
		selection = matcher.RemoveCourse(selection, req.Remove)
	}
	canonical, q := s.finder.Select(selection, req.Add)
	RespondWithData(c, SelectionResponse{Selection: canonical, Query: q})
}

func (s *Server) reloadCatalog(c *gin.Context) {
	if _, err := s.finder.Reload(); err != nil {
		RespondWithError(c, err)
		return
	}
	RespondWithData(c, s.finder.Status())
}
