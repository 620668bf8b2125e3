// file: internal/matcher/fuzzy.go
// version: 2.0.0
// guid: a1b2c3d4-e5f6-7890-abcd-ef1234567890

package matcher

import (
	"sort"

	"github.com/jdfalk/course-group-finder/internal/catalog"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Suggest returns known course codes that fuzzily match a partial code,
// closest first. Ties keep the catalog's sorted course order. A negative
// limit returns every match.
func Suggest(cat *catalog.Catalog, partial string, limit int) []catalog.CourseCode {
	needle := string(catalog.NormalizeCode(partial))
	if needle == "" || limit == 0 {
		return nil
	}

	courses := cat.AllCourses()
	targets := make([]string, len(courses))
	for i, code := range courses {
		targets[i] = string(code)
	}

	ranks := fuzzy.RankFindNormalizedFold(needle, targets)
	sort.Stable(ranks)

	if limit > 0 && len(ranks) > limit {
		ranks = ranks[:limit]
	}
	out := make([]catalog.CourseCode, len(ranks))
	for i, r := range ranks {
		out[i] = catalog.CourseCode(r.Target)
	}
	return out
}
