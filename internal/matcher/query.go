// file: internal/matcher/query.go
// version: 1.1.0
// guid: 753e97fe-6acc-49c2-bea4-14f38a7beda3

package matcher

import (
	"slices"
	"strings"

	"github.com/jdfalk/course-group-finder/internal/catalog"
	"golang.org/x/text/unicode/norm"
)

// selectionSeparator joins codes back into the canonical selection string.
const selectionSeparator = ", "

// Query is the user's requested course codes in the order given.
// It may hold duplicates; scoring works on Distinct.
type Query []catalog.CourseCode

// ParseQuery splits a comma separated course list into normalized codes.
// Empty pieces are dropped, so "", " , " and "a,,b," are all valid input.
func ParseQuery(input string) Query {
	// Fold first so full-width commas separate codes too.
	pieces := strings.Split(norm.NFKC.String(input), ",")
	q := make(Query, 0, len(pieces))
	for _, piece := range pieces {
		code := catalog.NormalizeCode(piece)
		if code == "" {
			continue
		}
		q = append(q, code)
	}
	return q
}

// Distinct returns the query with repeated codes removed, first occurrence kept.
func (q Query) Distinct() Query {
	out := make(Query, 0, len(q))
	seen := make(map[catalog.CourseCode]struct{}, len(q))
	for _, code := range q {
		if _, ok := seen[code]; ok {
			continue
		}
		seen[code] = struct{}{}
		out = append(out, code)
	}
	return out
}

// Empty reports whether the query names no courses.
func (q Query) Empty() bool {
	return len(q) == 0
}

// String renders the canonical comma separated form, e.g. "CS101, CS200".
func (q Query) String() string {
	parts := make([]string, len(q))
	for i, code := range q {
		parts[i] = string(code)
	}
	return strings.Join(parts, selectionSeparator)
}

// AddCourse appends course (which may itself be a comma separated list) to a
// selection string and returns the canonical selection. Codes already present
// are not added twice.
func AddCourse(selection, course string) string {
	q := ParseQuery(selection).Distinct()
	for _, code := range ParseQuery(course) {
		if !slices.Contains(q, code) {
			q = append(q, code)
		}
	}
	return q.String()
}

// RemoveCourse drops course from a selection string and returns the canonical selection.
func RemoveCourse(selection, course string) string {
	drop := ParseQuery(course)
	q := ParseQuery(selection).Distinct()
	q = slices.DeleteFunc(q, func(code catalog.CourseCode) bool {
		return slices.Contains(drop, code)
	})
	return q.String()
}
