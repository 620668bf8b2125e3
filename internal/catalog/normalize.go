// file: internal/catalog/normalize.go
// version: 1.0.0
// guid: 07726581-4e8e-4019-9535-eba35e2c6a01

package catalog

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// NormalizeCode folds compatibility forms (full-width digits and letters),
// trims surrounding whitespace and upper-cases the token.
func NormalizeCode(token string) CourseCode {
	folded := norm.NFKC.String(token)
	return CourseCode(strings.ToUpper(strings.TrimSpace(folded)))
}

// SplitTags splits a whitespace separated tag string into normalized codes.
// Duplicates are dropped; the first occurrence keeps its position.
func SplitTags(tags string) []CourseCode {
	fields := strings.Fields(norm.NFKC.String(tags))
	out := make([]CourseCode, 0, len(fields))
	seen := make(map[CourseCode]struct{}, len(fields))
	for _, field := range fields {
		code := NormalizeCode(field)
		if code == "" {
			continue
		}
		if _, ok := seen[code]; ok {
			continue
		}
		seen[code] = struct{}{}
		out = append(out, code)
	}
	return out
}
