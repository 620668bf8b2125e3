// file: internal/catalog/build.go
// version: 1.0.0
// guid: 0d07ce61-fe63-42df-a968-5a8097167d2b

package catalog

import (
	"slices"
	"strings"
)

// Build normalizes raw rows into a Catalog. Rows without a usable tag field or
// group name are skipped and reported; they never abort the build.
func Build(rows []Row) (*Catalog, []*MalformedRowError) {
	var skipped []*MalformedRowError
	groups := make([]Group, 0, len(rows))
	union := make(map[CourseCode]struct{})

	for _, row := range rows {
		name := strings.TrimSpace(row.Name)
		if reason := rowProblem(name, row.Tags); reason != "" {
			skipped = append(skipped, &MalformedRowError{Number: row.Number, Name: name, Reason: reason})
			continue
		}

		codes := SplitTags(*row.Tags)
		for _, code := range codes {
			union[code] = struct{}{}
		}
		groups = append(groups, newGroup(name, codes))
	}

	all := make([]CourseCode, 0, len(union))
	for code := range union {
		all = append(all, code)
	}
	slices.Sort(all)

	return &Catalog{groups: groups, allCourses: all}, skipped
}

func rowProblem(name string, tags *string) string {
	switch {
	case tags == nil:
		return "course tags missing or not text"
	case strings.TrimSpace(*tags) == "":
		return "course tags empty"
	case name == "":
		return "group name empty"
	}
	return ""
}
