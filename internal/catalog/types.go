// file: internal/catalog/types.go
// version: 1.1.0
// guid: b55d52b6-e3fc-4efc-83c8-ba546e16f440

package catalog

import "slices"

// CourseCode is a normalized course identifier (NFKC folded, trimmed, upper-cased).
type CourseCode string

// Row is one raw record from a catalog source before normalization.
type Row struct {
	Number int     // 1-based row number in the source, used for reporting
	Name   string  // group name
	Tags   *string // whitespace separated course codes; nil when the cell was missing or not text
}

// TextRow is a convenience constructor for rows whose tag cell is present.
func TextRow(number int, name, tags string) Row {
	return Row{Number: number, Name: name, Tags: &tags}
}

// Group is a named entity owning a set of course codes.
type Group struct {
	Name  string
	codes []CourseCode // sorted, distinct
	set   map[CourseCode]struct{}
}

func newGroup(name string, codes []CourseCode) Group {
	set := make(map[CourseCode]struct{}, len(codes))
	distinct := make([]CourseCode, 0, len(codes))
	for _, code := range codes {
		if _, ok := set[code]; ok {
			continue
		}
		set[code] = struct{}{}
		distinct = append(distinct, code)
	}
	slices.Sort(distinct)
	return Group{Name: name, codes: distinct, set: set}
}

// Has reports whether the group contains code.
func (g Group) Has(code CourseCode) bool {
	_, ok := g.set[code]
	return ok
}

// Codes returns the group's course codes in sorted order.
func (g Group) Codes() []CourseCode {
	return slices.Clone(g.codes)
}

// Len returns the number of distinct course codes in the group.
func (g Group) Len() int {
	return len(g.codes)
}

// Catalog is the immutable, ordered set of groups built from source rows.
type Catalog struct {
	groups     []Group
	allCourses []CourseCode
}

// Groups returns the groups in original row order.
func (c *Catalog) Groups() []Group {
	if c == nil {
		return nil
	}
	return slices.Clone(c.groups)
}

// Group returns the group at position i in row order, or the zero Group
// when i is out of range or the catalog is nil.
func (c *Catalog) Group(i int) Group {
	if c == nil || i < 0 || i >= len(c.groups) {
		return Group{}
	}
	return c.groups[i]
}

// Len returns the number of groups.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.groups)
}

// AllCourses returns every distinct course code across all groups, sorted.
func (c *Catalog) AllCourses() []CourseCode {
	if c == nil {
		return nil
	}
	return slices.Clone(c.allCourses)
}

// Knows reports whether any group in the catalog offers code.
func (c *Catalog) Knows(code CourseCode) bool {
	if c == nil {
		return false
	}
	_, found := slices.BinarySearch(c.allCourses, code)
	return found
}
