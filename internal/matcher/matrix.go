// file: internal/matcher/matrix.go
// version: 1.1.0
// guid: ed32e4bd-454c-4cb8-8048-2d9817087580

package matcher

import (
	"slices"

	"github.com/jdfalk/course-group-finder/internal/catalog"
)

// PresenceRow shows which query codes a single group contains.
type PresenceRow struct {
	GroupName  string  `json:"group_name"`
	Position   int     `json:"position"`
	Cells      []bool  `json:"cells"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// PresenceMatrix is the detailed group x course view of a query.
type PresenceMatrix struct {
	Columns []catalog.CourseCode `json:"columns"`
	Rows    []PresenceRow        `json:"rows"`
}

// Clone returns a deep copy of m; no slice is shared with the original.
func (m PresenceMatrix) Clone() PresenceMatrix {
	rows := make([]PresenceRow, len(m.Rows))
	for i, r := range m.Rows {
		r.Cells = slices.Clone(r.Cells)
		rows[i] = r
	}
	return PresenceMatrix{Columns: slices.Clone(m.Columns), Rows: rows}
}

// BuildPresenceMatrix returns one row per group and one column per distinct
// query code, ordered like Score.
func BuildPresenceMatrix(cat *catalog.Catalog, q Query) PresenceMatrix {
	distinct := q.Distinct()
	hits := intersect(cat, distinct)

	rows := make([]PresenceRow, len(hits))
	for i, h := range hits {
		rows[i] = PresenceRow{
			GroupName:  h.name,
			Position:   h.position,
			Cells:      h.cells,
			Count:      h.count,
			Percentage: ratio(h.count, len(distinct)) * 100,
		}
	}
	return PresenceMatrix{Columns: []catalog.CourseCode(distinct), Rows: rows}
}
