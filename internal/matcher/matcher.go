// file: internal/matcher/matcher.go
// version: 2.0.0
// guid: 1f2a3b4c-5d6e-7f8a-9b0c-1d2e3f4a5b6c

package matcher

import (
	"cmp"
	"slices"

	"github.com/jdfalk/course-group-finder/internal/catalog"
)

// MatchResult is one group's score against a query.
type MatchResult struct {
	GroupName string  `json:"group_name"`
	Position  int     `json:"position"` // index of the group in catalog order
	Count     int     `json:"count"`
	Ratio     float64 `json:"ratio"`
}

// RankedResults holds one MatchResult per catalog group, best first.
type RankedResults []MatchResult

// AllZero reports whether no group matched any query code.
func (r RankedResults) AllZero() bool {
	for _, res := range r {
		if res.Count > 0 {
			return false
		}
	}
	return true
}

// MatchingOnly returns the entries with at least one matching code.
// Renderers use it for a filtered view; Score itself never drops rows.
func (r RankedResults) MatchingOnly() RankedResults {
	out := make(RankedResults, 0, len(r))
	for _, res := range r {
		if res.Count > 0 {
			out = append(out, res)
		}
	}
	return out
}

// groupHits is the per-group intersection shared by Score and BuildPresenceMatrix.
type groupHits struct {
	position int
	name     string
	cells    []bool // one per distinct query code
	count    int
}

func intersect(cat *catalog.Catalog, distinct Query) []groupHits {
	hits := make([]groupHits, cat.Len())
	for i := range hits {
		g := cat.Group(i)
		cells := make([]bool, len(distinct))
		count := 0
		for j, code := range distinct {
			if g.Has(code) {
				cells[j] = true
				count++
			}
		}
		hits[i] = groupHits{position: i, name: g.Name, cells: cells, count: count}
	}
	// Equal counts keep catalog order.
	slices.SortStableFunc(hits, func(a, b groupHits) int {
		return cmp.Compare(b.count, a.count)
	})
	return hits
}

func ratio(count, size int) float64 {
	if size == 0 {
		return 0
	}
	return float64(count) / float64(size)
}

// Score ranks every group in cat by how many distinct query codes it holds.
// An empty query yields a zero-count entry per group in catalog order.
func Score(cat *catalog.Catalog, q Query) RankedResults {
	distinct := q.Distinct()
	hits := intersect(cat, distinct)

	results := make(RankedResults, len(hits))
	for i, h := range hits {
		results[i] = MatchResult{
			GroupName: h.name,
			Position:  h.position,
			Count:     h.count,
			Ratio:     ratio(h.count, len(distinct)),
		}
	}
	return results
}
