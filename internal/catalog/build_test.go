// file: internal/catalog/build_test.go
// version: 1.1.0
// guid: a54b35db-e9bd-4f19-a969-ff307ac4ee1e

package catalog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_NormalizesAndPreservesOrder(t *testing.T) {
	rows := []Row{
		TextRow(1, "G1", "cs101 CS102"),
		TextRow(2, "G2", "  CS101\tcs200  "),
		TextRow(3, "G3", "MATH1 math1 Math1"),
	}

	cat, skipped := Build(rows)
	require.Empty(t, skipped)
	require.Equal(t, 3, cat.Len())

	assert.Equal(t, "G1", cat.Group(0).Name)
	assert.Equal(t, "G2", cat.Group(1).Name)
	assert.Equal(t, "G3", cat.Group(2).Name)

	assert.Equal(t, []CourseCode{"CS101", "CS102"}, cat.Group(0).Codes())
	assert.Equal(t, []CourseCode{"CS101", "CS200"}, cat.Group(1).Codes())
	assert.Equal(t, []CourseCode{"MATH1"}, cat.Group(2).Codes())
	assert.True(t, cat.Group(1).Has("CS200"))
	assert.False(t, cat.Group(1).Has("cs200"), "membership compares normalized values only")
}

func TestBuild_AllCoursesSortedDistinct(t *testing.T) {
	cat, _ := Build([]Row{
		TextRow(1, "A", "ZZ9 cs101"),
		TextRow(2, "B", "CS101 AB1 cs050"),
	})

	assert.Equal(t, []CourseCode{"AB1", "CS050", "CS101", "ZZ9"}, cat.AllCourses())
	assert.True(t, cat.Knows("CS050"))
	assert.False(t, cat.Knows("CS999"))
}

func TestBuild_SkipsMalformedRows(t *testing.T) {
	rows := []Row{
		TextRow(2, "G1", "CS101"),
		{Number: 3, Name: "Broken", Tags: nil},
		TextRow(4, "Blank", "   "),
		TextRow(5, "  ", "CS300"),
		TextRow(6, "G2", "CS200"),
	}

	cat, skipped := Build(rows)

	require.Len(t, skipped, 3)
	assert.Equal(t, len(rows)-len(skipped), cat.Len())
	assert.Equal(t, 3, skipped[0].Number)
	assert.Equal(t, "Broken", skipped[0].Name)
	assert.Equal(t, 4, skipped[1].Number)
	assert.Equal(t, 5, skipped[2].Number)

	for _, s := range skipped {
		assert.True(t, errors.Is(s, ErrMalformedRow))
	}

	// skipped rows contribute nothing to the course listing
	assert.Equal(t, []CourseCode{"CS101", "CS200"}, cat.AllCourses())
}

func TestBuild_DuplicateNamesStayIndependent(t *testing.T) {
	cat, skipped := Build([]Row{
		TextRow(1, "Dup", "CS101"),
		TextRow(2, "Dup", "CS200"),
	})
	require.Empty(t, skipped)
	require.Equal(t, 2, cat.Len())
	assert.True(t, cat.Group(0).Has("CS101"))
	assert.False(t, cat.Group(0).Has("CS200"))
	assert.True(t, cat.Group(1).Has("CS200"))
}

func TestBuild_Empty(t *testing.T) {
	cat, skipped := Build(nil)
	assert.Empty(t, skipped)
	assert.Equal(t, 0, cat.Len())
	assert.Empty(t, cat.AllCourses())
}

func TestCatalog_AccessorsReturnCopies(t *testing.T) {
	cat, _ := Build([]Row{TextRow(1, "G1", "CS101 CS102")})

	courses := cat.AllCourses()
	courses[0] = "MUTATED"
	assert.Equal(t, CourseCode("CS101"), cat.AllCourses()[0])

	codes := cat.Group(0).Codes()
	codes[0] = "MUTATED"
	assert.Equal(t, CourseCode("CS101"), cat.Group(0).Codes()[0])
}

func TestNilCatalog(t *testing.T) {
	var cat *Catalog
	assert.Equal(t, 0, cat.Len())
	assert.Nil(t, cat.Groups())
	assert.Nil(t, cat.AllCourses())
	assert.False(t, cat.Knows("CS101"))
}

func TestCatalog_GroupOutOfRange(t *testing.T) {
	cat, _ := Build([]Row{TextRow(1, "G1", "CS101")})

	for _, i := range []int{-1, 1, 100} {
		g := cat.Group(i)
		assert.Empty(t, g.Name, "index %d", i)
		assert.Equal(t, 0, g.Len(), "index %d", i)
		assert.False(t, g.Has("CS101"), "index %d", i)
	}

	var nilCat *Catalog
	assert.Empty(t, nilCat.Group(0).Name)
}

func TestMalformedRowError_Message(t *testing.T) {
	err := &MalformedRowError{Number: 7, Name: "G7", Reason: "course tags empty"}
	assert.Equal(t, "row 7 (G7): malformed row: course tags empty", err.Error())

	anon := &MalformedRowError{Number: 8, Reason: "group name empty"}
	assert.Equal(t, "row 8: malformed row: group name empty", anon.Error())
}
