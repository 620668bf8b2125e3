// file: internal/render/render.go
// version: 1.0.0
// guid: fdf20ad5-90d7-4fd9-95bb-b7b340488295

// Package render draws catalogs and match results for the terminal.
package render

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/jdfalk/course-group-finder/internal/catalog"
	"github.com/jdfalk/course-group-finder/internal/matcher"
)

// NoMatches is shown when a non-empty query matched no group at all.
const NoMatches = "No matching groups found for the entered courses."

// DefaultColumns is the course grid width.
const DefaultColumns = 4

// DefaultBarWidth is the length of a full (ratio 1.0) bar.
const DefaultBarWidth = 40

func newTable() *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(_, _ int) lipgloss.Style { return cellStyle })
}

// Heading renders a section title.
func Heading(s string) string {
	return headingStyle.Render(s)
}

// Warning renders a highlighted warning line.
func Warning(msg string) string {
	return warnStyle.Render("⚠ " + msg)
}

// Error renders a highlighted error line.
func Error(msg string) string {
	return errorStyle.Render("✗ " + msg)
}

// Percent formats a ratio as a whole-number percentage, e.g. "67%".
func Percent(r float64) string {
	return strconv.Itoa(int(math.Round(r*100))) + "%"
}

// CourseGrid lays the available courses out row by row in columns cells.
func CourseGrid(courses []catalog.CourseCode, columns int) string {
	if len(courses) == 0 {
		return dimStyle.Render("(no courses)")
	}
	if columns < 1 {
		columns = DefaultColumns
	}

	t := newTable()
	for start := 0; start < len(courses); start += columns {
		end := min(start+columns, len(courses))
		row := make([]string, columns)
		for i, code := range courses[start:end] {
			row[i] = courseStyle.Render(string(code))
		}
		t.Row(row...)
	}
	return t.String()
}

// Groups lists every group with its course codes.
func Groups(groups []catalog.Group) string {
	t := newTable().Headers("#", "Group", "Courses")
	for i, g := range groups {
		codes := g.Codes()
		parts := make([]string, len(codes))
		for j, c := range codes {
			parts[j] = string(c)
		}
		t.Row(strconv.Itoa(i+1), g.Name, strings.Join(parts, " "))
	}
	return t.String()
}

// Results renders the ranked table: group, matching count and ratio.
// size is the number of distinct query codes.
func Results(results matcher.RankedResults, size int) string {
	t := newTable().Headers("Rank", "Group", "Matches", "Ratio")
	for i, r := range results {
		t.Row(
			strconv.Itoa(i+1),
			r.GroupName,
			fmt.Sprintf("%d/%d", r.Count, size),
			ratioStyle(r.Ratio).Render(Percent(r.Ratio)),
		)
	}
	return t.String()
}

// BarChart draws one horizontal bar per result, highest first, scaled so a
// ratio of 1.0 spans width cells.
func BarChart(results matcher.RankedResults, width int) string {
	if width < 1 {
		width = DefaultBarWidth
	}
	nameWidth := 0
	for _, r := range results {
		nameWidth = max(nameWidth, lipgloss.Width(r.GroupName))
	}

	var b strings.Builder
	for _, r := range results {
		n := int(math.Round(r.Ratio * float64(width)))
		bar := barStyle.Render(strings.Repeat("█", n)) + dimStyle.Render(strings.Repeat("░", width-n))
		pad := strings.Repeat(" ", nameWidth-lipgloss.Width(r.GroupName))
		fmt.Fprintf(&b, "%s%s │%s %s\n", r.GroupName, pad, bar, Percent(r.Ratio))
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// Matrix renders the presence matrix with ✓ for a held course and · otherwise.
func Matrix(m matcher.PresenceMatrix) string {
	headers := make([]string, 0, len(m.Columns)+3)
	headers = append(headers, "Group")
	for _, c := range m.Columns {
		headers = append(headers, string(c))
	}
	headers = append(headers, "Count", "Match")

	t := newTable().Headers(headers...)
	for _, row := range m.Rows {
		cells := make([]string, 0, len(headers))
		cells = append(cells, row.GroupName)
		for _, present := range row.Cells {
			if present {
				cells = append(cells, presentStyle.Render("✓"))
			} else {
				cells = append(cells, dimStyle.Render("·"))
			}
		}
		cells = append(cells,
			strconv.Itoa(row.Count),
			ratioStyle(row.Percentage/100).Render(Percent(row.Percentage/100)),
		)
		t.Row(cells...)
	}
	return t.String()
}

// Skipped lists rows that were left out of the catalog.
func Skipped(errs []*catalog.MalformedRowError) string {
	lines := make([]string, len(errs))
	for i, e := range errs {
		lines[i] = Warning("skipped " + e.Error())
	}
	return strings.Join(lines, "\n")
}
