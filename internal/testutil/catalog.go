// file: internal/testutil/catalog.go
// version: 2.0.0
// guid: 8396d110-cffc-4e1b-bc5c-8fb7358ec5ca

package testutil

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/jdfalk/course-group-finder/internal/source"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// GroupRow is one fixture row: a group name and its space separated courses.
type GroupRow struct {
	Name    string
	Courses string
}

// SampleGroups is a small catalog with one group that offers nothing.
var SampleGroups = []GroupRow{
	{Name: "Alpha", Courses: "CS101 CS102 CS103"},
	{Name: "Beta", Courses: "cs101"},
	{Name: "Gamma", Courses: "MA201"},
	{Name: "Broken", Courses: ""},
}

func header() []string {
	return []string{source.DefaultNameColumn, source.DefaultCoursesColumn}
}

// WriteCSV writes rows under the default column headers to dir/name.
func WriteCSV(t *testing.T, dir, name string, rows []GroupRow) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))

	file, err := os.Create(path)
	require.NoError(t, err)
	defer file.Close()

	w := csv.NewWriter(file)
	require.NoError(t, w.Write(header()))
	for _, r := range rows {
		require.NoError(t, w.Write([]string{r.Name, r.Courses}))
	}
	w.Flush()
	require.NoError(t, w.Error())
	return path
}

// WriteXLSX writes rows under the default column headers to the first sheet
// of a new workbook at dir/name.
func WriteXLSX(t *testing.T, dir, name string, rows []GroupRow) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]string{source.DefaultNameColumn, source.DefaultCoursesColumn}))
	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &[]string{r.Name, r.Courses}))
	}
	require.NoError(t, f.SaveAs(path))
	return path
}

// CopyFile copies a file from src to dst.
func CopyFile(t *testing.T, src, dst string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(dst), 0o755))
	data, err := os.ReadFile(src)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(dst, data, 0o644))
}
