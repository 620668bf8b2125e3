// file: internal/source/xlsx.go
// version: 1.0.0
// guid: b31474bd-2033-4dcb-811a-e6feea057c55

package source

import (
	"fmt"
	"log"

	"github.com/jdfalk/course-group-finder/internal/catalog"
	"github.com/xuri/excelize/v2"
)

func loadXLSX(path string, opts Options) ([]catalog.Row, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			log.Printf("[WARN] source: closing %s: %v", path, cerr)
		}
	}()

	sheet := opts.Sheet
	if sheet == "" {
		sheet = f.GetSheetName(f.GetActiveSheetIndex())
	}
	if sheet == "" {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	table, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(table) == 0 {
		return nil, fmt.Errorf("sheet %q: %w: header row", sheet, ErrMissingColumn)
	}

	nameIdx, coursesIdx, err := columnIndex(table[0], opts)
	if err != nil {
		return nil, fmt.Errorf("sheet %q: %w", sheet, err)
	}

	rows := make([]catalog.Row, 0, len(table)-1)
	for i, record := range table[1:] {
		if blank(record...) {
			continue
		}
		// Spreadsheet row numbers are 1-based and the header is row 1.
		row := catalog.Row{Number: i + 2, Name: cell(record, nameIdx)}
		if coursesIdx < len(record) {
			tags := record[coursesIdx]
			row.Tags = &tags
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// cell returns record[idx], or "" when the row is shorter than idx.
func cell(record []string, idx int) string {
	if idx < len(record) {
		return record[idx]
	}
	return ""
}
