// file: internal/source/csv.go
// version: 1.1.0
// guid: e779cc16-8b9d-4a6c-a83e-e4a97cbc3e83

package source

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/gocarina/gocsv"
	"github.com/jdfalk/course-group-finder/internal/catalog"
)

func loadCSV(path string, opts Options) ([]catalog.Row, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	// Spreadsheet exports often start with a UTF-8 byte order mark.
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))

	header, err := gocsv.DefaultCSVReader(bytes.NewReader(data)).Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: header row", ErrMissingColumn)
	}
	if err != nil {
		return nil, fmt.Errorf("parse csv header: %w", err)
	}
	nameIdx, coursesIdx, err := columnIndex(header, opts)
	if err != nil {
		return nil, err
	}
	nameKey, coursesKey := header[nameIdx], header[coursesIdx]

	records, err := gocsv.CSVToMaps(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}

	rows := make([]catalog.Row, 0, len(records))
	for i, record := range records {
		name := record[nameKey]
		tags := record[coursesKey]
		if blank(name, tags) {
			continue
		}
		// Line 1 is the header.
		rows = append(rows, catalog.Row{Number: i + 2, Name: name, Tags: &tags})
	}
	return rows, nil
}
