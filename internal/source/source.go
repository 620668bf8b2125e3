// file: internal/source/source.go
// version: 1.0.0
// guid: 1ecebdef-51d0-4cfa-8c2a-7b80b5738a7d

package source

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jdfalk/course-group-finder/internal/catalog"
)

// Column names used by the spreadsheet this tool was built around.
const (
	DefaultNameColumn    = "GroupName"
	DefaultCoursesColumn = "Description (COURSES)"
)

var (
	// ErrSourceUnavailable wraps every failure to obtain the raw table.
	ErrSourceUnavailable = errors.New("catalog source unavailable")
	// ErrUnsupportedFormat is returned for file extensions with no reader.
	ErrUnsupportedFormat = errors.New("unsupported catalog format")
	// ErrMissingColumn is returned when the header lacks a configured column.
	ErrMissingColumn = errors.New("missing column")
)

// Options selects which sheet and columns hold the catalog.
type Options struct {
	Sheet         string // xlsx only; empty means the active sheet
	NameColumn    string
	CoursesColumn string
}

func (o Options) withDefaults() Options {
	if o.NameColumn == "" {
		o.NameColumn = DefaultNameColumn
	}
	if o.CoursesColumn == "" {
		o.CoursesColumn = DefaultCoursesColumn
	}
	return o
}

// Load reads raw catalog rows from path. The format is chosen by extension.
// On any error no rows are returned.
func Load(path string, opts Options) ([]catalog.Row, error) {
	opts = opts.withDefaults()

	var (
		rows []catalog.Row
		err  error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".xlsx", ".xlsm":
		rows, err = loadXLSX(path, opts)
	case ".csv":
		rows, err = loadCSV(path, opts)
	case ".yaml", ".yml", ".json":
		rows, err = loadYAML(path, opts)
	default:
		err = fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrSourceUnavailable, path, err)
	}
	return rows, nil
}

// Loader binds a path and options into a reusable load function.
func Loader(path string, opts Options) func() ([]catalog.Row, error) {
	return func() ([]catalog.Row, error) {
		return Load(path, opts)
	}
}

// Supported reports whether path has an extension Load can read.
func Supported(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm", ".csv", ".yaml", ".yml", ".json":
		return true
	}
	return false
}

// columnIndex finds the named columns in a header row.
func columnIndex(header []string, opts Options) (nameIdx, coursesIdx int, err error) {
	nameIdx, coursesIdx = -1, -1
	for i, h := range header {
		switch strings.TrimSpace(h) {
		case opts.NameColumn:
			nameIdx = i
		case opts.CoursesColumn:
			coursesIdx = i
		}
	}
	if nameIdx < 0 {
		return 0, 0, fmt.Errorf("%w: %q", ErrMissingColumn, opts.NameColumn)
	}
	if coursesIdx < 0 {
		return 0, 0, fmt.Errorf("%w: %q", ErrMissingColumn, opts.CoursesColumn)
	}
	return nameIdx, coursesIdx, nil
}

func blank(cells ...string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
