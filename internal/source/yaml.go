// file: internal/source/yaml.go
// version: 1.0.0
// guid: f983b4cd-4187-4bb9-843a-61c2f6ddfafd

package source

import (
	"fmt"
	"os"
	"strings"

	"github.com/jdfalk/course-group-finder/internal/catalog"
	"gopkg.in/yaml.v3"
)

// loadYAML reads a list of mappings. JSON documents parse the same way.
//
//	- GroupName: Systems
//	  Description (COURSES): CS101 CS240
func loadYAML(path string, opts Options) ([]catalog.Row, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var records []map[string]any
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	rows := make([]catalog.Row, 0, len(records))
	for i, record := range records {
		if len(record) == 0 {
			continue
		}
		row := catalog.Row{Number: i + 1, Name: scalarString(record[opts.NameColumn])}
		// Only real strings count as tags; numbers, lists and nulls are left nil.
		if tags, ok := record[opts.CoursesColumn].(string); ok {
			row.Tags = &tags
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func scalarString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	default:
		return strings.TrimSpace(fmt.Sprint(t))
	}
}
