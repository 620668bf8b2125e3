// file: internal/catalog/errors.go
// version: 1.0.0
// guid: 8f92f057-fe61-4bc4-9f5f-76701713f722

package catalog

import (
	"errors"
	"fmt"
)

// ErrMalformedRow marks a source row that was skipped while building a catalog.
var ErrMalformedRow = errors.New("malformed row")

// MalformedRowError describes why a single row was skipped.
type MalformedRowError struct {
	Number int
	Name   string
	Reason string
}

func (e *MalformedRowError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("row %d: %s: %s", e.Number, ErrMalformedRow, e.Reason)
	}
	return fmt.Sprintf("row %d (%s): %s: %s", e.Number, e.Name, ErrMalformedRow, e.Reason)
}

func (e *MalformedRowError) Unwrap() error {
	return ErrMalformedRow
}
