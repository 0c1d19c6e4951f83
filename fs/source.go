// Package fs provides file-based loading of faculty records.
package fs

import (
	"context"
	"fmt"
	"os"

	"github.com/fwojciec/facultyfetch"
)

// DefaultPath is the record file read when no path is given.
const DefaultPath = "data.csv"

// Ensure RecordSource implements facultyfetch.RecordSource at compile time.
var _ facultyfetch.RecordSource = (*RecordSource)(nil)

// RecordSource reads delimited records from a file on disk.
type RecordSource struct {
	// Path to the record file. Defaults to DefaultPath.
	Path string

	// Delimiter between fields. Defaults to facultyfetch.DefaultDelimiter.
	Delimiter string
}

// NewRecordSource creates a new RecordSource.
func NewRecordSource(path, delim string) *RecordSource {
	return &RecordSource{Path: path, Delimiter: delim}
}

// LoadRecords reads the whole file, parses it, and returns the records
// sorted by faculty.
func (s *RecordSource) LoadRecords(ctx context.Context) ([]facultyfetch.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := s.Path
	if path == "" {
		path = DefaultPath
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read records %q: %w", path, err)
	}

	records := facultyfetch.BuildRecords(facultyfetch.Parse(string(content), s.Delimiter))
	facultyfetch.SortByFaculty(records)
	return records, nil
}
