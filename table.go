package facultyfetch

import "strings"

// DefaultDelimiter separates fields when no delimiter is given.
const DefaultDelimiter = ","

// Table holds parsed delimited text as rows of fields.
// The first row is the header.
type Table [][]string

// Parse splits content into lines and each line into fields.
// Empty lines are dropped wherever they appear. Quoting is not supported:
// a delimiter inside a field always starts a new field.
func Parse(content, delim string) Table {
	if delim == "" {
		delim = DefaultDelimiter
	}

	var t Table
	for _, line := range strings.Split(content, "\n") {
		if line == "" {
			continue
		}
		t = append(t, strings.Split(line, delim))
	}
	return t
}

// Header returns the first row, or nil for an empty table.
func (t Table) Header() []string {
	if len(t) == 0 {
		return nil
	}
	return t[0]
}

// Rows returns every row after the header.
func (t Table) Rows() [][]string {
	if len(t) < 2 {
		return nil
	}
	return t[1:]
}
