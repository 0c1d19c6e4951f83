package facultyfetch

import (
	"context"
	"slices"
	"strings"
)

// Field names the rest of the program depends on.
const (
	FieldFaculty = "faculty"
	FieldURL     = "url"
)

// Value is a single field value. Valid is false when the row that produced
// the record was shorter than the header.
type Value struct {
	Text  string
	Valid bool
}

// Record is one data row keyed by header field name.
type Record map[string]Value

// Get returns the text of the named field, or "" if it is missing.
func (r Record) Get(name string) string {
	return r[name].Text
}

// Faculty returns the lookup key of the record.
func (r Record) Faculty() string {
	return r.Get(FieldFaculty)
}

// URL returns the fetch target of the record.
func (r Record) URL() string {
	return r.Get(FieldURL)
}

// RecordSource loads the sorted record set.
type RecordSource interface {
	LoadRecords(ctx context.Context) ([]Record, error)
}

// BuildRecords pairs every data row with the header by position.
// Missing trailing values become invalid; extra values are dropped.
// Records keep the order of their rows.
func BuildRecords(t Table) []Record {
	header := t.Header()
	rows := t.Rows()

	records := make([]Record, 0, len(rows))
	for _, row := range rows {
		rec := make(Record, len(header))
		for i, name := range header {
			if i < len(row) {
				rec[name] = Value{Text: row[i], Valid: true}
			} else {
				rec[name] = Value{}
			}
		}
		records = append(records, rec)
	}
	return records
}

// CompareFaculty orders records by faculty using byte-wise comparison.
// Upper case sorts before lower case.
func CompareFaculty(a, b Record) int {
	return strings.Compare(a.Faculty(), b.Faculty())
}

// SortByFaculty sorts records in place, ascending by faculty.
// Records with equal faculties may end up in any relative order.
func SortByFaculty(records []Record) {
	slices.SortFunc(records, CompareFaculty)
}
