package facultyfetch

import "strings"

// SplitTerms splits an input line on spaces and drops empty tokens.
func SplitTerms(line string) []string {
	var terms []string
	for _, s := range strings.Split(line, " ") {
		if s != "" {
			terms = append(terms, s)
		}
	}
	return terms
}

// FindFirst returns the first record whose faculty equals term, ignoring case.
func FindFirst(records []Record, term string) (Record, bool) {
	needle := strings.ToLower(term)
	for _, rec := range records {
		if strings.ToLower(rec.Faculty()) == needle {
			return rec, true
		}
	}
	return nil, false
}

// Find resolves each term to its first matching record. Terms without a
// match are dropped. A record matched by several terms appears once per term.
func Find(records []Record, terms []string) []Record {
	var found []Record
	for _, term := range terms {
		if rec, ok := FindFirst(records, term); ok {
			found = append(found, rec)
		}
	}
	return found
}
