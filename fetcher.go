package facultyfetch

import (
	"context"
	"unicode/utf16"

	"golang.org/x/text/encoding/unicode"
)

// Fetcher retrieves the content served at a URL.
type Fetcher interface {
	// Fetch issues a single GET and returns the full response body.
	// A response other than 200 OK is returned as an error.
	// The context controls cancellation.
	Fetch(ctx context.Context, url string) (body string, err error)

	// Close releases resources held by the fetcher.
	Close() error
}

// DomainLimiter paces requests per domain.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}

// Outcome is the result of fetching one matched record.
type Outcome struct {
	Record Record
	Length int
	Err    error
}

// TextLength decodes s as UTF-8 and returns the length of the text as a
// count of UTF-16 code units. Runes outside the Basic Multilingual Plane
// count twice. Each maximal invalid subsequence, such as a truncated
// multi-byte sequence, decodes to one replacement character.
func TextLength(s string) int {
	text, err := unicode.UTF8.NewDecoder().String(s)
	if err != nil {
		text = s
	}

	n := 0
	for _, r := range text {
		n += utf16.RuneLen(r)
	}
	return n
}
