// Package http provides an HTTP-based implementation of facultyfetch.Fetcher.
package http

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/fwojciec/facultyfetch"
)

// Ensure Fetcher implements facultyfetch.Fetcher at compile time.
var _ facultyfetch.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves content from URLs using plain HTTP GET requests.
// Redirects are not followed and there is no timeout unless one is set.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Zero, the default, means no timeout.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}

	return f
}

// Fetch retrieves the body served at rawURL.
// A status other than 200 is returned as an error whose message is the
// status line, e.g. "404 Not Found".
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	target := cleanURL(rawURL)
	u, err := url.Parse(target)
	if err != nil {
		return "", facultyfetch.Errorf(facultyfetch.EINVALID, "invalid URL %q: %v", rawURL, err)
	}
	if u.Scheme != "http" {
		return "", facultyfetch.Errorf(facultyfetch.EINVALID, "protocol %q not supported", u.Scheme+":")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return "", err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", unwrapURLError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return "", errors.New(resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	return string(body), nil
}

// Close releases idle connections.
func (f *Fetcher) Close() error {
	f.client.CloseIdleConnections()
	return nil
}

// cleanURL strips leading and trailing spaces and control characters and
// removes tabs and newlines anywhere, as browsers do before parsing.
func cleanURL(rawURL string) string {
	s := strings.TrimFunc(rawURL, func(r rune) bool { return r <= ' ' })
	return strings.NewReplacer("\t", "", "\n", "", "\r", "").Replace(s)
}

// unwrapURLError strips the "Get <url>:" prefix net/http adds, leaving the
// transport error itself.
func unwrapURLError(err error) error {
	var uerr *url.Error
	if errors.As(err, &uerr) {
		return uerr.Err
	}
	return err
}
