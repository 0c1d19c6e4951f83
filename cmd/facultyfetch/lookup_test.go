package main_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/fwojciec/facultyfetch"
	main "github.com/fwojciec/facultyfetch/cmd/facultyfetch"
	"github.com/fwojciec/facultyfetch/dispatch"
	"github.com/fwojciec/facultyfetch/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Story: Interactive lookup
//
// The operator types space-separated faculty names. Lines that match
// nothing re-prompt; the first line that matches anything triggers one
// fetch per match and ends the session.

const (
	intro = "Enter names of faculties: \n> "
	retry = "Invalid input or nothing was found, try again: \n> "
)

func lookupRecords() []facultyfetch.Record {
	records := facultyfetch.BuildRecords(facultyfetch.Parse(
		"faculty,url\nScience,http://example.com/s\nEngineering,http://example.com/e\n", ","))
	facultyfetch.SortByFaculty(records)
	return records
}

// recordingFetcher returns a fetcher that records requested URLs and
// answers with body, or err when set.
func recordingFetcher(body string, err error) (*mock.Fetcher, func() []string) {
	var mu sync.Mutex
	var urls []string
	f := &mock.Fetcher{
		FetchFn: func(_ context.Context, url string) (string, error) {
			mu.Lock()
			urls = append(urls, url)
			mu.Unlock()
			return body, err
		},
	}
	return f, func() []string {
		mu.Lock()
		defer mu.Unlock()
		return append([]string(nil), urls...)
	}
}

func newDeps(input string, fetcher facultyfetch.Fetcher) (*main.Dependencies, *bytes.Buffer, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	return &main.Dependencies{
		Ctx:        context.Background(),
		Stdin:      strings.NewReader(input),
		Stdout:     stdout,
		Stderr:     stderr,
		Records:    lookupRecords(),
		Dispatcher: &dispatch.Dispatcher{Fetcher: fetcher},
	}, stdout, stderr
}

func TestLookupCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("fetches only the matched faculty", func(t *testing.T) {
		t.Parallel()

		fetcher, urls := recordingFetcher(strings.Repeat("a", 42), nil)
		deps, stdout, stderr := newDeps("science\n", fetcher)

		err := (&main.LookupCmd{}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, []string{"http://example.com/s"}, urls())
		assert.Equal(t, intro+"Science (http://example.com/s) data length:\t42\n", stdout.String())
		assert.Empty(t, stderr.String())
	})

	t.Run("re-prompts on whitespace-only input", func(t *testing.T) {
		t.Parallel()

		fetcher, urls := recordingFetcher("ok", nil)
		deps, stdout, _ := newDeps("   \n\nEngineering\n", fetcher)

		err := (&main.LookupCmd{}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, []string{"http://example.com/e"}, urls())
		assert.True(t, strings.HasPrefix(stdout.String(), intro+retry+retry))
	})

	t.Run("re-prompts when no term matches", func(t *testing.T) {
		t.Parallel()

		fetcher, urls := recordingFetcher("ok", nil)
		deps, stdout, _ := newDeps("medicine law\nscience\n", fetcher)

		err := (&main.LookupCmd{}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, []string{"http://example.com/s"}, urls())
		assert.True(t, strings.HasPrefix(stdout.String(), intro+retry))
	})

	t.Run("ignores unmatched terms next to matched ones", func(t *testing.T) {
		t.Parallel()

		fetcher, urls := recordingFetcher("ok", nil)
		deps, stdout, _ := newDeps("medicine ENGINEERING\n", fetcher)

		err := (&main.LookupCmd{}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, []string{"http://example.com/e"}, urls())
		assert.NotContains(t, stdout.String(), "Invalid input")
	})

	t.Run("fetches once per matching term", func(t *testing.T) {
		t.Parallel()

		fetcher, urls := recordingFetcher("ok", nil)
		deps, _, _ := newDeps("science Science engineering\n", fetcher)

		err := (&main.LookupCmd{}).Run(deps)

		require.NoError(t, err)
		assert.ElementsMatch(t, []string{
			"http://example.com/s",
			"http://example.com/s",
			"http://example.com/e",
		}, urls())
	})

	t.Run("stops reading after the first successful batch", func(t *testing.T) {
		t.Parallel()

		fetcher, urls := recordingFetcher("ok", nil)
		deps, _, _ := newDeps("science\nengineering\n", fetcher)

		err := (&main.LookupCmd{}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, []string{"http://example.com/s"}, urls())
	})

	t.Run("ends without fetching at end of input", func(t *testing.T) {
		t.Parallel()

		fetcher, urls := recordingFetcher("ok", nil)
		deps, stdout, _ := newDeps("nothing\n", fetcher)

		err := (&main.LookupCmd{}).Run(deps)

		require.NoError(t, err)
		assert.Empty(t, urls())
		assert.Equal(t, intro+retry, stdout.String())
	})

	t.Run("accepts CRLF line endings", func(t *testing.T) {
		t.Parallel()

		fetcher, urls := recordingFetcher("ok", nil)
		deps, _, _ := newDeps("science\r\n", fetcher)

		err := (&main.LookupCmd{}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, []string{"http://example.com/s"}, urls())
	})

	t.Run("matches a final line without newline", func(t *testing.T) {
		t.Parallel()

		fetcher, urls := recordingFetcher("ok", nil)
		deps, _, _ := newDeps("nothing\nscience", fetcher)

		err := (&main.LookupCmd{}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, []string{"http://example.com/s"}, urls())
	})

	t.Run("accepts lines longer than a few megabytes", func(t *testing.T) {
		t.Parallel()

		fetcher, urls := recordingFetcher("ok", nil)
		deps, _, _ := newDeps(strings.Repeat(" ", 3<<20)+"science\n", fetcher)

		err := (&main.LookupCmd{}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, []string{"http://example.com/s"}, urls())
	})

	t.Run("reports fetch errors on stderr with highlight", func(t *testing.T) {
		t.Parallel()

		fetcher, _ := recordingFetcher("", errors.New("404 Not Found"))
		deps, stdout, stderr := newDeps("science\n", fetcher)

		err := (&main.LookupCmd{}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, intro, stdout.String())
		assert.Equal(t, "Science (http://example.com/s) - error:\t\x1b[1;33m404 Not Found\x1b[0m\n", stderr.String())
	})

	t.Run("reports application error messages without code", func(t *testing.T) {
		t.Parallel()

		fetcher, _ := recordingFetcher("", facultyfetch.Errorf(facultyfetch.EINVALID, `protocol "https:" not supported`))
		deps, _, stderr := newDeps("science\n", fetcher)

		err := (&main.LookupCmd{}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stderr.String(), "\x1b[1;33mprotocol \"https:\" not supported\x1b[0m")
		assert.NotContains(t, stderr.String(), "code=")
	})
}
