package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fwojciec/facultyfetch"
)

const (
	introMessage = "Enter names of faculties: "
	retryMessage = "Invalid input or nothing was found, try again: "
	prompt       = "> "
)

// ANSI escapes wrapping error messages on stderr.
const (
	highlightStart = "\x1b[1;33m"
	highlightEnd   = "\x1b[0m"
)

// Run prompts for faculty names until a line matches at least one record,
// fetches every match, and returns once all fetches have settled.
// End of input before any match returns nil without fetching.
func (c *LookupCmd) Run(deps *Dependencies) error {
	fmt.Fprintln(deps.Stdout, introMessage)
	fmt.Fprint(deps.Stdout, prompt)

	r := bufio.NewReader(deps.Stdin)
	for {
		line, err := r.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		if line == "" && err != nil {
			return nil
		}
		line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")

		found := facultyfetch.Find(deps.Records, facultyfetch.SplitTerms(line))
		if len(found) == 0 {
			fmt.Fprintln(deps.Stdout, retryMessage)
			fmt.Fprint(deps.Stdout, prompt)
			if err != nil {
				return nil
			}
			continue
		}

		deps.Dispatcher.Dispatch(deps.Ctx, found, func(o facultyfetch.Outcome) {
			report(deps.Stdout, deps.Stderr, o)
		})
		return nil
	}
}

// report prints one outcome: the length on stdout, or the highlighted
// error on stderr.
func report(stdout, stderr io.Writer, o facultyfetch.Outcome) {
	rec := o.Record
	if o.Err != nil {
		msg := highlightStart + facultyfetch.ErrorMessage(o.Err) + highlightEnd
		fmt.Fprintf(stderr, "%s (%s) - error:\t%s\n", rec.Faculty(), rec.URL(), msg)
		return
	}
	fmt.Fprintf(stdout, "%s (%s) data length:\t%d\n", rec.Faculty(), rec.URL(), o.Length)
}
