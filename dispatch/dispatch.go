// Package dispatch fans matched records out to a Fetcher, one request per
// record, and collects the outcomes.
package dispatch

import (
	"context"
	"sync"

	"github.com/fwojciec/facultyfetch"
	"golang.org/x/sync/errgroup"
)

// ReportFunc receives each outcome as soon as its fetch settles.
type ReportFunc func(facultyfetch.Outcome)

// Dispatcher issues one fetch per record, all at once.
type Dispatcher struct {
	Fetcher facultyfetch.Fetcher

	// RateLimiter, if set, paces request starts per host.
	RateLimiter facultyfetch.DomainLimiter
}

// Dispatch starts a fetch for every record without waiting for earlier
// ones to finish. Calls to report are serialized and happen in completion
// order. Dispatch returns once every fetch has settled, with outcomes in
// the order the records were given. A failed fetch never stops the others.
func (d *Dispatcher) Dispatch(ctx context.Context, records []facultyfetch.Record, report ReportFunc) []facultyfetch.Outcome {
	outcomes := make([]facultyfetch.Outcome, len(records))

	var mu sync.Mutex
	var g errgroup.Group
	for i, rec := range records {
		g.Go(func() error {
			outcome := d.fetch(ctx, rec)
			outcomes[i] = outcome

			if report != nil {
				mu.Lock()
				report(outcome)
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()

	return outcomes
}

func (d *Dispatcher) fetch(ctx context.Context, rec facultyfetch.Record) facultyfetch.Outcome {
	outcome := facultyfetch.Outcome{Record: rec}

	if d.RateLimiter != nil {
		if err := d.RateLimiter.Wait(ctx, hostOf(rec.URL())); err != nil {
			outcome.Err = err
			return outcome
		}
	}

	body, err := d.Fetcher.Fetch(ctx, rec.URL())
	if err != nil {
		outcome.Err = err
		return outcome
	}
	outcome.Length = facultyfetch.TextLength(body)
	return outcome
}
