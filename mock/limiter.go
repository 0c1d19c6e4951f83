package mock

import (
	"context"

	"github.com/fwojciec/facultyfetch"
)

var _ facultyfetch.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of facultyfetch.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return l.WaitFn(ctx, domain)
}
