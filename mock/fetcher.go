// Package mock provides function-field implementations of the clinics
// interfaces for tests.
package mock

import (
	"context"

	"github.com/fwojciec/clinics"
)

var (
	_ clinics.Fetcher       = (*Fetcher)(nil)
	_ clinics.DomainLimiter = (*DomainLimiter)(nil)
)

// Fetcher is a mock implementation of clinics.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, source string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, source string) (string, error) {
	return f.FetchFn(ctx, source)
}

func (f *Fetcher) Close() error {
	return f.CloseFn()
}

// DomainLimiter is a mock implementation of clinics.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return l.WaitFn(ctx, domain)
}
