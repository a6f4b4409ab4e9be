package clinics

import "context"

// Fetcher retrieves the raw HTML of a source.
// A source is an http(s) URL, a file:// URL or a local file path, depending
// on the implementation.
type Fetcher interface {
	// Fetch returns the document HTML decoded to UTF-8.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, source string) (html string, err error)

	// Close releases resources held by the fetcher.
	Close() error
}

// DomainLimiter controls request rate per domain.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}
