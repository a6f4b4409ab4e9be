// Package slog provides logging decorators for clinics interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/clinics"
)

// Ensure LoggingFetcher implements clinics.Fetcher.
var _ clinics.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with logging.
type LoggingFetcher struct {
	next   clinics.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next clinics.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch logs the source being fetched and delegates to the wrapped fetcher.
func (f *LoggingFetcher) Fetch(ctx context.Context, source string) (html string, err error) {
	defer func(begin time.Time) {
		f.logger.Info("fetch",
			"source", source,
			"bytes", len(html),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, source)
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}
