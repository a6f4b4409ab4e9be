// Package scrape runs the fetch and parse pipeline over a list of sources.
// Records come back in source order, then block order, regardless of how
// many sources are fetched at once.
package scrape

import (
	"context"
	"fmt"
	"net/url"
	"slices"
	"sync"

	"github.com/fwojciec/clinics"
	"golang.org/x/sync/errgroup"
)

// Scraper fetches each source, parses it, and concatenates the records.
// Any fetch or parse failure aborts the whole run.
type Scraper struct {
	Fetcher     clinics.Fetcher
	Parser      clinics.Parser
	RateLimiter clinics.DomainLimiter // optional
	Store       clinics.HTMLStore     // optional
	Concurrency int
}

// ProgressEvent reports that one source has been processed.
type ProgressEvent struct {
	Source    string
	Records   int
	Completed int
	Total     int
	Error     error
}

// ProgressFunc is a callback for reporting scrape progress. Scrape never
// calls it concurrently, and Completed increases by one per call.
type ProgressFunc func(event ProgressEvent)

// Scrape processes all sources and returns their records.
// When Store is set, fetched HTML is saved and committed only if every
// source succeeds; otherwise the snapshots are discarded.
func (s *Scraper) Scrape(ctx context.Context, sources []string, progress ProgressFunc) (records []clinics.Record, err error) {
	if len(sources) == 0 {
		return nil, clinics.Errorf(clinics.EINVALID, "no sources to scrape")
	}

	if s.Store != nil {
		defer func() {
			if err != nil {
				_ = s.Store.Abort()
				return
			}
			if cerr := s.Store.Commit(); cerr != nil {
				records, err = nil, fmt.Errorf("committing HTML snapshots: %w", cerr)
			}
		}()
	}

	concurrency := s.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}

	// One slot per source keeps concatenation in source order.
	results := make([][]clinics.Record, len(sources))
	var (
		mu        sync.Mutex
		completed int
	)
	report := func(source string, n int, err error) {
		if progress == nil {
			return
		}
		mu.Lock()
		defer mu.Unlock()
		completed++
		progress(ProgressEvent{
			Source:    source,
			Records:   n,
			Completed: completed,
			Total:     len(sources),
			Error:     err,
		})
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, source := range sources {
		g.Go(func() error {
			// Sources queued behind a failure are never started.
			if err := gctx.Err(); err != nil {
				return err
			}
			recs, err := s.scrapeSource(gctx, source)
			report(source, len(recs), err)
			if err != nil {
				return err
			}
			results[i] = recs
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return slices.Concat(results...), nil
}

func (s *Scraper) scrapeSource(ctx context.Context, source string) ([]clinics.Record, error) {
	if s.RateLimiter != nil {
		if host := hostOf(source); host != "" {
			if err := s.RateLimiter.Wait(ctx, host); err != nil {
				return nil, err
			}
		}
	}

	html, err := s.Fetcher.Fetch(ctx, source)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", source, err)
	}

	if s.Store != nil {
		if err := s.Store.Save(ctx, source, html); err != nil {
			return nil, fmt.Errorf("saving HTML for %s: %w", source, err)
		}
	}

	records, err := s.Parser.Parse(source, html)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", source, err)
	}
	return records, nil
}

// hostOf returns the host of an http(s) source, or "" for local files.
func hostOf(source string) string {
	u, err := url.Parse(source)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return ""
	}
	return u.Host
}
