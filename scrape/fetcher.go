package scrape

import (
	"context"
	"errors"
	"strings"

	"github.com/fwojciec/clinics"
)

// Ensure RoutingFetcher implements clinics.Fetcher at compile time.
var _ clinics.Fetcher = (*RoutingFetcher)(nil)

// RoutingFetcher sends http(s) sources to Web and everything else (file://
// URLs and plain paths) to Files.
type RoutingFetcher struct {
	Web   clinics.Fetcher
	Files clinics.Fetcher
}

// Fetch implements clinics.Fetcher.
func (f *RoutingFetcher) Fetch(ctx context.Context, source string) (string, error) {
	if IsWebSource(source) {
		if f.Web == nil {
			return "", clinics.Errorf(clinics.EINVALID, "no web fetcher configured for %s", source)
		}
		return f.Web.Fetch(ctx, source)
	}
	if f.Files == nil {
		return "", clinics.Errorf(clinics.EINVALID, "no file fetcher configured for %s", source)
	}
	return f.Files.Fetch(ctx, source)
}

// Close closes both underlying fetchers.
func (f *RoutingFetcher) Close() error {
	var errs []error
	if f.Web != nil {
		errs = append(errs, f.Web.Close())
	}
	if f.Files != nil {
		errs = append(errs, f.Files.Close())
	}
	return errors.Join(errs...)
}

// IsWebSource reports whether source is an http or https URL.
func IsWebSource(source string) bool {
	lower := strings.ToLower(source)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}
