// Package fs provides file-based implementations: reading sources from
// disk, keeping HTML snapshots, and writing output files atomically.
package fs

import (
	"context"
	"errors"
	"net/url"
	"os"
	"strings"

	"github.com/fwojciec/clinics"
)

// Ensure Fetcher implements clinics.Fetcher at compile time.
var _ clinics.Fetcher = (*Fetcher)(nil)

// Fetcher reads HTML from local files. Sources are plain paths or file:// URLs.
// Files are expected to be UTF-8.
type Fetcher struct{}

// NewFetcher creates a new Fetcher.
func NewFetcher() *Fetcher {
	return &Fetcher{}
}

// Fetch reads the file named by source.
// Returns ENOTFOUND if the file does not exist.
func (f *Fetcher) Fetch(ctx context.Context, source string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	path, err := LocalPath(source)
	if err != nil {
		return "", err
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return "", clinics.Errorf(clinics.ENOTFOUND, "source file %q not found", path)
	} else if err != nil {
		return "", err
	}
	return string(data), nil
}

// Close is a no-op.
func (f *Fetcher) Close() error {
	return nil
}

// LocalPath converts a file:// URL or plain path into a filesystem path.
// A file URL must have an empty or localhost host.
func LocalPath(source string) (string, error) {
	if !strings.HasPrefix(source, "file://") {
		return source, nil
	}
	u, err := url.Parse(source)
	if err != nil {
		return "", clinics.Errorf(clinics.EINVALID, "invalid file URL %q: %v", source, err)
	}
	if u.Host != "" && u.Host != "localhost" {
		return "", clinics.Errorf(clinics.EINVALID, "file URL %q names host %q; use file:///path for local files", source, u.Host)
	}
	if u.Path == "" {
		return "", clinics.Errorf(clinics.EINVALID, "file URL %q has no path", source)
	}
	return u.Path, nil
}
