package fs

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/clinics"
)

// Ensure HTMLStore implements clinics.HTMLStore at compile time.
var _ clinics.HTMLStore = (*HTMLStore)(nil)

// SourceToPath converts a source into a relative snapshot path.
// Example: https://jfir.jp/eat-facilities-2/ → jfir.jp/eat-facilities-2/index.html
// A query string adds a hash suffix to the file name, and local files are
// kept under local/<hash of the absolute path>/ so distinct sources never
// share a path.
func SourceToPath(source string) (string, error) {
	u, err := url.Parse(source)
	if err != nil {
		return "", clinics.Errorf(clinics.EINVALID, "invalid source %q: %v", source, err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		local, err := LocalPath(source)
		if err != nil {
			return "", err
		}
		if abs, err := filepath.Abs(local); err == nil {
			local = abs
		}
		return path.Join("local", shortHash(local), filepath.Base(local)), nil
	}

	if strings.Contains(u.Path, "..") {
		return "", clinics.Errorf(clinics.EINVALID, "path traversal in source %q", source)
	}

	p := strings.TrimPrefix(u.Path, "/")
	switch {
	case p == "":
		p = "index.html"
	case strings.HasSuffix(p, "/"):
		p += "index.html"
	case path.Ext(p) == "":
		p += ".html"
	}

	if u.RawQuery != "" {
		ext := path.Ext(p)
		p = strings.TrimSuffix(p, ext) + "-" + shortHash(u.RawQuery) + ext
	}

	return path.Join(u.Host, p), nil
}

func shortHash(s string) string {
	return fmt.Sprintf("%08x", xxhash.Sum64String(s)>>32)
}

// HTMLStore saves raw HTML snapshots under baseDir/name.
// Saved files are staged in a temporary directory next to it and only moved
// into place on Commit. Files in baseDir/name that the store did not save
// are never touched.
type HTMLStore struct {
	baseDir string
	name    string

	mu      sync.Mutex
	staging string
	saved   map[string]struct{}
}

// NewHTMLStore creates a new HTMLStore.
func NewHTMLStore(baseDir, name string) *HTMLStore {
	return &HTMLStore{
		baseDir: baseDir,
		name:    name,
		saved:   make(map[string]struct{}),
	}
}

func (s *HTMLStore) finalDir() string {
	return filepath.Join(s.baseDir, s.name)
}

// stagingDir creates the temporary directory on first use.
func (s *HTMLStore) stagingDir() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.staging == "" {
		if err := os.MkdirAll(s.baseDir, 0755); err != nil {
			return "", err
		}
		dir, err := os.MkdirTemp(s.baseDir, "."+s.name+".tmp-*")
		if err != nil {
			return "", err
		}
		s.staging = dir
	}
	return s.staging, nil
}

// Save writes the HTML of one source to the staging directory.
// Safe for concurrent use.
func (s *HTMLStore) Save(ctx context.Context, source string, html string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	relPath, err := SourceToPath(source)
	if err != nil {
		return err
	}

	dir, err := s.stagingDir()
	if err != nil {
		return err
	}
	fullPath := filepath.Join(dir, filepath.FromSlash(relPath))

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}
	if err := os.WriteFile(fullPath, []byte(html), 0644); err != nil {
		return err
	}

	s.mu.Lock()
	s.saved[relPath] = struct{}{}
	s.mu.Unlock()
	return nil
}

// Commit moves every saved file into the snapshot directory, replacing
// earlier snapshots of the same sources.
func (s *HTMLStore) Commit() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.staging == "" {
		return nil
	}

	for relPath := range s.saved {
		src := filepath.Join(s.staging, filepath.FromSlash(relPath))
		dst := filepath.Join(s.finalDir(), filepath.FromSlash(relPath))
		if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
			return err
		}
		if err := os.Rename(src, dst); err != nil {
			return err
		}
	}

	return s.reset()
}

// Abort discards the saved files.
func (s *HTMLStore) Abort() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.staging == "" {
		return nil
	}
	return s.reset()
}

// reset removes the staging directory. Callers hold s.mu.
func (s *HTMLStore) reset() error {
	err := os.RemoveAll(s.staging)
	s.staging = ""
	s.saved = make(map[string]struct{})
	return err
}
