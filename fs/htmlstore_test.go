package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fwojciec/clinics/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourceToPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		source  string
		want    string
		wantErr bool
	}{
		{name: "trailing slash becomes index", source: "https://jfir.jp/eat-facilities-2/", want: "jfir.jp/eat-facilities-2/index.html"},
		{name: "root path becomes index", source: "https://jfir.jp/", want: "jfir.jp/index.html"},
		{name: "root without slash", source: "https://jfir.jp", want: "jfir.jp/index.html"},
		{name: "no extension gets html", source: "https://example.com/list", want: "example.com/list.html"},
		{name: "keeps existing extension", source: "https://example.com/list.php", want: "example.com/list.php"},
		{name: "rejects path traversal", source: "https://example.com/../../etc/passwd", wantErr: true},
		{name: "rejects file URL with host", source: "file://pages/list.html", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := fs.SourceToPath(tt.source)

			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSourceToPath_DistinctSources(t *testing.T) {
	t.Parallel()

	t.Run("query strings get distinct names", func(t *testing.T) {
		t.Parallel()

		page1, err := fs.SourceToPath("https://jfir.jp/eat?page=1")
		require.NoError(t, err)
		page2, err := fs.SourceToPath("https://jfir.jp/eat?page=2")
		require.NoError(t, err)

		assert.NotEqual(t, page1, page2)
		for _, p := range []string{page1, page2} {
			assert.True(t, strings.HasPrefix(p, "jfir.jp/eat-"), p)
			assert.True(t, strings.HasSuffix(p, ".html"), p)
		}
	})

	t.Run("local files with the same name get distinct dirs", func(t *testing.T) {
		t.Parallel()

		osaka, err := fs.SourceToPath("/data/osaka/list.html")
		require.NoError(t, err)
		tokyo, err := fs.SourceToPath("/data/tokyo/list.html")
		require.NoError(t, err)

		assert.NotEqual(t, osaka, tokyo)
		for _, p := range []string{osaka, tokyo} {
			assert.True(t, strings.HasPrefix(p, "local/"), p)
			assert.True(t, strings.HasSuffix(p, "/list.html"), p)
		}
	})

	t.Run("same file by path and URL maps to one place", func(t *testing.T) {
		t.Parallel()

		byPath, err := fs.SourceToPath("/data/osaka/list.html")
		require.NoError(t, err)
		byURL, err := fs.SourceToPath("file:///data/osaka/list.html")
		require.NoError(t, err)

		assert.Equal(t, byPath, byURL)
	})
}

func TestHTMLStore_SaveAndCommit(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	store := fs.NewHTMLStore(base, "html")

	require.NoError(t, store.Save(context.Background(), "https://jfir.jp/eat-facilities/", "<dl></dl>"))
	require.NoError(t, store.Save(context.Background(), "https://jfir.jp/eat-facilities-2/", "<dl>2</dl>"))

	// Nothing visible before commit.
	_, err := os.Stat(filepath.Join(base, "html"))
	assert.True(t, os.IsNotExist(err))

	require.NoError(t, store.Commit())

	content, err := os.ReadFile(filepath.Join(base, "html", "jfir.jp", "eat-facilities-2", "index.html"))
	require.NoError(t, err)
	assert.Equal(t, "<dl>2</dl>", string(content))

	entries, err := os.ReadDir(base)
	require.NoError(t, err)
	require.Len(t, entries, 1, "staging directory should be removed after commit")
	assert.Equal(t, "html", entries[0].Name())
}

func TestHTMLStore_CommitKeepsUnrelatedFiles(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	precious := filepath.Join(base, "docs", "precious.txt")
	previous := filepath.Join(base, "docs", "example.com", "new.html")
	require.NoError(t, os.MkdirAll(filepath.Dir(previous), 0755))
	require.NoError(t, os.WriteFile(precious, []byte("keep me"), 0644))
	require.NoError(t, os.WriteFile(previous, []byte("old"), 0644))

	store := fs.NewHTMLStore(base, "docs")
	require.NoError(t, store.Save(context.Background(), "https://example.com/new", "new"))
	require.NoError(t, store.Commit())

	content, err := os.ReadFile(precious)
	require.NoError(t, err)
	assert.Equal(t, "keep me", string(content))

	content, err = os.ReadFile(previous)
	require.NoError(t, err)
	assert.Equal(t, "new", string(content))
}

func TestHTMLStore_SaveSameSourceTwice(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	store := fs.NewHTMLStore(base, "html")
	require.NoError(t, store.Save(context.Background(), "https://example.com/a", "first"))
	require.NoError(t, store.Save(context.Background(), "https://example.com/a", "second"))

	require.NoError(t, store.Commit())

	content, err := os.ReadFile(filepath.Join(base, "html", "example.com", "a.html"))
	require.NoError(t, err)
	assert.Equal(t, "second", string(content))
}

func TestHTMLStore_Abort(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	store := fs.NewHTMLStore(base, "html")
	require.NoError(t, store.Save(context.Background(), "https://example.com/a", "a"))

	require.NoError(t, store.Abort())

	entries, err := os.ReadDir(base)
	require.NoError(t, err)
	assert.Empty(t, entries, "staging and final directories should not exist after abort")
}

func TestHTMLStore_CommitWithoutSaves(t *testing.T) {
	t.Parallel()

	base := t.TempDir()

	require.NoError(t, fs.NewHTMLStore(base, "html").Commit())

	entries, err := os.ReadDir(base)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
