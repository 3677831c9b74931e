package runner

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davgit/diagnosticss/pkg/config"
)

func relNames(t *testing.T, dir string, files []string) []string {
	t.Helper()
	var names []string
	for _, f := range files {
		rel, err := filepath.Rel(dir, f)
		require.NoError(t, err)
		names = append(names, filepath.ToSlash(rel))
	}
	return names
}

func TestDiscover_Extensions(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "index.html", "<p>x</p>")
	writeFile(t, dir, "page.htm", "<p>x</p>")
	writeFile(t, dir, "doc.xhtml", "<p>x</p>")
	writeFile(t, dir, "style.css", "p{}")
	writeFile(t, dir, "README.md", "# x")

	files, err := Discover(context.Background(), Options{WorkingDir: dir})
	require.NoError(t, err)
	assert.Equal(t, []string{"doc.xhtml", "index.html", "page.htm"}, relNames(t, dir, files))
}

func TestDiscover_Recursive(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "top.html", "<p>x</p>")
	writeFile(t, dir, "sub/nested.html", "<p>x</p>")
	writeFile(t, dir, "sub/deeper/leaf.html", "<p>x</p>")

	files, err := Discover(context.Background(), Options{WorkingDir: dir})
	require.NoError(t, err)
	assert.Len(t, files, 3)
}

func TestDiscover_SkipsHidden(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "visible.html", "<p>x</p>")
	writeFile(t, dir, ".hidden.html", "<p>x</p>")
	writeFile(t, dir, ".cache/stash.html", "<p>x</p>")

	files, err := Discover(context.Background(), Options{WorkingDir: dir})
	require.NoError(t, err)
	assert.Equal(t, []string{"visible.html"}, relNames(t, dir, files))
}

func TestDiscover_ExcludeGlobs(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "keep.html", "<p>x</p>")
	writeFile(t, dir, "dist/drop.html", "<p>x</p>")
	writeFile(t, dir, "vendor/lib/drop.html", "<p>x</p>")

	files, err := Discover(context.Background(), Options{
		WorkingDir:   dir,
		ExcludeGlobs: []string{"dist/**", "vendor/**"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"keep.html"}, relNames(t, dir, files))
}

func TestDiscover_ConfigIgnoreMerged(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "keep.html", "<p>x</p>")
	writeFile(t, dir, "build/drop.html", "<p>x</p>")

	cfg := config.NewConfig()
	cfg.Ignore = []string{"build/**"}

	files, err := Discover(context.Background(), Options{WorkingDir: dir, Config: cfg})
	require.NoError(t, err)
	assert.Equal(t, []string{"keep.html"}, relNames(t, dir, files))
}

func TestDiscover_IncludeGlobs(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "docs/a.html", "<p>x</p>")
	writeFile(t, dir, "other/b.html", "<p>x</p>")

	files, err := Discover(context.Background(), Options{
		WorkingDir:   dir,
		IncludeGlobs: []string{"docs/**"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"docs/a.html"}, relNames(t, dir, files))
}

func TestDiscover_ExplicitFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "page.html", "<p>x</p>")

	files, err := Discover(context.Background(), Options{
		WorkingDir: dir,
		Paths:      []string{path},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{path}, files)
}

func TestDiscover_ExplicitFileWrongExtension(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "fragment.tpl", "<!DOCTYPE html><html><body></body></html>")

	// Without sniffing, the extension decides.
	files, err := Discover(context.Background(), Options{
		WorkingDir: dir,
		Paths:      []string{path},
	})
	require.NoError(t, err)
	assert.Empty(t, files)

	// With sniffing, content decides.
	files, err = Discover(context.Background(), Options{
		WorkingDir:   dir,
		Paths:        []string{path},
		SniffContent: true,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{path}, files)
}

func TestDiscover_MissingPath(t *testing.T) {
	_, err := Discover(context.Background(), Options{
		WorkingDir: t.TempDir(),
		Paths:      []string{"no-such-file.html"},
	})
	assert.Error(t, err)
}

func TestDiscover_Deduplicates(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "page.html", "<p>x</p>")

	files, err := Discover(context.Background(), Options{
		WorkingDir: dir,
		Paths:      []string{path, path, "."},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{path}, files)
}

func TestMatchGlob(t *testing.T) {
	tests := []struct {
		path    string
		pattern string
		want    bool
	}{
		{"a.html", "*.html", true},
		{"sub/a.html", "*.html", true}, // filename fallback
		{"dist/a.html", "dist/**", true},
		{"dist/sub/a.html", "dist/**", true},
		{"src/a.html", "dist/**", false},
		{"node_modules/x/a.html", "**/node_modules/**", true},
		{"a/vendor/b.html", "**/vendor/**", true},
		{"vendor/b.html", "**/vendor/**", true},
		{"deep/nested/out", "**/out", true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, matchGlob(tt.path, tt.pattern),
			"path=%s pattern=%s", tt.path, tt.pattern)
	}
}
