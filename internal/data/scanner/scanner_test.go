package scanner

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("{}\n"), 0644))
}

func TestRootsOverrideColonList(t *testing.T) {
	a := t.TempDir()
	b := t.TempDir()
	missing := filepath.Join(t.TempDir(), "gone")

	d := NewSourceDiscovery(a + ":" + b + ":" + missing)
	roots := d.Roots()

	require.Len(t, roots, 2, "missing directories are silently excluded")
	assert.Equal(t, a, roots[0])
	assert.Equal(t, b, roots[1])
}

func TestScanFindsJSONLRecursively(t *testing.T) {
	dir := t.TempDir()
	now := time.Now()

	touch(t, filepath.Join(dir, "top.jsonl"))
	touch(t, filepath.Join(dir, "proj", "session.jsonl"))
	touch(t, filepath.Join(dir, "proj", "deep", "more.jsonl"))
	touch(t, filepath.Join(dir, "proj", "notes.txt"))
	touch(t, filepath.Join(dir, "data.json"))

	files := NewSourceDiscovery(dir).Scan(now)

	assert.Len(t, files, 3)
	for _, f := range files {
		assert.Equal(t, ".jsonl", filepath.Ext(f))
	}
}

func TestScanExcludesHiddenEntries(t *testing.T) {
	dir := t.TempDir()
	now := time.Now()

	touch(t, filepath.Join(dir, "visible.jsonl"))
	touch(t, filepath.Join(dir, ".hidden.jsonl"))
	touch(t, filepath.Join(dir, ".git", "buried.jsonl"))

	files := NewSourceDiscovery(dir).Scan(now)

	require.Len(t, files, 1)
	assert.Equal(t, "visible.jsonl", filepath.Base(files[0]))
}

func TestScanExcludesStaleFiles(t *testing.T) {
	dir := t.TempDir()
	now := time.Now()

	fresh := filepath.Join(dir, "fresh.jsonl")
	stale := filepath.Join(dir, "stale.jsonl")
	touch(t, fresh)
	touch(t, stale)

	old := now.Add(-25 * time.Hour)
	require.NoError(t, os.Chtimes(stale, old, old))

	files := NewSourceDiscovery(dir).Scan(now)

	require.Len(t, files, 1)
	assert.Equal(t, fresh, files[0])
}

func TestScanMissingRoot(t *testing.T) {
	d := NewSourceDiscovery(filepath.Join(t.TempDir(), "nope"))
	assert.Empty(t, d.Scan(time.Now()))
}
