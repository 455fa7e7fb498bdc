package snapshot

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestWatcherMatches(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, "a.yaml", "sub/b.yaml")

	w, err := NewWatcher([]string{
		filepath.Join(root, "a.yaml"),
		filepath.Join(root, "sub", "*.yml"),
	}, WithWatchLogger(quietLogger()))
	require.NoError(t, err)
	defer w.Stop()

	assert.True(t, w.Matches(filepath.Join(root, "a.yaml")))
	assert.True(t, w.Matches(filepath.Join(root, "sub", "c.yml")))
	assert.False(t, w.Matches(filepath.Join(root, "sub", "b.yaml")))
	assert.False(t, w.Matches(filepath.Join(root, "other.yaml")))
	assert.Equal(t, []string{root, filepath.Join(root, "sub")}, w.roots)
}

func TestWatcherEmitsBatches(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, "a.yaml")

	w, err := NewWatcher([]string{root},
		WithDebounce(20*time.Millisecond),
		WithWatchLogger(quietLogger()))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, w.Start(ctx))
	defer w.Stop()

	target := filepath.Join(root, "a.yaml")
	require.NoError(t, os.WriteFile(target, []byte("iri: http://example.org/changed\n"), 0644))
	// Non-snapshot files never produce a batch.
	require.NoError(t, os.WriteFile(filepath.Join(root, "notes.txt"), []byte("x"), 0644))

	select {
	case batch := <-w.Batches():
		assert.Equal(t, []string{target}, batch)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for a batch")
	}

	cancel()
	select {
	case _, ok := <-w.Batches():
		for ok {
			_, ok = <-w.Batches()
		}
	case <-time.After(5 * time.Second):
		t.Fatal("batch channel was not closed after cancel")
	}
}

func TestWatcherUnchangedContent(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, "a.yaml")
	path := filepath.Join(root, "a.yaml")

	w, err := NewWatcher([]string{root}, WithWatchLogger(quietLogger()))
	require.NoError(t, err)
	defer w.Stop()

	assert.True(t, w.changed(path), "first sighting counts as a change")
	assert.False(t, w.changed(path), "same content is not a change")

	require.NoError(t, os.WriteFile(path, []byte("iri: http://example.org/y\n"), 0644))
	assert.True(t, w.changed(path))

	require.NoError(t, os.Remove(path))
	assert.True(t, w.changed(path), "removal is a change")
}

func TestNewWatcherMissingPath(t *testing.T) {
	_, err := NewWatcher([]string{filepath.Join(t.TempDir(), "missing.yaml")})
	assert.Error(t, err)
}
