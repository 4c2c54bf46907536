package fsnotify

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchFiresOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("a\n"), 0644))

	w, err := NewWatcher()
	require.NoError(t, err)
	defer w.Stop()

	changes := make(chan string, 8)
	require.NoError(t, w.Watch(path, func(p string) { changes <- p }))

	require.NoError(t, os.WriteFile(path, []byte("a\nb\n"), 0644))

	select {
	case p := <-changes:
		abs, _ := filepath.Abs(path)
		assert.Equal(t, abs, p)
	case <-time.After(3 * time.Second):
		t.Fatal("no change event within 3s")
	}
}

func TestWatchIgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("a\n"), 0644))

	w, err := NewWatcher()
	require.NoError(t, err)
	defer w.Stop()

	changes := make(chan string, 8)
	require.NoError(t, w.Watch(path, func(p string) { changes <- p }))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x\n"), 0644))

	select {
	case p := <-changes:
		t.Fatalf("unexpected event for %s", p)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatchMissingFile(t *testing.T) {
	w, err := NewWatcher()
	require.NoError(t, err)
	defer w.Stop()

	err = w.Watch(filepath.Join(t.TempDir(), "absent.txt"), func(string) {})
	assert.Error(t, err)
}

func TestStopIsIdempotent(t *testing.T) {
	w, err := NewWatcher()
	require.NoError(t, err)
	assert.NoError(t, w.Stop())
	assert.NoError(t, w.Stop())
}
