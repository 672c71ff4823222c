package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runWatcher(t *testing.T, w *Watcher) (<-chan struct{}, context.CancelFunc) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	rebuilt := make(chan struct{}, 16)
	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx, func(context.Context) error {
			rebuilt <- struct{}{}
			return nil
		})
	}()
	t.Cleanup(func() {
		cancel()
		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(2 * time.Second):
			t.Error("watcher did not stop")
		}
	})
	return rebuilt, cancel
}

func waitRebuild(t *testing.T, rebuilt <-chan struct{}) {
	t.Helper()
	select {
	case <-rebuilt:
	case <-time.After(5 * time.Second):
		t.Fatal("no rebuild after change")
	}
}

func TestRebuildOnFileChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "projectsData.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"pages":[]}`), 0o644))

	w, err := New([]string{path}, 20*time.Millisecond, nil)
	require.NoError(t, err)
	rebuilt, _ := runWatcher(t, w)

	require.NoError(t, os.WriteFile(path, []byte(`{"pages":[{"page":"a","data":[]}]}`), 0o644))
	waitRebuild(t, rebuilt)
}

func TestRebuildOnNewFileInDirectory(t *testing.T) {
	dir := t.TempDir()
	static := filepath.Join(dir, "static")
	require.NoError(t, os.MkdirAll(static, 0o755))

	w, err := New([]string{static}, 20*time.Millisecond, nil)
	require.NoError(t, err)
	rebuilt, _ := runWatcher(t, w)

	require.NoError(t, os.WriteFile(filepath.Join(static, "logo.svg"), []byte("<svg/>"), 0o644))
	waitRebuild(t, rebuilt)
}

func TestIgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "header.md")
	require.NoError(t, os.WriteFile(path, []byte("# Hi"), 0o644))

	w, err := New([]string{path}, 20*time.Millisecond, nil)
	require.NoError(t, err)
	rebuilt, _ := runWatcher(t, w)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0o644))
	select {
	case <-rebuilt:
		t.Fatal("unrelated file triggered a rebuild")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestBurstRebuildsOnce(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "projectsData.json")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0o644))

	var calls atomic.Int32
	w, err := New([]string{path}, 300*time.Millisecond, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = w.Run(ctx, func(context.Context) error {
			calls.Add(1)
			return nil
		})
	}()

	// Let the watcher start before writing.
	time.Sleep(50 * time.Millisecond)
	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(path, []byte("{}"), 0o644))
	}
	time.Sleep(time.Second)
	cancel()
	<-done

	assert.EqualValues(t, 1, calls.Load())
}

func TestNewIgnoresMissingAndRemotePaths(t *testing.T) {
	w, err := New([]string{"", "https://example.com/data.json", filepath.Join(t.TempDir(), "missing")}, 0, nil)
	require.NoError(t, err)
	assert.Empty(t, w.files)
	assert.Empty(t, w.dirs)
	assert.Equal(t, DefaultDebounce, w.debounce)
	require.NoError(t, w.fsw.Close())
}
