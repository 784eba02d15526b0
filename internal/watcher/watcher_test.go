package watcher

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileWatcherDebounces(t *testing.T) {
	dir := t.TempDir()
	watched := filepath.Join(dir, "a.yaml")
	other := filepath.Join(dir, "b.yaml")
	require.NoError(t, os.WriteFile(watched, []byte("x"), 0o644))

	fw, err := NewFileWatcher(50*time.Millisecond, nil)
	require.NoError(t, err)
	defer fw.Close()
	require.NoError(t, fw.AddFile(watched))
	require.NoError(t, fw.AddFile(watched))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	changes := make(chan []string, 4)
	done := make(chan error, 1)
	go func() {
		done <- fw.Run(ctx, func(_ context.Context, paths []string) error {
			changes <- paths
			return nil
		})
	}()

	// Give the watcher loop a moment to start selecting.
	time.Sleep(20 * time.Millisecond)
	for i := 0; i < 3; i++ {
		require.NoError(t, os.WriteFile(watched, []byte{byte('a' + i)}, 0o644))
	}
	require.NoError(t, os.WriteFile(other, []byte("ignored"), 0o644))

	select {
	case paths := <-changes:
		abs, _ := filepath.Abs(watched)
		assert.Equal(t, []string{abs}, paths)
	case <-time.After(5 * time.Second):
		t.Fatal("no change delivered")
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop")
	}
}

func TestAddFileMissingDirectory(t *testing.T) {
	fw, err := NewFileWatcher(time.Millisecond, nil)
	require.NoError(t, err)
	defer fw.Close()
	assert.Error(t, fw.AddFile(filepath.Join(t.TempDir(), "nope", "a.yaml")))
}
