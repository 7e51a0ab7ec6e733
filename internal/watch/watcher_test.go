package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcher_ReportsWrites(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := t.TempDir()
	watched := filepath.Join(dir, "engine.txt")
	other := filepath.Join(dir, "other.txt")
	require.NoError(t, os.WriteFile(watched, []byte("467..114.."), 0644))
	require.NoError(t, os.WriteFile(other, []byte("..."), 0644))

	w, err := New([]string{watched}, 20*time.Millisecond)
	require.NoError(t, err)
	require.NoError(t, w.Start())
	t.Cleanup(w.Stop)

	// --- Act ---
	require.NoError(t, os.WriteFile(other, []byte("...*"), 0644))
	require.NoError(t, os.WriteFile(watched, []byte("467..114..\n...*......"), 0644))

	// --- Assert ---
	select {
	case changed := <-w.Changes:
		abs, err := filepath.Abs(watched)
		require.NoError(t, err)
		assert.Equal(t, abs, changed)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for change notification")
	}
}

func TestWatcher_StopClosesChanges(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	w, err := New([]string{filepath.Join(dir, "engine.txt")}, 0)
	require.NoError(t, err)
	require.NoError(t, w.Start())

	w.Stop()

	_, ok := <-w.Changes
	assert.False(t, ok)
}

func TestWatcher_StartFailsForMissingDirectory(t *testing.T) {
	t.Parallel()

	w, err := New([]string{filepath.Join(t.TempDir(), "missing", "engine.txt")}, 0)
	require.NoError(t, err)
	t.Cleanup(func() { w.watcher.Close() })

	err = w.Start()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to watch")
}
