package ingest

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcherCoalescesRapidWrites(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, errs, err := StartWatcher(ctx, WatchConfig{
		Roots:    []string{dir},
		Debounce: 20 * time.Millisecond,
	})
	require.NoError(t, err)

	// a burst of writes to the same file while the debounce timer keeps
	// resetting must surface as one settled event, not one per write
	path := filepath.Join(dir, "drop.pdf")
	for i := 0; i < 10; i++ {
		require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))
	}

	select {
	case p := <-events:
		assert.Equal(t, path, p)
	case err := <-errs:
		t.Fatalf("watcher error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("no event before timeout")
	}
}
