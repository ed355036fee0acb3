package config

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchNotices_ReloadsOnWrite(t *testing.T) {
	path := writeConfigFile(t, "notices:\n  pending: old\n")
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var mu sync.Mutex
	var got map[string]string
	require.NoError(t, WatchNotices(ctx, path, func(notices map[string]string) {
		mu.Lock()
		defer mu.Unlock()
		got = notices
	}))

	require.NoError(t, os.WriteFile(path, []byte("notices:\n  pending: new\n"), 0o644))

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return got["pending"] == "new"
	}, 2*time.Second, 20*time.Millisecond)
}

func TestWatchNotices_MissingDirectory(t *testing.T) {
	err := WatchNotices(context.Background(), "/nonexistent/dir/config.yaml", func(map[string]string) {})

	assert.Error(t, err)
}
