package theme_test

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rojgarpatra/uikit/pkg/logger"
	"github.com/rojgarpatra/uikit/pkg/theme"
)

func TestFileStore(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		s := theme.NewFileStore(filepath.Join(t.TempDir(), "theme.yaml"))
		_, err := s.Load(ctx)
		assert.ErrorIs(t, err, theme.ErrNotFound)
	})

	t.Run("save then load", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "nested", "theme.yaml")
		s := theme.NewFileStore(path)

		require.NoError(t, s.Save(ctx, theme.Dark))
		got, err := s.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, theme.Dark, got)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "theme: dark")

		entries, err := os.ReadDir(filepath.Dir(path))
		require.NoError(t, err)
		assert.Len(t, entries, 1, "temporary file is cleaned up")
	})

	t.Run("corrupt file", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "theme.yaml")
		require.NoError(t, os.WriteFile(path, []byte("theme: [dark"), 0o644))

		_, err := theme.NewFileStore(path).Load(ctx)
		assert.ErrorIs(t, err, theme.ErrLoadFailed)
	})

	t.Run("empty document", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "theme.yaml")
		require.NoError(t, os.WriteFile(path, []byte("updated_at: 2024-01-01T00:00:00Z\n"), 0o644))

		_, err := theme.NewFileStore(path).Load(ctx)
		assert.ErrorIs(t, err, theme.ErrNotFound)
	})
}

func TestFileStore_Watch(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	path := filepath.Join(t.TempDir(), "theme.yaml")
	s := theme.NewFileStore(path,
		theme.WithWatchDebounce(20*time.Millisecond),
		theme.WithFileLogger(logger.Discard()),
	)

	var (
		mu   sync.Mutex
		seen []theme.Theme
	)
	require.NoError(t, s.Watch(ctx, func(got theme.Theme) {
		mu.Lock()
		defer mu.Unlock()
		seen = append(seen, got)
	}))

	for _, content := range []string{"theme: light\n", "theme: dark\n"} {
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(seen) > 0 && seen[len(seen)-1] == theme.Dark
	}, 2*time.Second, 10*time.Millisecond)

	assert.ErrorIs(t, s.Watch(ctx, nil), theme.ErrNilCallback)
}

func TestManager_FollowFileStore(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	path := filepath.Join(t.TempDir(), "theme.yaml")
	store := theme.NewFileStore(path, theme.WithWatchDebounce(10*time.Millisecond), theme.WithFileLogger(logger.Discard()))
	m, a := newManager(store)

	ok, err := m.Follow(ctx)
	require.NoError(t, err)
	require.True(t, ok)

	other := theme.NewFileStore(path)
	require.NoError(t, other.Save(ctx, theme.Dark))

	assert.Eventually(t, func() bool { return a.last() == theme.Dark }, 2*time.Second, 10*time.Millisecond)
}
