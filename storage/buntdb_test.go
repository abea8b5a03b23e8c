package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plotkit/plotkit/core"
)

func TestBuntStorage(t *testing.T) {
	store, err := FromMemory()
	require.NoError(t, err)
	defer store.Close()

	cfg := core.DefaultConfig()
	cfg.Title = "house style"
	cfg.DPI = 300

	t.Run("save and load", func(t *testing.T) {
		require.NoError(t, store.SaveConfig("house", cfg))

		loaded, err := store.LoadConfig("house")
		require.NoError(t, err)
		assert.Equal(t, cfg, loaded)
	})

	t.Run("overwrite", func(t *testing.T) {
		changed := cfg.Clone()
		changed.DPI = 72
		require.NoError(t, store.SaveConfig("house", changed))

		loaded, err := store.LoadConfig("house")
		require.NoError(t, err)
		assert.Equal(t, 72, loaded.DPI)
	})

	t.Run("list", func(t *testing.T) {
		require.NoError(t, store.SaveConfig("draft", cfg))

		names, err := store.ListConfigs()
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"house", "draft"}, names)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, store.DeleteConfig("draft"))

		_, err := store.LoadConfig("draft")
		assert.ErrorIs(t, err, core.ErrNotFound)
	})

	t.Run("missing", func(t *testing.T) {
		_, err := store.LoadConfig("nope")
		assert.ErrorIs(t, err, core.ErrNotFound)

		assert.ErrorIs(t, store.DeleteConfig("nope"), core.ErrNotFound)
	})
}

func TestBuntStorageFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "configs.db")

	store, err := FromFile(path)
	require.NoError(t, err)

	cfg := core.DefaultConfig()
	require.NoError(t, store.SaveConfig("persisted", cfg))
	require.NoError(t, store.Close())

	reopened, err := FromFile(path)
	require.NoError(t, err)
	defer reopened.Close()

	loaded, err := reopened.LoadConfig("persisted")
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
