package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/entrhq/trail/pkg/types"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 150, cfg.MaxEntries[types.CategoryFiles])
	assert.Equal(t, 50, cfg.MaxEntries[types.CategoryDirectories])
	assert.Equal(t, 50, cfg.MaxEntries[types.CategoryProjects])
	assert.Equal(t, 200, cfg.MaxEntries[types.CategoryRemoteFiles])
	assert.Equal(t, 50, cfg.MaxEntries[types.CategoryRemoteDirectories])
	assert.Equal(t, 50, cfg.MaxEntries[types.CategoryRemoteProjects])

	assert.Equal(t, os.FileMode(0666), cfg.StoreMode)
	assert.NotEmpty(t, cfg.StorePath)
	assert.Contains(t, cfg.VCMarkers, ".git")
	assert.NotEmpty(t, cfg.IgnorePatterns)
	assert.NotEmpty(t, cfg.RemotePatterns)

	require.NoError(t, cfg.Validate())
}

func TestMaxFor(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 150, cfg.MaxFor(types.CategoryFiles))

	cfg.MaxEntries[types.CategoryFiles] = 7
	assert.Equal(t, 7, cfg.MaxFor(types.CategoryFiles))

	// Missing entries fall back to the stock defaults.
	delete(cfg.MaxEntries, types.CategoryRemoteFiles)
	assert.Equal(t, DefaultMaxRemoteFiles, cfg.MaxFor(types.CategoryRemoteFiles))
	delete(cfg.MaxEntries, types.CategoryProjects)
	assert.Equal(t, DefaultMaxDirectories, cfg.MaxFor(types.CategoryProjects))
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.StorePath = ""
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.MaxEntries[types.Category("bookmarks")] = 10
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.MaxEntries[types.CategoryFiles] = -1
	assert.Error(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	t.Run("missing file returns defaults", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.NoError(t, err)
		assert.Equal(t, Default().MaxEntries, cfg.MaxEntries)
	})

	t.Run("overlays file values on defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		content := "" +
			"store_path: /tmp/custom-store.yaml\n" +
			"store_mode: 0o644\n" +
			"max_entries:\n" +
			"  files: 10\n" +
			"vc_markers: [\".git\", \".jj\"]\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0600))

		cfg, err := Load(path)
		require.NoError(t, err)

		assert.Equal(t, "/tmp/custom-store.yaml", cfg.StorePath)
		assert.Equal(t, os.FileMode(0644), cfg.StoreMode)
		assert.Equal(t, 10, cfg.MaxEntries[types.CategoryFiles])
		// Per-category merge: untouched categories keep their defaults.
		assert.Equal(t, 50, cfg.MaxEntries[types.CategoryDirectories])
		// Lists replace wholesale.
		assert.Equal(t, []string{".git", ".jj"}, cfg.VCMarkers)
	})

	t.Run("rejects malformed yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("{{{"), 0600))

		_, err := Load(path)
		assert.Error(t, err)
	})

	t.Run("rejects invalid values", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("max_entries:\n  files: -3\n"), 0600))

		_, err := Load(path)
		assert.Error(t, err)
	})
}
