package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTOMLLoader_Load(t *testing.T) {
	t.Run("missing optional config yields defaults", func(t *testing.T) {
		dir := t.TempDir()
		cwd, err := os.Getwd()
		require.NoError(t, err)
		require.NoError(t, os.Chdir(dir))
		defer func() { _ = os.Chdir(cwd) }()

		cfg, err := NewTOMLLoader().Load(context.Background(), "")
		require.NoError(t, err)
		assert.Equal(t, "localhost", cfg.Server.Host)
		assert.Equal(t, 8420, cfg.Server.Port)
		assert.Equal(t, "auto", cfg.Generator.DefaultTheme)
		assert.Equal(t, "slidesmith", cfg.Generator.Creator)
	})

	t.Run("explicit missing path errors", func(t *testing.T) {
		_, err := NewTOMLLoader().Load(context.Background(), "/no/such/slidesmith.toml")
		assert.Error(t, err)
	})

	t.Run("file values merge over defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "slidesmith.toml")
		require.NoError(t, os.WriteFile(path, []byte(`
[server]
port = 9999

[generator]
default_theme = "ocean"
`), 0644))

		cfg, err := NewTOMLLoader().Load(context.Background(), path)
		require.NoError(t, err)
		assert.Equal(t, 9999, cfg.Server.Port)
		assert.Equal(t, "ocean", cfg.Generator.DefaultTheme)
		// Unset fields keep defaults.
		assert.Equal(t, "localhost", cfg.Server.Host)
		assert.Equal(t, "slidesmith", cfg.Generator.Creator)
	})

	t.Run("invalid TOML errors", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "slidesmith.toml")
		require.NoError(t, os.WriteFile(path, []byte("not [valid"), 0644))

		_, err := NewTOMLLoader().Load(context.Background(), path)
		assert.Error(t, err)
	})

	t.Run("invalid values rejected", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "slidesmith.toml")
		require.NoError(t, os.WriteFile(path, []byte(`
[logging]
level = "loud"
`), 0644))

		_, err := NewTOMLLoader().Load(context.Background(), path)
		assert.ErrorContains(t, err, "invalid config")
	})
}

func TestTOMLLoader_WriteDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "slidesmith.toml")
	loader := NewTOMLLoader()

	require.NoError(t, loader.WriteDefaults(context.Background(), path))

	cfg, err := loader.Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, GetDefaultConfig().Server.Port, cfg.Server.Port)
}

func TestMerge(t *testing.T) {
	t.Run("later non-zero values win", func(t *testing.T) {
		base := GetDefaultConfig()
		over := GetDefaultConfig()
		over.Server.Port = 1234
		over.Generator.DefaultTheme = "mono"

		merged := Merge(base, over)
		assert.Equal(t, 1234, merged.Server.Port)
		assert.Equal(t, "mono", merged.Generator.DefaultTheme)
	})

	t.Run("nil overlays are skipped", func(t *testing.T) {
		base := GetDefaultConfig()
		merged := Merge(base, nil)
		assert.Equal(t, base.Server.Port, merged.Server.Port)
	})

	t.Run("merge does not mutate inputs", func(t *testing.T) {
		base := GetDefaultConfig()
		basePort := base.Server.Port
		over := GetDefaultConfig()
		over.Server.Port = 7777

		_ = Merge(base, over)
		assert.Equal(t, basePort, base.Server.Port)
	})

	t.Run("no configs yields defaults", func(t *testing.T) {
		merged := Merge()
		assert.Equal(t, GetDefaultConfig().Server.Host, merged.Server.Host)
	})
}
