package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "absdatabase.sqlite", cfg.Catalog.Path)
	assert.Equal(t, "rw", cfg.Catalog.Mode)
	assert.Equal(t, 5000, cfg.Catalog.BusyTimeoutMillis)
	assert.Equal(t, 5, cfg.Catalog.Retries)
	assert.Equal(t, "books", cfg.Sync.Library)
	assert.False(t, cfg.Sync.StrictTitleMatch)
	require.Len(t, cfg.Sync.Collections, 1)
	assert.Equal(t, "NY Times Best Sellers", cfg.Sync.Collections[0].Name)
	assert.Len(t, cfg.Sync.Collections[0].Lists, 16)
	assert.Equal(t, "https://api.nytimes.com/svc/books/v3/lists/overview.json", cfg.Source.Endpoint)
	assert.Equal(t, 5, cfg.Source.RequestsPerMinute)
	assert.False(t, cfg.Storage.Enabled)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadConfig_Environment(t *testing.T) {
	t.Setenv("CATALOG_PATH", "/data/absdatabase.sqlite")
	t.Setenv("SYNC_LIBRARY", "Audiobooks")
	t.Setenv("SYNC_STRICT_TITLE_MATCH", "true")
	t.Setenv("NYT_API_KEY", "from-nyt-var")
	t.Setenv("STORAGE_ENABLED", "true")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "/data/absdatabase.sqlite", cfg.Catalog.Path)
	assert.Equal(t, "Audiobooks", cfg.Sync.Library)
	assert.True(t, cfg.Sync.StrictTitleMatch)
	assert.Equal(t, "from-nyt-var", cfg.Source.APIKey)
	assert.True(t, cfg.Storage.Enabled)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".env", "SOURCE_API_KEY=dotenv-key\nLOG_LEVEL=debug\n")
	t.Cleanup(func() {
		os.Unsetenv("SOURCE_API_KEY")
		os.Unsetenv("LOG_LEVEL")
	})

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "dotenv-key", cfg.Source.APIKey)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadConfig_File(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "config.yaml", `
catalog:
  path: /srv/abs/absdatabase.sqlite
  mode: ro
sync:
  library: podcasts
  collections:
    - name: NYT Fiction
      lists: [hardcover-fiction, trade-fiction-paperback]
    - name: NYT Nonfiction
      lists:
        - hardcover-nonfiction
`)

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "/srv/abs/absdatabase.sqlite", cfg.Catalog.Path)
	assert.Equal(t, "ro", cfg.Catalog.Mode)
	assert.Equal(t, "podcasts", cfg.Sync.Library)
	require.Len(t, cfg.Sync.Collections, 2)
	assert.Equal(t, "NYT Fiction", cfg.Sync.Collections[0].Name)
	assert.Equal(t, []string{"hardcover-fiction", "trade-fiction-paperback"}, cfg.Sync.Collections[0].Lists)
	assert.Equal(t, []string{"hardcover-nonfiction"}, cfg.Sync.Collections[1].Lists)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := map[string]string{
		"BadMode":       "catalog:\n  mode: wal\n",
		"EmptyLibrary":  "sync:\n  library: \" \"\n",
		"UnnamedGroup":  "sync:\n  collections:\n    - lists: [a]\n",
		"DuplicateName": "sync:\n  collections:\n    - name: A\n    - name: A\n",
		"BrokenYAML":    "sync: [\n",
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()
			writeFile(t, dir, "config.yaml", content)
			_, err := LoadConfig(dir)
			assert.Error(t, err)
		})
	}
}
