package common

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig("")

	require.NoError(t, err)
	assert.Equal(t, "vocab.db", cfg.DatabasePath)
	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, "data/source/verbs.csv", cfg.SourcePath("verb"))
	assert.Equal(t, "data/normalized/indeclinables.csv", cfg.NormalizedPath("indeclinable"))
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("VOCAB_DB_PATH", "/tmp/override.db")
	t.Setenv("VOCAB_SOURCE_DIR", "")

	cfg, err := LoadConfig("")

	require.NoError(t, err)
	assert.Equal(t, "/tmp/override.db", cfg.DatabasePath)
	assert.Equal(t, "data/source", cfg.SourceDir, "empty env keeps the default")
}

func TestLoadConfig_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "database_path: from-yaml.db\nsource_dir: exports/raw\nadmin_secret: hunter2\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, "from-yaml.db", cfg.DatabasePath)
	assert.Equal(t, "exports/raw", cfg.SourceDir)
	assert.Equal(t, "hunter2", cfg.AdminSecret)
	assert.Equal(t, ":8080", cfg.ListenAddr, "unset keys keep defaults")
}

func TestLoadConfig_MissingFileErrors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	assert.Error(t, err)
}
