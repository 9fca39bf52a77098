package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
debug: true
kb_path: /tmp/rules.db
generator:
  pool: [P, Q]
  max_depth: 5
  seed: 42
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.Debug)
	assert.Equal(t, "/tmp/rules.db", cfg.KBPath)
	assert.Equal(t, []string{"P", "Q"}, cfg.Generator.Pool)
	assert.Equal(t, 5, cfg.Generator.MaxDepth)
	assert.Equal(t, int64(42), cfg.Generator.Seed)
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("debug: true\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.Debug)
	assert.Equal(t, Default().KBPath, cfg.KBPath)
	assert.Equal(t, Default().Generator, cfg.Generator)
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("kb_path: [oops\n"), 0o600))
	_, err := Load(path)
	assert.Error(t, err)
}
