package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "stdio", cfg.Transport.Mode)
	require.Equal(t, "memory", cfg.Storage.Backend)
	require.Equal(t, ":memory:", cfg.Storage.Path)
	require.True(t, cfg.Latency.Enabled)
	require.True(t, cfg.Seed.Enabled)
	require.Equal(t, "info", cfg.Log.Level)
	require.Equal(t, 8080, cfg.Server.Port)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("ATELIER_TRANSPORT_MODE", "http")
	t.Setenv("ATELIER_STORAGE_BACKEND", "sqlite")
	t.Setenv("ATELIER_STORAGE_PATH", "atelier.db")
	t.Setenv("ATELIER_LATENCY_ENABLED", "false")
	t.Setenv("ATELIER_SEED_ENABLED", "false")
	t.Setenv("ATELIER_SERVER_PORT", "9090")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "http", cfg.Transport.Mode)
	require.Equal(t, "sqlite", cfg.Storage.Backend)
	require.Equal(t, "atelier.db", cfg.Storage.Path)
	require.False(t, cfg.Latency.Enabled)
	require.False(t, cfg.Seed.Enabled)
	require.Equal(t, 9090, cfg.Server.Port)
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	t.Setenv("ATELIER_TRANSPORT_MODE", "carrier-pigeon")
	_, err := Load()
	require.Error(t, err)
}

func TestLoad_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte("storage:\n  backend: sqlite\n  path: crm.db\nlog:\n  level: debug\n")
	require.NoError(t, os.WriteFile(path, content, 0o644))
	t.Setenv("ATELIER_CONFIG_PATH", path)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "sqlite", cfg.Storage.Backend)
	require.Equal(t, "crm.db", cfg.Storage.Path)
	require.Equal(t, "debug", cfg.Log.Level)
}
