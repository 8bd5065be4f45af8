package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, int64(137), cfg.ChainID)
	require.Equal(t, "info", cfg.Log.Level)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("POLYMARKET_PRIVATE_KEY", "0xabc")
	t.Setenv("POLYMARKET_CHAIN_ID", "80002")
	t.Setenv("POLYMARKET_CLOB_HOST", "http://localhost:8080")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "0xabc", cfg.PrivateKey)
	require.Equal(t, int64(80002), cfg.ChainID)
	require.Equal(t, "http://localhost:8080", cfg.ClobHost)
	require.Equal(t, "debug", cfg.Log.Level)
}

func TestBadChainIDEnv(t *testing.T) {
	t.Setenv("POLYMARKET_CHAIN_ID", "polygon")
	_, err := Load("")
	require.Error(t, err)
}

func TestYAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
chain_id: 80002
data_host: http://data.local
log:
  level: warn
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, int64(80002), cfg.ChainID)
	require.Equal(t, "http://data.local", cfg.DataHost)
	require.Equal(t, "warn", cfg.Log.Level)
}

func TestMissingYAMLFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
