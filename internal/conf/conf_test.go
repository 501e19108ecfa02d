package conf

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "church.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, "True branch", cfg.Branches.True)
	assert.Equal(t, "False branch", cfg.Branches.False)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
server:
  addr: 0.0.0.0:9100
  timeout: 1s
  rateLimit:
    capacity: 5
    fillRate: 200ms
branches:
  onTrue: greater
  onFalse: less or equal
log:
  level: debug
  format: json
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:9100", cfg.Server.Addr)
	assert.Equal(t, time.Second, cfg.Server.Timeout)
	assert.Equal(t, int64(5), cfg.Server.RateLimit.Capacity)
	assert.Equal(t, 200*time.Millisecond, cfg.Server.RateLimit.FillRate)
	assert.Equal(t, "greater", cfg.Branches.True)
	assert.Equal(t, "less or equal", cfg.Branches.False)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("CHURCH_ADDR", "127.0.0.1:9999")
	t.Setenv("CHURCH_LOG_LEVEL", "warn")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9999", cfg.Server.Addr)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "server: [not, a, map]"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "server:\n  addr: \"\"\n"))
	assert.EqualError(t, err, "server.addr must not be empty")

	_, err = Load(writeConfig(t, "server:\n  rateLimit:\n    capacity: 3\n    fillRate: 0s\n"))
	assert.Error(t, err)
}
