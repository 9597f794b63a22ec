package config

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
	path := filepath.Join(t.TempDir(), "mockapi.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), *cfg)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.EqualValues(t, 10, cfg.Server.MaxConcurrent)
	assert.Equal(t, 15, cfg.Seed.Counts.Clients)
	assert.False(t, cfg.Cache.Enabled)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
server:
  addr: 127.0.0.1:9090
  max_concurrent: 4
  shutdown_timeout: 2s
log:
  level: debug
  format: json
seed:
  file: seed.yaml
  counts:
    clients: 3
cache:
  enabled: true
  ttl: 1m
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9090", cfg.Server.Addr)
	assert.EqualValues(t, 4, cfg.Server.MaxConcurrent)
	assert.Equal(t, 2*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, 10*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "seed.yaml", cfg.Seed.File)
	assert.Equal(t, 3, cfg.Seed.Counts.Clients)
	assert.Equal(t, 5, cfg.Seed.Counts.Tpps)
	assert.True(t, cfg.Cache.Enabled)
	assert.Equal(t, time.Minute, cfg.Cache.TTL)
}

func TestLoad_EnvOverride(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("MOCKAPI_SERVER_ADDR", ":7070")
	t.Setenv("MOCKAPI_SEED_COUNTS_ORGS", "9")
	t.Setenv("MOCKAPI_CACHE_ENABLED", "true")
	t.Setenv("MOCKAPI_CACHE_NUM_SHARDS", "4")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":7070", cfg.Server.Addr)
	assert.Equal(t, 9, cfg.Seed.Counts.Orgs)
	assert.True(t, cfg.Cache.Enabled)
	assert.Equal(t, 4, cfg.Cache.NumShards)
}

func TestLoad_CacheEarlyRefresh(t *testing.T) {
	path := writeConfig(t, `
cache:
  enabled: true
  early_refresh:
    enabled: true
    min_async: 1s
    max_async: 2s
    sync: 10s
`)
	t.Setenv("MOCKAPI_CACHE_EARLY_REFRESH_RETRY_BASE_DELAY", "250ms")

	cfg, err := Load(path)
	require.NoError(t, err)

	er := cfg.Cache.EarlyRefresh
	assert.True(t, er.Enabled)
	assert.Equal(t, time.Second, er.MinAsync)
	assert.Equal(t, 2*time.Second, er.MaxAsync)
	assert.Equal(t, 10*time.Second, er.Sync)
	assert.Equal(t, 250*time.Millisecond, er.RetryBaseDelay)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestValidate_CollectsAllFailures(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Server.Addr = ""
	cfg.Server.MaxConcurrent = 0
	cfg.Log.Level = "loud"
	cfg.Seed.Counts.Clients = -1
	cfg.Cache.Enabled = true
	cfg.Cache.Capacity = 0

	err := cfg.Validate()
	require.Error(t, err)
	for _, want := range []string{"server.addr", "server.max_concurrent", "log:", "seed:", "cache:"} {
		assert.Contains(t, err.Error(), want)
	}
}

func TestLoad_InvalidFileFailsValidation(t *testing.T) {
	path := writeConfig(t, "log:\n  format: xml\n")

	_, err := Load(path)
	assert.ErrorContains(t, err, "unknown log format")
}
