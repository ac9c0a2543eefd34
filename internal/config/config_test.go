package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))

	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.True(t, cfg.MarketEnabled)
	assert.Equal(t, "https://remoteok.com/api", cfg.MarketURL)
	assert.Equal(t, 10, cfg.MarketLimit)
	assert.Equal(t, 20*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, "auto", cfg.S3Region)
	assert.False(t, cfg.S3Enabled())
}

func TestLoad_EnvFile(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("PATHWISE_LOG_LEVEL=debug\nPATHWISE_MARKET_LIMIT=4\nPATHWISE_S3_ACCESS_KEY=ak\nPATHWISE_S3_SECRET_KEY=sk\n"), 0o600))
	t.Cleanup(func() {
		os.Unsetenv("PATHWISE_LOG_LEVEL")
		os.Unsetenv("PATHWISE_MARKET_LIMIT")
		os.Unsetenv("PATHWISE_S3_ACCESS_KEY")
		os.Unsetenv("PATHWISE_S3_SECRET_KEY")
	})

	cfg, err := Load(envFile)

	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 4, cfg.MarketLimit)
	assert.True(t, cfg.S3Enabled())
}

func TestLoad_EnvironmentWinsOverFile(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("PATHWISE_METRICS_FILE=/from/file.prom\n"), 0o600))
	t.Setenv("PATHWISE_METRICS_FILE", "/from/env.prom")

	cfg, err := Load(envFile)

	require.NoError(t, err)
	assert.Equal(t, "/from/env.prom", cfg.MetricsFile)
}

func TestLoad_InvalidDuration(t *testing.T) {
	t.Setenv("PATHWISE_HTTP_TIMEOUT", "soon")

	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))

	assert.Error(t, err)
}

func TestNewLogger_Formats(t *testing.T) {
	var jsonBuf bytes.Buffer
	cfg := Config{LogLevel: "warn"}
	logger := cfg.NewLogger(&jsonBuf, false)
	logger.Info().Msg("hidden")
	logger.Warn().Str("k", "v").Msg("shown")

	assert.NotContains(t, jsonBuf.String(), "hidden")
	assert.Contains(t, jsonBuf.String(), `"k":"v"`)

	var consoleBuf bytes.Buffer
	cfg = Config{LogLevel: "bogus"}
	logger = cfg.NewLogger(&consoleBuf, true)
	logger.Info().Msg("hello")

	assert.Contains(t, consoleBuf.String(), "hello")
	assert.NotContains(t, consoleBuf.String(), `"message"`)
}
