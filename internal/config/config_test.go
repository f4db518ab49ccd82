package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir is t.Chdir for Go versions before 1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()
	orig, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(orig) })
}

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 10, cfg.Scrape.TimeoutSecs)
	assert.Contains(t, cfg.Scrape.UserAgent, "Mozilla")
	assert.Equal(t, 300, cfg.Discovery.ValidationIntervalMS)
	assert.Equal(t, 8, cfg.Discovery.MaxValidations)
	assert.Equal(t, "https://places.googleapis.com/v1", cfg.Google.BaseURL)
}

func TestLoad_EnvOverride(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("INTEL_GOOGLE_PLACES_KEY", "test-key")
	t.Setenv("INTEL_SERVER_PORT", "9090")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "test-key", cfg.Google.PlacesKey)
	assert.Equal(t, 9090, cfg.Server.Port)
}

func TestDiscoveryConfig_ValidationInterval(t *testing.T) {
	d := DiscoveryConfig{ValidationIntervalMS: 300}
	assert.Equal(t, 300*time.Millisecond, d.ValidationInterval())
}

func TestInitLogger(t *testing.T) {
	require.NoError(t, InitLogger(LogConfig{Level: "debug", Format: "console"}))
	assert.Error(t, InitLogger(LogConfig{Level: "nope", Format: "json"}))
}
