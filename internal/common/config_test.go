package common

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Defaults(t *testing.T) {
	cfg := NewDefaultConfig()

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0:8080", cfg.Server.Addr())
	assert.Equal(t, 1500*time.Millisecond, cfg.Generation.GetDelay())
	assert.Equal(t, 10*time.Second, cfg.Generation.GetTimeout())
	assert.Empty(t, cfg.Catalog.Path)
	assert.NoError(t, cfg.Validate())
}

func TestConfig_PortEnvOverride(t *testing.T) {
	t.Setenv("COOKENGINE_PORT", "9090")

	cfg := NewDefaultConfig()
	applyEnvOverrides(cfg)

	assert.Equal(t, 9090, cfg.Server.Port)
}

func TestConfig_InvalidPortEnvIgnored(t *testing.T) {
	t.Setenv("COOKENGINE_PORT", "not-a-port")

	cfg := NewDefaultConfig()
	applyEnvOverrides(cfg)

	assert.Equal(t, 8080, cfg.Server.Port)
}

func TestConfig_GenerationEnvOverrides(t *testing.T) {
	t.Setenv("COOKENGINE_GENERATION_DELAY", "0s")
	t.Setenv("COOKENGINE_GENERATION_TIMEOUT", "2s")
	t.Setenv("COOKENGINE_GENERATION_RATE_LIMIT", "0")
	t.Setenv("COOKENGINE_CATALOG_PATH", "/tmp/recipes.yaml")

	cfg := NewDefaultConfig()
	applyEnvOverrides(cfg)

	assert.Equal(t, time.Duration(0), cfg.Generation.GetDelay())
	assert.Equal(t, 2*time.Second, cfg.Generation.GetTimeout())
	assert.Equal(t, 0.0, cfg.Generation.RateLimit)
	assert.Equal(t, "/tmp/recipes.yaml", cfg.Catalog.Path)
}

func TestConfig_LoadLayeredFiles(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "base.toml")
	local := filepath.Join(dir, "local.toml")

	require.NoError(t, os.WriteFile(base, []byte(`
environment = "production"

[server]
port = 7000

[generation]
delay = "250ms"
`), 0o644))
	require.NoError(t, os.WriteFile(local, []byte(`
[server]
port = 7001
`), 0o644))

	cfg, err := LoadConfig(base, local, filepath.Join(dir, "missing.toml"))
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, 7001, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 250*time.Millisecond, cfg.Generation.GetDelay())
}

func TestConfig_LoadRejectsBadDuration(t *testing.T) {
	p := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(p, []byte("[generation]\ntimeout = \"soon\"\n"), 0o644))

	_, err := LoadConfig(p)
	assert.Error(t, err)
}

func TestConfig_LoadRejectsMalformedTOML(t *testing.T) {
	p := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(p, []byte("[server\nport = 1"), 0o644))

	_, err := LoadConfig(p)
	assert.Error(t, err)
}

func TestConfig_IsProduction(t *testing.T) {
	for env, want := range map[string]bool{
		"production":  true,
		" PROD ":      true,
		"development": false,
		"":            false,
	} {
		cfg := &Config{Environment: env}
		assert.Equal(t, want, cfg.IsProduction(), "env %q", env)
	}
}

func TestGenerationConfig_FallbackOnUnparseable(t *testing.T) {
	cfg := &GenerationConfig{Delay: "x", Timeout: ""}
	assert.Equal(t, 1500*time.Millisecond, cfg.GetDelay())
	assert.Equal(t, 10*time.Second, cfg.GetTimeout())
}
