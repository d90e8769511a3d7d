package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoad tests configuration loading from environment
func TestLoad(t *testing.T) {
	t.Run("loads config with defaults when no env vars set", func(t *testing.T) {
		clearEnvVars(t)

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, DefaultPort, cfg.Port, "Should use default port")
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "text", cfg.LogFormat)
		assert.Equal(t, "dev", cfg.Environment)
		assert.Equal(t, "forgeworks", cfg.ServiceName)
		assert.Equal(t, ConfigPathCatalog, cfg.CatalogPath)
		assert.Equal(t, ConfigPathRuleset, cfg.RulesetPath)
		assert.Equal(t, ConfigPathComplexityAliases, cfg.ComplexityAliasesPath)
		assert.Equal(t, DefaultCacheSize, cfg.CacheSize)
		assert.Equal(t, DefaultCacheTTL, cfg.CacheTTL)
		assert.Equal(t, DefaultDebounceWindow, cfg.DebounceWindow)
		assert.Equal(t, []string{"http://localhost:5173"}, cfg.CORSAllowedOrigins)
		assert.Equal(t, int64(DefaultMaxBodyBytes), cfg.MaxBodyBytes)
		assert.Equal(t, DefaultStatsInterval, cfg.StatsInterval)
		assert.Empty(t, cfg.TrustedProxies)
		assert.False(t, cfg.IsProduction())
	})

	t.Run("loads config from environment variables", func(t *testing.T) {
		clearEnvVars(t)

		t.Setenv("PORT", "3000")
		t.Setenv("LOG_LEVEL", "debug")
		t.Setenv("LOG_FORMAT", "json")
		t.Setenv("ENVIRONMENT", "production")
		t.Setenv("CATALOG_PATH", "/data/catalog.json")
		t.Setenv("CACHE_SIZE", "128")
		t.Setenv("CACHE_TTL", "30s")
		t.Setenv("RECALC_DEBOUNCE", "1s")
		t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com, ,https://b.example.com")
		t.Setenv("RATE_LIMIT_RPS", "2.5")
		t.Setenv("RATE_LIMIT_BURST", "5")
		t.Setenv("TRUSTED_PROXIES", "10.0.0.1,10.0.0.2")
		t.Setenv("STATS_INTERVAL", "0s")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 3000, cfg.Port)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "json", cfg.LogFormat)
		assert.True(t, cfg.IsProduction())
		assert.Equal(t, "/data/catalog.json", cfg.CatalogPath)
		assert.Equal(t, 128, cfg.CacheSize)
		assert.Equal(t, 30*time.Second, cfg.CacheTTL)
		assert.Equal(t, time.Second, cfg.DebounceWindow)
		assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.CORSAllowedOrigins)
		assert.InDelta(t, 2.5, cfg.RateLimitRPS, 1e-9)
		assert.Equal(t, 5, cfg.RateLimitBurst)
		assert.Equal(t, []string{"10.0.0.1", "10.0.0.2"}, cfg.TrustedProxies)
		assert.Zero(t, cfg.StatsInterval)
	})

	t.Run("returns error for invalid PORT", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("PORT", "not-a-number")

		cfg, err := Load()

		assert.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "invalid PORT")
	})

	t.Run("rejects non-positive cache size", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("CACHE_SIZE", "0")

		cfg, err := Load()

		assert.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "CACHE_SIZE")
	})

	t.Run("malformed optional values fall back to defaults", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("CACHE_TTL", "soon")
		t.Setenv("RATE_LIMIT_RPS", "fast")
		t.Setenv("RATE_LIMIT_BURST", "4.5")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, DefaultCacheTTL, cfg.CacheTTL)
		assert.InDelta(t, DefaultRateLimitRPS, cfg.RateLimitRPS, 1e-9)
		assert.Equal(t, DefaultRateLimitBurst, cfg.RateLimitBurst)
	})
}

// Helper function to clear environment variables
func clearEnvVars(t *testing.T) {
	t.Helper()

	envVars := []string{
		"PORT", "LOG_LEVEL", "LOG_FORMAT", "SERVICE_NAME", "VERSION", "ENVIRONMENT",
		"CATALOG_PATH", "RULESET_PATH", "CACHE_SIZE", "CACHE_TTL", "TREE_MEMO_TTL",
		"RECALC_DEBOUNCE", "CORS_ALLOWED_ORIGINS", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST",
		"MAX_BODY_BYTES", "TRUSTED_PROXIES", "STATS_INTERVAL", "COMPLEXITY_ALIASES_PATH",
	}

	for _, key := range envVars {
		if prev, ok := os.LookupEnv(key); ok {
			t.Cleanup(func() { os.Setenv(key, prev) })
		}
		os.Unsetenv(key)
	}
}
