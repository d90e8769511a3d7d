package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	ServiceName string
	Version     string
	Environment string

	// Seed documents loaded at startup
	CatalogPath           string
	RulesetPath           string
	ComplexityAliasesPath string

	CacheSize      int
	CacheTTL       time.Duration
	TreeMemoTTL    time.Duration
	DebounceWindow time.Duration

	CORSAllowedOrigins []string
	RateLimitRPS       float64
	RateLimitBurst     int
	TrustedProxies     []string
	MaxBodyBytes       int64

	// StatsInterval controls how often cache statistics are logged; zero disables it
	StatsInterval time.Duration
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "text"),
		ServiceName: getEnv("SERVICE_NAME", "forgeworks"),
		Version:     getEnv("VERSION", "dev"),
		Environment: getEnv("ENVIRONMENT", "dev"),

		CatalogPath: getEnv("CATALOG_PATH", ConfigPathCatalog),
		RulesetPath: getEnv("RULESET_PATH", ConfigPathRuleset),

		ComplexityAliasesPath: getEnv("COMPLEXITY_ALIASES_PATH", ConfigPathComplexityAliases),

		CacheSize:      getEnvAsInt("CACHE_SIZE", DefaultCacheSize),
		CacheTTL:       getEnvAsDuration("CACHE_TTL", DefaultCacheTTL),
		TreeMemoTTL:    getEnvAsDuration("TREE_MEMO_TTL", DefaultTreeMemoTTL),
		DebounceWindow: getEnvAsDuration("RECALC_DEBOUNCE", DefaultDebounceWindow),

		CORSAllowedOrigins: getEnvAsList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:5173"}),
		RateLimitRPS:       getEnvAsFloat("RATE_LIMIT_RPS", DefaultRateLimitRPS),
		RateLimitBurst:     getEnvAsInt("RATE_LIMIT_BURST", DefaultRateLimitBurst),
		TrustedProxies:     getEnvAsList("TRUSTED_PROXIES", nil),
		MaxBodyBytes:       int64(getEnvAsInt("MAX_BODY_BYTES", DefaultMaxBodyBytes)),

		StatsInterval: getEnvAsDuration("STATS_INTERVAL", DefaultStatsInterval),
	}

	portStr := getEnv("PORT", strconv.Itoa(DefaultPort))
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	if cfg.CacheSize <= 0 {
		return nil, fmt.Errorf("invalid CACHE_SIZE value: %d must be positive", cfg.CacheSize)
	}

	return cfg, nil
}

// IsProduction reports whether the service runs in the production environment
func (c *Config) IsProduction() bool {
	return c.Environment == "prod" || c.Environment == "production"
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	value, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsList splits a comma separated variable, dropping empty entries
func getEnvAsList(key string, defaultValue []string) []string {
	raw, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(raw) == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
