package config

import "time"

const (
	// Seed file paths
	ConfigPathCatalog           = "configs/catalog.json"
	ConfigPathRuleset           = "configs/ruleset.json"
	ConfigPathComplexityAliases = "configs/complexity_aliases.json"
)

// Defaults applied when the environment leaves a value unset
const (
	DefaultPort           = 8080
	DefaultCacheSize      = 4096
	DefaultCacheTTL       = 10 * time.Minute
	DefaultTreeMemoTTL    = 5 * time.Minute
	DefaultDebounceWindow = 250 * time.Millisecond
	DefaultRateLimitRPS   = 20.0
	DefaultRateLimitBurst = 40
	DefaultMaxBodyBytes   = 8 << 20
	DefaultStatsInterval  = time.Minute
)
