package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/Forgeworks_Go/internal/cache"
	"github.com/osse101/Forgeworks_Go/internal/catalog"
	"github.com/osse101/Forgeworks_Go/internal/config"
	"github.com/osse101/Forgeworks_Go/internal/domain"
	"github.com/osse101/Forgeworks_Go/internal/engine"
	"github.com/osse101/Forgeworks_Go/internal/handler"
	"github.com/osse101/Forgeworks_Go/internal/middleware"
	"github.com/osse101/Forgeworks_Go/internal/naming"
	"github.com/osse101/Forgeworks_Go/internal/scheduler"
	"github.com/osse101/Forgeworks_Go/internal/server"
	"github.com/osse101/Forgeworks_Go/internal/worker"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	initLogger(cfg)

	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		slog.Error("Environment validation failed", "error", err)
		os.Exit(1)
	}
	for _, w := range warnings {
		slog.Warn(w)
	}

	handler.Version = cfg.Version

	loader, err := catalog.NewLoader()
	if err != nil {
		slog.Error("Failed to build document loader", "error", err)
		os.Exit(1)
	}

	rs, err := loadRuleset(loader, cfg.RulesetPath)
	if err != nil {
		slog.Error("Failed to load ruleset", "path", cfg.RulesetPath, "error", err)
		os.Exit(1)
	}
	aliases, err := naming.LoadComplexityAliases(cfg.ComplexityAliasesPath)
	if err != nil {
		slog.Error("Failed to load complexity aliases", "path", cfg.ComplexityAliasesPath, "error", err)
		os.Exit(1)
	}
	cat, err := loadCatalog(loader, cfg.CatalogPath)
	if err != nil {
		slog.Error("Failed to load catalog", "path", cfg.CatalogPath, "error", err)
		os.Exit(1)
	}

	eng, err := engine.New(rs, cat, loader, engine.Options{
		Cache:          cache.CacheConfig{Size: cfg.CacheSize, TTL: cfg.CacheTTL},
		TreeMemoTTL:    cfg.TreeMemoTTL,
		DebounceWindow: cfg.DebounceWindow,

		ComplexityAliases: aliases,
	})
	if err != nil {
		slog.Error("Failed to start valuation engine", "error", err)
		os.Exit(1)
	}
	eng.Start()

	// Crafted values of a seeded catalog are derived before the first request
	result, err := eng.Recalculate(context.Background())
	if err != nil {
		slog.Error("Initial recalculation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Engine ready",
		"ruleset", rs.Key(),
		"items", cat.Len(),
		"recipes", cat.RecipeCount(),
		"crafted", result.Updated)

	statsPool := worker.NewPool(1, 1)
	statsPool.Start()
	sched := scheduler.New(statsPool)
	if cfg.StatsInterval > 0 {
		sched.Schedule(cfg.StatsInterval, worker.JobFunc(func(ctx context.Context) error {
			stats := eng.Stats()
			slog.Info("Engine stats",
				"ruleset", stats.RulesetKey,
				"items", stats.Items,
				"cache_hits", stats.Cache.Hits,
				"cache_misses", stats.Cache.Misses,
				"cache_size", stats.Cache.Size,
				"tree_memo_size", stats.TreeMemoSize)
			return nil
		}))
	}

	srv := server.NewServer(server.Options{
		Port:        cfg.Port,
		CORSOrigins: cfg.CORSAllowedOrigins,
		CORSDebug:   !cfg.IsProduction() && cfg.LogLevel == "debug",
		RateLimit: middleware.RateLimitConfig{
			RequestsPerSecond: cfg.RateLimitRPS,
			BurstSize:         cfg.RateLimitBurst,
			TrustedProxies:    cfg.TrustedProxies,
		},
		MaxBodyBytes: cfg.MaxBodyBytes,
	}, eng, eng)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	slog.Info("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Stop(ctx); err != nil {
		slog.Error("Server shutdown failed", "error", err)
	}
	sched.Stop()
	statsPool.Stop()
	eng.Stop()
	slog.Info("Shutdown complete")
}

// loadRuleset reads the seed ruleset, falling back to the defaults when the
// file does not exist
func loadRuleset(loader *catalog.Loader, path string) (*domain.Ruleset, error) {
	rs, err := loader.LoadRuleset(path)
	if errors.Is(err, os.ErrNotExist) {
		slog.Warn("Ruleset seed not found, using defaults", "path", path)
		return domain.NewRuleset(domain.DefaultRulesetName), nil
	}
	return rs, err
}

// loadCatalog reads the seed catalog, starting empty when the file does not exist
func loadCatalog(loader *catalog.Loader, path string) (*catalog.Catalog, error) {
	cat, err := loader.LoadCatalog(path)
	if errors.Is(err, os.ErrNotExist) {
		slog.Warn("Catalog seed not found, starting empty", "path", path)
		return catalog.New(&catalog.Document{})
	}
	if err != nil {
		return nil, err
	}
	if report := cat.Report(); !report.Clean() {
		slog.Warn("Seed catalog has unresolved references", "count", len(report.Unknown))
	}
	return cat, nil
}
