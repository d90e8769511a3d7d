package engine

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/osse101/Forgeworks_Go/internal/cache"
	"github.com/osse101/Forgeworks_Go/internal/catalog"
	"github.com/osse101/Forgeworks_Go/internal/domain"
	"github.com/osse101/Forgeworks_Go/internal/logger"
	"github.com/osse101/Forgeworks_Go/internal/metrics"
	"github.com/osse101/Forgeworks_Go/internal/scheduler"
	"github.com/osse101/Forgeworks_Go/internal/worker"
)

// Service is the engine surface the HTTP layer depends on
type Service interface {
	Price(ctx context.Context, name, season string) (PriceQuote, error)
	Cost(ctx context.Context, name, season string) (CostQuote, error)
	Time(ctx context.Context, name string) (TimeQuote, error)
	Tree(ctx context.Context, name string, quantity int) (*TreeResult, error)
	Suggest(name string) []string

	Ruleset() *domain.Ruleset
	ReplaceRuleset(ctx context.Context, rs *domain.Ruleset) (*domain.Ruleset, error)
	ImportRuleset(ctx context.Context, data []byte) (*domain.Ruleset, error)

	ImportCatalog(ctx context.Context, data []byte) (catalog.Report, error)
	CatalogReport() catalog.Report
	CatalogDocument() *catalog.Document

	Recalculate(ctx context.Context) (RecalcResult, error)
	ScheduleRecalculation()
	FlushRecalculation() bool
	Stats() Stats
}

// Options tunes the engine's caches and recalculation debounce
type Options struct {
	Cache          cache.CacheConfig
	TreeMemoTTL    time.Duration
	DebounceWindow time.Duration

	// ComplexityAliases are shared complexity spellings merged into every
	// installed ruleset; a ruleset's own aliases win
	ComplexityAliases map[string]string
}

// DefaultOptions returns the default engine options
func DefaultOptions() Options {
	return Options{
		Cache:          cache.DefaultCacheConfig(),
		TreeMemoTTL:    DefaultTreeMemoTTL,
		DebounceWindow: DefaultDebounceWindow,
	}
}

// Stats is a point-in-time view of engine state
type Stats struct {
	RulesetKey     string           `json:"ruleset_key"`
	RulesetVersion int              `json:"ruleset_version"`
	Items          int              `json:"items"`
	Recipes        int              `json:"recipes"`
	Generation     uint64           `json:"catalog_generation"`
	Cache          cache.CacheStats `json:"cache"`
	TreeMemoSize   int              `json:"tree_memo_size"`
	RecalcPending  bool             `json:"recalc_pending"`
}

// Engine owns the active ruleset and catalog and serves valuations against
// them. Readers run concurrently; ruleset and catalog replacement take the
// write lock and invalidate the caches in the same critical section.
type Engine struct {
	mu         sync.RWMutex
	ruleset    *domain.Ruleset
	catalog    *catalog.Catalog
	generation uint64

	loader *catalog.Loader
	cache  *cache.ValuationCache
	trees  *gocache.Cache

	recalcMu  sync.Mutex
	debouncer *scheduler.Debouncer
	pool      *worker.Pool
	running   atomic.Bool

	aliases map[string]string

	// beforeCommit runs between computing a pass and installing it
	beforeCommit func()
}

var _ Service = (*Engine)(nil)

// New creates an engine. A nil ruleset starts from the defaults, a nil
// catalog starts empty and a nil loader gets a fresh one.
func New(rs *domain.Ruleset, cat *catalog.Catalog, loader *catalog.Loader, opts Options) (*Engine, error) {
	if loader == nil {
		var err error
		if loader, err = catalog.NewLoader(); err != nil {
			return nil, err
		}
	}
	if rs == nil {
		rs = domain.NewRuleset(domain.DefaultRulesetName)
	}
	if err := loader.ValidateRuleset(rs); err != nil {
		return nil, err
	}
	if cat == nil {
		var err error
		if cat, err = catalog.New(&catalog.Document{}); err != nil {
			return nil, err
		}
	}
	if opts.TreeMemoTTL <= 0 {
		opts.TreeMemoTTL = DefaultTreeMemoTTL
	}
	if opts.DebounceWindow <= 0 {
		opts.DebounceWindow = DefaultDebounceWindow
	}

	installed := rs.Clone()
	installed.MergeComplexityAliases(opts.ComplexityAliases)

	e := &Engine{
		ruleset: installed,
		aliases: opts.ComplexityAliases,
		catalog: cat,
		loader:  loader,
		cache:   cache.NewValuationCache(opts.Cache),
		trees:   gocache.New(opts.TreeMemoTTL, 2*opts.TreeMemoTTL),
		pool:    worker.NewPool(1, RecalcQueueSize),
	}
	e.debouncer = scheduler.NewDebouncer(opts.DebounceWindow, e.enqueueRecalculation)

	metrics.RulesetVersion.Set(float64(rs.Version))
	metrics.CatalogEntries.WithLabelValues(metrics.KindItems).Set(float64(cat.Len()))
	metrics.CatalogEntries.WithLabelValues(metrics.KindRecipes).Set(float64(cat.RecipeCount()))
	return e, nil
}

// Start launches the recalculation worker
func (e *Engine) Start() {
	e.pool.Start()
	e.running.Store(true)
}

// Stop flushes a pending recalculation, lets it finish and stops the worker
func (e *Engine) Stop() {
	e.running.Store(false)
	e.debouncer.Stop()
	e.pool.Stop()
}

// CheckHealth reports whether the engine is serving with a populated catalog
func (e *Engine) CheckHealth(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !e.running.Load() {
		return ErrNotRunning
	}
	e.mu.RLock()
	empty := e.catalog.Len() == 0
	e.mu.RUnlock()
	if empty {
		return ErrCatalogEmpty
	}
	return nil
}

// Ruleset returns a copy of the active ruleset
func (e *Engine) Ruleset() *domain.Ruleset {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.ruleset.Clone()
}

// ReplaceRuleset installs rs as the next revision of the active ruleset. The
// identity of the active ruleset is kept and its version bumped; cached
// valuations of the previous revision are dropped and crafted values are
// scheduled for recalculation.
func (e *Engine) ReplaceRuleset(ctx context.Context, rs *domain.Ruleset) (*domain.Ruleset, error) {
	if err := e.loader.ValidateRuleset(rs); err != nil {
		return nil, err
	}
	return e.reviseRuleset(ctx, func(next *domain.Ruleset) {
		*next = *rs.Clone()
	})
}

// UpdateRuleset applies mutate to a copy of the active ruleset and installs
// the result as the next revision
func (e *Engine) UpdateRuleset(ctx context.Context, mutate func(*domain.Ruleset)) (*domain.Ruleset, error) {
	return e.reviseRuleset(ctx, mutate)
}

// ImportRuleset parses a ruleset document and installs it
func (e *Engine) ImportRuleset(ctx context.Context, data []byte) (*domain.Ruleset, error) {
	rs, err := e.loader.ParseRuleset(data)
	if err != nil {
		return nil, err
	}
	return e.ReplaceRuleset(ctx, rs)
}

func (e *Engine) reviseRuleset(ctx context.Context, mutate func(*domain.Ruleset)) (*domain.Ruleset, error) {
	e.mu.Lock()
	previous := e.ruleset
	next := previous.Revise(mutate)
	next.MergeComplexityAliases(e.aliases)
	if err := e.loader.ValidateRuleset(next); err != nil {
		e.mu.Unlock()
		return nil, err
	}
	e.ruleset = next
	dropped := e.cache.Invalidate(previous.Key())
	e.mu.Unlock()

	metrics.RulesetVersion.Set(float64(next.Version))
	log := logger.FromContext(ctx)
	log.Info(LogMsgRulesetReplaced,
		"ruleset", next.Name,
		"version", next.Version,
		"previous_version", previous.Version,
		"invalidated", dropped)
	if sum, ok := next.WeightSumAdvisory(); !ok {
		log.Warn(LogMsgWeightSumAdvisory, "sum", sum)
	}

	e.ScheduleRecalculation()
	return next.Clone(), nil
}

// ReplaceCatalog swaps in a new catalog, clears every cache and schedules a
// recalculation of crafted values
func (e *Engine) ReplaceCatalog(ctx context.Context, cat *catalog.Catalog) (catalog.Report, error) {
	if cat == nil {
		return catalog.Report{}, fmt.Errorf("%w: catalog is nil", domain.ErrInvalidInput)
	}

	e.mu.Lock()
	e.catalog = cat
	e.generation++
	generation := e.generation
	e.cache.Clear()
	e.trees.Flush()
	e.mu.Unlock()

	metrics.CatalogEntries.WithLabelValues(metrics.KindItems).Set(float64(cat.Len()))
	metrics.CatalogEntries.WithLabelValues(metrics.KindRecipes).Set(float64(cat.RecipeCount()))

	report := cat.Report()
	log := logger.FromContext(ctx)
	log.Info(LogMsgCatalogReplaced,
		"items", report.Items,
		"recipes", report.Recipes,
		"generation", generation,
		"fingerprint", report.Fingerprint)
	if !report.Clean() {
		log.Warn(LogMsgCatalogUnresolved, "count", len(report.Unknown))
	}

	e.ScheduleRecalculation()
	return report, nil
}

// ImportCatalog parses a catalog document and installs it
func (e *Engine) ImportCatalog(ctx context.Context, data []byte) (catalog.Report, error) {
	cat, err := e.loader.ParseCatalog(data)
	if err != nil {
		return catalog.Report{}, err
	}
	return e.ReplaceCatalog(ctx, cat)
}

// CatalogReport lists unresolved references of the active catalog
func (e *Engine) CatalogReport() catalog.Report {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.catalog.Report()
}

// CatalogDocument exports the active catalog including crafted values
func (e *Engine) CatalogDocument() *catalog.Document {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.catalog.Clone().Document()
}

// Stats reports engine state and cache effectiveness
func (e *Engine) Stats() Stats {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return Stats{
		RulesetKey:     e.ruleset.Key(),
		RulesetVersion: e.ruleset.Version,
		Items:          e.catalog.Len(),
		Recipes:        e.catalog.RecipeCount(),
		Generation:     e.generation,
		Cache:          e.cache.GetStats(),
		TreeMemoSize:   e.trees.ItemCount(),
		RecalcPending:  e.debouncer.Pending(),
	}
}
