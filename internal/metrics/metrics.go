package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Valuation Metrics
var (
	ValuationsComputed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameValuationsComputed,
			Help: HelpTextValuationsComputed,
		},
		[]string{LabelKind},
	)

	CacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCacheHits,
			Help: HelpTextCacheHits,
		},
	)

	CacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCacheMisses,
			Help: HelpTextCacheMisses,
		},
	)

	CacheInvalidations = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCacheInvalidations,
			Help: HelpTextCacheInvalidations,
		},
	)

	TreeMemoLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameTreeMemoLookups,
			Help: HelpTextTreeMemoLookups,
		},
		[]string{LabelResult},
	)

	MissingIngredientLookups = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameMissingIngredientLooks,
			Help: HelpTextMissingIngredientLooks,
		},
	)
)

// Recalculation Metrics
var (
	RecalcTriggers = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameRecalcTriggers,
			Help: HelpTextRecalcTriggers,
		},
	)

	RecalcPasses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameRecalcPasses,
			Help: HelpTextRecalcPasses,
		},
	)

	RecalcDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameRecalcDuration,
			Help:    HelpTextRecalcDuration,
			Buckets: RecalcBuckets,
		},
	)
)

// State Metrics
var (
	RulesetVersion = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameRulesetVersion,
			Help: HelpTextRulesetVersion,
		},
	)

	CatalogEntries = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: MetricNameCatalogEntries,
			Help: HelpTextCatalogEntries,
		},
		[]string{LabelKind},
	)
)
