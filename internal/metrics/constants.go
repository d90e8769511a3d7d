package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Engine metric names
const (
	MetricNameValuationsComputed     = "forgeworks_valuations_computed_total"
	MetricNameCacheHits              = "forgeworks_valuation_cache_hits_total"
	MetricNameCacheMisses            = "forgeworks_valuation_cache_misses_total"
	MetricNameCacheInvalidations     = "forgeworks_valuation_cache_invalidations_total"
	MetricNameTreeMemoLookups        = "forgeworks_tree_memo_lookups_total"
	MetricNameRecalcTriggers         = "forgeworks_recalculation_triggers_total"
	MetricNameRecalcPasses           = "forgeworks_recalculation_passes_total"
	MetricNameRecalcDuration         = "forgeworks_recalculation_duration_seconds"
	MetricNameRulesetVersion         = "forgeworks_ruleset_version"
	MetricNameCatalogEntries         = "forgeworks_catalog_entries"
	MetricNameMissingIngredientLooks = "forgeworks_missing_ingredient_lookups_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Engine metric help text
const (
	HelpTextValuationsComputed     = "Total number of valuations computed, by kind"
	HelpTextCacheHits              = "Total number of valuation cache hits"
	HelpTextCacheMisses            = "Total number of valuation cache misses"
	HelpTextCacheInvalidations     = "Total number of valuation cache entries invalidated"
	HelpTextTreeMemoLookups        = "Total number of dependency tree memo lookups, by result"
	HelpTextRecalcTriggers         = "Total number of crafted value recalculation triggers"
	HelpTextRecalcPasses           = "Total number of crafted value recalculation passes"
	HelpTextRecalcDuration         = "Duration of crafted value recalculation passes in seconds"
	HelpTextRulesetVersion         = "Version of the active ruleset"
	HelpTextCatalogEntries         = "Number of catalog entries, by kind"
	HelpTextMissingIngredientLooks = "Total number of ingredient lookups that did not resolve"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelKind   = "kind"
	LabelResult = "result"
)

// Label values
const (
	KindPrice       = "price"
	KindCost        = "cost"
	KindResultValue = "result_value"
	KindTime        = "time"
	KindTree        = "tree"
	KindItems       = "items"
	KindRecipes     = "recipes"
	ResultHit       = "hit"
	ResultMiss      = "miss"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// RecalcBuckets covers recalculation passes from 100µs to 5s
var RecalcBuckets = []float64{.0001, .0005, .001, .005, .01, .05, .1, .5, 1, 5}

// UnmatchedRoute labels requests no route matched
const UnmatchedRoute = "unmatched"
