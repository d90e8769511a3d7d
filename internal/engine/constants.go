package engine

import (
	"errors"
	"time"
)

// Defaults for Options
const (
	DefaultTreeMemoTTL    = 5 * time.Minute
	DefaultDebounceWindow = 250 * time.Millisecond
	RecalcQueueSize       = 8
)

// Log messages
const (
	LogMsgRulesetReplaced     = "Ruleset replaced"
	LogMsgWeightSumAdvisory   = "Ruleset weights do not sum to 1"
	LogMsgCatalogReplaced     = "Catalog replaced"
	LogMsgCatalogUnresolved   = "Catalog has unresolved ingredient references"
	LogMsgRecalcCompleted     = "Crafted values recalculated"
	LogMsgRecalcStale         = "Discarding recalculation computed against a replaced catalog or ruleset"
	LogMsgRecalcCycle         = "Recipe cycle detected, falling back to declaration order"
	LogMsgRecalcEnqueueFailed = "Failed to enqueue recalculation"
	LogMsgMissingIngredients  = "Recipe references unresolved ingredients"
	LogMsgPriceComputed       = "Price computed"
	LogMsgCostComputed        = "Crafting cost computed"
	LogMsgTimeComputed        = "Crafting time estimated"
	LogMsgTreeBuilt           = "Dependency tree built"
	LogMsgTreeMemoHit         = "Dependency tree served from memo"
)

// Health errors
var (
	ErrNotRunning   = errors.New("engine is not running")
	ErrCatalogEmpty = errors.New("catalog has no items")
)
