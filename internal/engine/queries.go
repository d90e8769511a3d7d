package engine

import (
	"context"
	"fmt"

	"github.com/osse101/Forgeworks_Go/internal/cache"
	"github.com/osse101/Forgeworks_Go/internal/catalog"
	"github.com/osse101/Forgeworks_Go/internal/crafting"
	"github.com/osse101/Forgeworks_Go/internal/crafttime"
	"github.com/osse101/Forgeworks_Go/internal/deptree"
	"github.com/osse101/Forgeworks_Go/internal/domain"
	"github.com/osse101/Forgeworks_Go/internal/logger"
	"github.com/osse101/Forgeworks_Go/internal/metrics"
	"github.com/osse101/Forgeworks_Go/internal/valuation"
)

// PriceQuote is the valuation of one item in one season
type PriceQuote struct {
	Item           string `json:"item"`
	Season         string `json:"season"`
	Price          int    `json:"price"`
	Sell           int    `json:"sell"`
	Buy            int    `json:"buy"`
	Crafted        bool   `json:"crafted"`
	Harvest        bool   `json:"harvest"`
	RulesetVersion int    `json:"ruleset_version"`
}

// CostQuote is the crafting economics of one recipe
type CostQuote struct {
	Item             string                 `json:"item"`
	Season           string                 `json:"season"`
	CraftingCost     int                    `json:"crafting_cost"`
	SeasonalCost     int                    `json:"seasonal_cost"`
	ResultValue      int                    `json:"result_value"`
	ProfitMultiplier float64                `json:"profit_multiplier"`
	CheapestVariant  int                    `json:"cheapest_variant"`
	Available        bool                   `json:"available"`
	Complete         bool                   `json:"complete"`
	Variants         []crafting.VariantCost `json:"variants"`
	RulesetVersion   int                    `json:"ruleset_version"`
}

// TimeQuote is the crafting duration of one recipe
type TimeQuote struct {
	Item           string               `json:"item"`
	Seconds        int                  `json:"seconds"`
	Detail         crafttime.Estimation `json:"detail"`
	RulesetVersion int                  `json:"ruleset_version"`
}

// TreeResult is a dependency tree with its raw material totals
type TreeResult struct {
	Item      string                      `json:"item"`
	Quantity  int                         `json:"quantity"`
	Tree      *deptree.Tree               `json:"tree"`
	Resources map[string]deptree.Resource `json:"resources"`
}

// Price values name in season; an empty season means the ruleset's current one
func (e *Engine) Price(ctx context.Context, name, season string) (PriceQuote, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	h, ok := e.catalog.Handle(name)
	if !ok {
		return PriceQuote{}, fmt.Errorf("%w: '%s'", domain.ErrItemNotFound, name)
	}
	item := e.catalog.Item(h)
	rs := e.ruleset
	if season == "" {
		season = rs.CurrentSeason
	}

	key := cache.Key{Ruleset: rs.Key(), Item: h, Season: season, Kind: cache.KindPrice}
	price := e.cache.GetOrCompute(key, func() int {
		metrics.ValuationsComputed.WithLabelValues(metrics.KindPrice).Inc()
		return valuation.Price(item, rs, season)
	})

	logger.FromContext(ctx).Debug(LogMsgPriceComputed, "item", name, "season", season, "price", price)
	return PriceQuote{
		Item:           item.Name,
		Season:         season,
		Price:          price,
		Sell:           valuation.SellFromValue(price, rs),
		Buy:            valuation.BuyFromValue(price, rs),
		Crafted:        item.HasCraftRecipe && item.CraftValue > 0,
		Harvest:        item.IsHarvest,
		RulesetVersion: rs.Version,
	}, nil
}

// Cost resolves the crafting cost of the recipe producing name, with the
// per-variant breakdown. Season selects the recipe's seasonal cost
// multiplier and defaults to the ruleset's current season.
func (e *Engine) Cost(ctx context.Context, name, season string) (CostQuote, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	h, recipe, err := e.recipeFor(name)
	if err != nil {
		return CostQuote{}, err
	}
	rs := e.ruleset
	if season == "" {
		season = rs.CurrentSeason
	}

	costKey := cache.Key{Ruleset: rs.Key(), Item: h, Kind: cache.KindCraftingCost}
	cost := e.cache.GetOrCompute(costKey, func() int {
		metrics.ValuationsComputed.WithLabelValues(metrics.KindCost).Inc()
		return crafting.CraftingCost(recipe, e.catalog, rs)
	})
	valueKey := cache.Key{Ruleset: rs.Key(), Item: h, Kind: cache.KindResultValue}
	value := e.cache.GetOrCompute(valueKey, func() int {
		metrics.ValuationsComputed.WithLabelValues(metrics.KindResultValue).Inc()
		return crafting.ResultValue(recipe, e.catalog, rs)
	})

	breakdown := crafting.Breakdown(recipe, e.catalog, rs)
	cheapest, _ := crafting.CheapestVariant(recipe, e.catalog, rs)
	complete := true
	log := logger.FromContext(ctx)
	for _, row := range breakdown {
		if !row.Complete() {
			complete = false
			metrics.MissingIngredientLookups.Add(float64(len(row.Missing)))
			log.Warn(LogMsgMissingIngredients, "recipe", name, "variant", row.Index, "missing", row.Missing)
		}
	}

	log.Debug(LogMsgCostComputed, "item", name, "cost", cost, "value", value)
	return CostQuote{
		Item:             recipe.ResultItemName,
		Season:           season,
		CraftingCost:     cost,
		SeasonalCost:     crafting.SeasonalCraftingCost(recipe, e.catalog, rs, season),
		ResultValue:      value,
		ProfitMultiplier: crafting.ProfitMultiplier(recipe, e.catalog, rs),
		CheapestVariant:  cheapest,
		Available:        recipe.AvailableIn(season),
		Complete:         complete,
		Variants:         breakdown,
		RulesetVersion:   rs.Version,
	}, nil
}

// Time estimates the crafting duration of the recipe producing name
func (e *Engine) Time(ctx context.Context, name string) (TimeQuote, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	_, recipe, err := e.recipeFor(name)
	if err != nil {
		return TimeQuote{}, err
	}
	rs := e.ruleset

	metrics.ValuationsComputed.WithLabelValues(metrics.KindTime).Inc()
	detail := crafttime.EstimateDetail(recipe, e.catalog, rs)
	logger.FromContext(ctx).Debug(LogMsgTimeComputed, "item", name, "seconds", detail.Seconds)
	return TimeQuote{
		Item:           recipe.ResultItemName,
		Seconds:        detail.Seconds,
		Detail:         detail,
		RulesetVersion: rs.Version,
	}, nil
}

// Tree builds the requirement tree for quantity units of name. Results are
// memoized per catalog generation and shared between callers, so they must
// be treated as read-only.
func (e *Engine) Tree(ctx context.Context, name string, quantity int) (*TreeResult, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	log := logger.FromContext(ctx)
	key := fmt.Sprintf("%d|%d|%s", e.generation, quantity, name)
	if cached, ok := e.trees.Get(key); ok {
		metrics.TreeMemoLookups.WithLabelValues(metrics.ResultHit).Inc()
		log.Debug(LogMsgTreeMemoHit, "item", name, "quantity", quantity)
		return cached.(*TreeResult), nil
	}
	metrics.TreeMemoLookups.WithLabelValues(metrics.ResultMiss).Inc()

	tree, err := deptree.Build(name, quantity, e.catalog)
	if err != nil {
		return nil, err
	}
	result := &TreeResult{
		Item:      name,
		Quantity:  quantity,
		Tree:      tree,
		Resources: deptree.Aggregate(tree.Root),
	}
	e.trees.SetDefault(key, result)
	metrics.ValuationsComputed.WithLabelValues(metrics.KindTree).Inc()

	log.Debug(LogMsgTreeBuilt, "item", name, "quantity", quantity,
		"cycles", len(tree.Cycles), "truncated", len(tree.Truncated))
	return result, nil
}

// Suggest returns item names close to a misspelt one
func (e *Engine) Suggest(name string) []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.catalog.Suggest(name)
}

func (e *Engine) recipeFor(name string) (catalog.Handle, *domain.Recipe, error) {
	h, ok := e.catalog.Handle(name)
	if !ok {
		return 0, nil, fmt.Errorf("%w: '%s'", domain.ErrItemNotFound, name)
	}
	recipe, ok := e.catalog.RecipeByHandle(h)
	if !ok {
		return 0, nil, fmt.Errorf("%w: '%s'", domain.ErrRecipeNotFound, name)
	}
	return h, recipe, nil
}
