package crafting

import (
	"github.com/osse101/Forgeworks_Go/internal/domain"
	"github.com/osse101/Forgeworks_Go/internal/utils"
	"github.com/osse101/Forgeworks_Go/internal/valuation"
)

// ProfitMultiplier is craftBase + complexity multiplier × craftComplexity for
// the recipe's result item. An unresolved result item has neutral complexity.
func ProfitMultiplier(recipe *domain.Recipe, items domain.ItemLookup, rs *domain.Ruleset) float64 {
	complexity := valuation.NeutralMultiplier
	if result, ok := items.ItemByName(recipe.ResultItemName); ok {
		complexity = valuation.ComplexityMultiplier(rs, result.CraftComplexity)
	}
	return rs.CraftBaseMultiplier + complexity*rs.CraftComplexityMultiplier
}

// ResultValue is the sale value of the crafted item: crafting cost marked up
// by the profit multiplier. This is what the recalculation pass stores as
// the item's CraftValue.
func ResultValue(recipe *domain.Recipe, items domain.ItemLookup, rs *domain.Ruleset) int {
	if recipe == nil {
		return 0
	}
	cost := CraftingCost(recipe, items, rs)
	return utils.RoundNonNegative(float64(cost) * ProfitMultiplier(recipe, items, rs))
}

// SeasonalCraftingCost applies the recipe's cost multiplier for season to
// CraftingCost. Seasons without an entry are neutral.
func SeasonalCraftingCost(recipe *domain.Recipe, items domain.ItemLookup, rs *domain.Ruleset, season string) int {
	if recipe == nil {
		return 0
	}
	cost := CraftingCost(recipe, items, rs)
	multiplier, ok := recipe.SeasonCostMultipliers[season]
	if !ok {
		return cost
	}
	return utils.RoundNonNegative(float64(cost) * multiplier)
}
