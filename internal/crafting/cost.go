package crafting

import (
	"github.com/osse101/Forgeworks_Go/internal/domain"
	"github.com/osse101/Forgeworks_Go/internal/valuation"
)

// CostResult is the detailed cost of one variant. Missing lists ingredient
// and fuel names that did not resolve; they contributed zero to the totals.
type CostResult struct {
	Total    int      `json:"total"`
	FuelCost int      `json:"fuel_cost"`
	Missing  []string `json:"missing,omitempty"`
}

// Complete reports whether every ingredient and fuel resolved
func (c CostResult) Complete() bool {
	return len(c.Missing) == 0
}

// VariantCost is one row of a recipe's variant breakdown
type VariantCost struct {
	Index    int    `json:"index"`
	Name     string `json:"name,omitempty"`
	Cheapest bool   `json:"cheapest"`
	CostResult
}

// IngredientsCost sums price × quantity over the variant's ingredients,
// priced in the ruleset's current season. Unresolved ingredients count as 0.
func IngredientsCost(variant *domain.Variant, items domain.ItemLookup, rs *domain.Ruleset) int {
	return IngredientsCostDetail(variant, items, rs).Total
}

// IngredientsCostDetail is IngredientsCost with fuel priced separately and
// unresolved names reported. Fuel never enters Total.
func IngredientsCostDetail(variant *domain.Variant, items domain.ItemLookup, rs *domain.Ruleset) CostResult {
	var res CostResult
	if variant == nil {
		return res
	}
	res.Total = sumPrices(variant.Ingredients, items, rs, &res.Missing)
	res.FuelCost = sumPrices(variant.Fuel, items, rs, &res.Missing)
	return res
}

func sumPrices(list []domain.Ingredient, items domain.ItemLookup, rs *domain.Ruleset, missing *[]string) int {
	total := 0
	for _, ing := range list {
		item, ok := items.ItemByName(ing.ItemName)
		if !ok {
			*missing = append(*missing, ing.ItemName)
			continue
		}
		total += valuation.CurrentPrice(item, rs) * ing.Quantity
	}
	return total
}

// CheapestVariant returns the index and ingredient cost of the cheapest
// variant. Ties go to the earliest variant. A recipe without variants
// returns NoVariant and 0.
func CheapestVariant(recipe *domain.Recipe, items domain.ItemLookup, rs *domain.Ruleset) (int, int) {
	best, bestCost := NoVariant, 0
	if recipe == nil {
		return best, bestCost
	}
	for i := range recipe.Variants {
		cost := IngredientsCost(&recipe.Variants[i], items, rs)
		if best == NoVariant || cost < bestCost {
			best, bestCost = i, cost
		}
	}
	return best, bestCost
}

// CraftingCost is the minimum ingredient cost over the recipe's variants,
// 0 for a recipe without variants
func CraftingCost(recipe *domain.Recipe, items domain.ItemLookup, rs *domain.Ruleset) int {
	_, cost := CheapestVariant(recipe, items, rs)
	return cost
}

// Breakdown prices every variant, flagging the one CraftingCost picks
func Breakdown(recipe *domain.Recipe, items domain.ItemLookup, rs *domain.Ruleset) []VariantCost {
	if recipe == nil {
		return nil
	}
	rows := make([]VariantCost, 0, len(recipe.Variants))
	best := NoVariant
	for i := range recipe.Variants {
		detail := IngredientsCostDetail(&recipe.Variants[i], items, rs)
		if best == NoVariant || detail.Total < rows[best].Total {
			best = i
		}
		rows = append(rows, VariantCost{Index: i, Name: recipe.Variants[i].Name, CostResult: detail})
	}
	if best != NoVariant {
		rows[best].Cheapest = true
	}
	return rows
}
