package crafttime

import (
	"math"

	"github.com/osse101/Forgeworks_Go/internal/domain"
	"github.com/osse101/Forgeworks_Go/internal/naming"
	"github.com/osse101/Forgeworks_Go/internal/utils"
)

// Estimation explains how a crafting duration was reached
type Estimation struct {
	BaseSeconds       float64 `json:"base_seconds"`
	LevelFactor       float64 `json:"level_factor"`
	IngredientSeconds float64 `json:"ingredient_seconds"`
	Variant           int     `json:"variant"`
	SeasonMultiplier  float64 `json:"season_multiplier"`
	Seconds           int     `json:"seconds"`
}

// Estimate returns the crafting duration of recipe in whole seconds, using
// the fastest variant and the ruleset's current season
func Estimate(recipe *domain.Recipe, items domain.ItemLookup, rs *domain.Ruleset) int {
	return EstimateDetail(recipe, items, rs).Seconds
}

// EstimateDetail is Estimate with its intermediate terms
func EstimateDetail(recipe *domain.Recipe, items domain.ItemLookup, rs *domain.Ruleset) Estimation {
	est := Estimation{Variant: -1, SeasonMultiplier: 1}
	if recipe == nil || rs == nil {
		return est
	}
	season := rs.CurrentSeason

	complexity := ""
	if result, ok := items.ItemByName(recipe.ResultItemName); ok {
		complexity = result.CraftComplexity
	}
	est.BaseSeconds = BaseSeconds(rs, complexity)
	est.LevelFactor = LevelFactor(recipe.EffectiveLevel(), rs.Time.LevelMultiplier)

	for i := range recipe.Variants {
		t := VariantSeconds(&recipe.Variants[i], items, rs, season)
		if est.Variant == -1 || t < est.IngredientSeconds {
			est.Variant, est.IngredientSeconds = i, t
		}
	}

	if season != "" && !recipe.AvailableIn(season) {
		est.SeasonMultiplier = OffSeasonRecipePenalty
	}

	total := (est.BaseSeconds*est.LevelFactor + est.IngredientSeconds) * est.SeasonMultiplier
	est.Seconds = utils.RoundNonNegative(total)
	return est
}

// BaseSeconds looks up the configured base time for a complexity name,
// matching across spellings and translations, else FallbackBaseSeconds
func BaseSeconds(rs *domain.Ruleset, complexity string) float64 {
	if v, ok := naming.LookupComplexity(rs.Time.ComplexityBaseSeconds, complexity, rs.Time.ComplexityAliases); ok {
		return v
	}
	return FallbackBaseSeconds
}

// LevelFactor is 1 at level one and grows by multiplier per level
func LevelFactor(level int, multiplier float64) float64 {
	return 1 + float64(level-1)*multiplier
}

// IngredientSeconds is the time one ingredient line adds:
// base × category multiplier × tier factor × quantity^scaling
func IngredientSeconds(base, categoryMultiplier float64, tier, quantity int, scaling float64) float64 {
	tierFactor := 1 + float64(tier-1)*TierTimeStep
	return base * categoryMultiplier * tierFactor * math.Pow(float64(quantity), scaling)
}

// VariantSeconds sums ingredient time for one variant in season, applying
// the off-season harvest penalties. Unresolved ingredients count as tier one
// with neutral category multipliers.
func VariantSeconds(variant *domain.Variant, items domain.ItemLookup, rs *domain.Ruleset, season string) float64 {
	total := 0.0
	anyOffSeason := false
	for _, ing := range variant.Ingredients {
		tier, catMult := 1, 1.0
		offSeason := false
		if item, ok := items.ItemByName(ing.ItemName); ok {
			tier = item.Tier
			catMult = categoryTimeMultiplier(rs, item.Categories)
			offSeason = season != "" && item.IsHarvest && !item.GrowsIn(season)
		}

		t := IngredientSeconds(rs.Time.IngredientBaseSeconds, catMult, tier, ing.Quantity, rs.Time.QuantityScaling)
		if offSeason {
			t *= OffSeasonIngredientPenalty
			anyOffSeason = true
		}
		total += t
	}
	if anyOffSeason {
		total *= OffSeasonVariantPenalty
	}
	return total
}

func categoryTimeMultiplier(rs *domain.Ruleset, categories []string) float64 {
	values := make([]float64, 0, len(categories))
	for _, c := range categories {
		if v, ok := rs.Time.CategoryMultipliers[c]; ok {
			values = append(values, v)
		} else {
			values = append(values, 1)
		}
	}
	return utils.Mean(values, 1)
}
