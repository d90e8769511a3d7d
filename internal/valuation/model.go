package valuation

import (
	"github.com/osse101/Forgeworks_Go/internal/domain"
	"github.com/osse101/Forgeworks_Go/internal/utils"
)

// Price returns the currency value of item under rs in season, never negative.
//
// A crafted item with a positive precomputed CraftValue is priced by its
// recipe. Harvest items use seed economics. Everything else goes through
// the weighted multi-factor formula.
func Price(item *domain.Item, rs *domain.Ruleset, season string) int {
	if item == nil || rs == nil {
		return 0
	}

	if item.HasCraftRecipe && item.CraftValue > 0 {
		return item.CraftValue
	}

	if item.IsHarvest {
		base := HarvestBase(item, rs)
		return utils.RoundNonNegative(float64(base) * SeasonalModifier(item, rs, season))
	}

	total := Score(item, rs).Weighted(rs.Weights) * rs.BaseValue
	if item.Subtype != "" {
		total *= lookup(rs.SubtypeMultipliers, item.Subtype)
	}
	total *= SeasonalModifier(item, rs, season)

	return utils.RoundNonNegative(total)
}

// CurrentPrice prices item in the ruleset's current season
func CurrentPrice(item *domain.Item, rs *domain.Ruleset) int {
	if rs == nil {
		return 0
	}
	return Price(item, rs, rs.CurrentSeason)
}

// HarvestBase is the per-unit cost of growing a harvest item:
// (seed cost + growing days × growth-day multiplier) / yield, rounded.
// A non-positive yield counts as one unit.
func HarvestBase(item *domain.Item, rs *domain.Ruleset) int {
	yield := item.HarvestPerSeason
	if yield <= 0 {
		yield = 1
	}
	return utils.RoundNonNegative((item.SeedCost + item.GrowingDays*rs.GrowthDayMultiplier) / yield)
}

// SellPrice is what a shop pays for item in the current season
func SellPrice(item *domain.Item, rs *domain.Ruleset) int {
	return SellFromValue(CurrentPrice(item, rs), rs)
}

// BuyPrice is what a shop charges for item in the current season
func BuyPrice(item *domain.Item, rs *domain.Ruleset) int {
	return BuyFromValue(CurrentPrice(item, rs), rs)
}

// SellFromValue applies the sell discount to an already computed value
func SellFromValue(value int, rs *domain.Ruleset) int {
	return utils.RoundNonNegative(float64(value) * (1 - rs.SellDiscount))
}

// BuyFromValue applies the buy markup to an already computed value
func BuyFromValue(value int, rs *domain.Ruleset) int {
	return utils.RoundNonNegative(float64(value) * (1 + rs.BuyMarkup))
}
