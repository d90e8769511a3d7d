package valuation

import (
	"github.com/osse101/Forgeworks_Go/internal/domain"
	"github.com/osse101/Forgeworks_Go/internal/utils"
)

// SeasonalModifier returns the price factor for item in season: the
// geometric mean of its categories' season multipliers, times the subtype's
// season multiplier, times OffSeasonScarcity for a harvest item that does
// not grow in season. A season the ruleset does not know is neutral.
func SeasonalModifier(item *domain.Item, rs *domain.Ruleset, season string) float64 {
	if !KnownSeason(rs, season) {
		return NeutralMultiplier
	}

	perCategory := make([]float64, 0, len(item.Categories))
	for _, cat := range item.Categories {
		perCategory = append(perCategory, seasonEntry(rs.CategorySeasonMultipliers, cat, season))
	}
	modifier := utils.GeometricMean(perCategory, NeutralMultiplier)

	if item.Subtype != "" {
		modifier *= seasonEntry(rs.SubtypeSeasonMultipliers, item.Subtype, season)
	}

	if item.IsHarvest && !item.GrowsIn(season) {
		modifier *= OffSeasonScarcity
	}
	return modifier
}

// KnownSeason reports whether season can modulate prices under rs. With no
// season list configured any non-empty name is accepted.
func KnownSeason(rs *domain.Ruleset, season string) bool {
	if season == "" {
		return false
	}
	if len(rs.Seasons) == 0 {
		return true
	}
	for _, s := range rs.Seasons {
		if s == season {
			return true
		}
	}
	return false
}

func seasonEntry(table map[string]map[string]float64, name, season string) float64 {
	bySeason, ok := table[name]
	if !ok {
		return NeutralMultiplier
	}
	if v, ok := bySeason[season]; ok {
		return v
	}
	return NeutralMultiplier
}
