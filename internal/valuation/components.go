package valuation

import (
	"github.com/osse101/Forgeworks_Go/internal/domain"
	"github.com/osse101/Forgeworks_Go/internal/utils"
)

// Components are the raw, unweighted scores of the multi-factor formula
type Components struct {
	Category   float64 `json:"category"`
	Tier       float64 `json:"tier"`
	Mechanic   float64 `json:"mechanic"`
	Modifier   float64 `json:"modifier"`
	Location   float64 `json:"location"`
	Frequency  float64 `json:"frequency"`
	Complexity float64 `json:"complexity"`
}

// Score computes the raw component scores of item under rs.
//
// Category is the mean over selected categories and is 0 when none are
// selected. Modifier and location means fall back to 1 when empty. Every
// name missing from its table counts as NeutralMultiplier.
func Score(item *domain.Item, rs *domain.Ruleset) Components {
	return Components{
		Category:   meanOf(rs.CategoryMultipliers, item.Categories, 0),
		Tier:       TierScore(item.Tier, rs.TierMultiplier),
		Mechanic:   lookup(rs.MechanicMultipliers, item.Mechanic),
		Modifier:   meanOf(rs.ModifierMultipliers, item.Modifiers, NeutralMultiplier),
		Location:   meanOf(rs.LocationMultipliers, item.Locations, NeutralMultiplier),
		Frequency:  lookup(rs.FrequencyMultipliers, item.FrequencyType),
		Complexity: lookup(rs.ComplexityMultipliers, item.CraftComplexity),
	}
}

// Weighted returns the weighted sum of the components
func (c Components) Weighted(w domain.Weights) float64 {
	return c.Category*w.Category +
		c.Tier*w.Tier +
		c.Mechanic*w.Mechanic +
		c.Modifier*w.Modifier +
		c.Location*w.Location +
		c.Frequency*w.Frequency +
		c.Complexity*w.CraftComplexity
}

// TierScore is 1 at tier one and grows linearly by multiplier per tier
func TierScore(tier int, multiplier float64) float64 {
	return 1 + float64(tier-1)*multiplier
}

// ComplexityMultiplier returns the configured multiplier for a complexity
// name, neutral when unset or unknown
func ComplexityMultiplier(rs *domain.Ruleset, complexity string) float64 {
	return lookup(rs.ComplexityMultipliers, complexity)
}

func lookup(table map[string]float64, name string) float64 {
	if name == "" {
		return NeutralMultiplier
	}
	if v, ok := table[name]; ok {
		return v
	}
	return NeutralMultiplier
}

func meanOf(table map[string]float64, names []string, empty float64) float64 {
	if len(names) == 0 {
		return empty
	}
	values := make([]float64, 0, len(names))
	for _, n := range names {
		values = append(values, lookup(table, n))
	}
	return utils.Mean(values, empty)
}
