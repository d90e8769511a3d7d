package domain

// Default seasons offered to a new ruleset
var DefaultSeasons = []string{"Spring", "Summer", "Autumn", "Winter"}

// Default ruleset tuning
const (
	DefaultRulesetName               = "default"
	DefaultBaseValue                 = 100.0
	DefaultTierMultiplier            = 0.5
	DefaultGrowthDayMultiplier       = 10.0
	DefaultSellDiscount              = 0.5
	DefaultBuyMarkup                 = 0.2
	DefaultCraftBaseMultiplier       = 1.2
	DefaultCraftComplexityMultiplier = 0.1
	DefaultIngredientBaseSeconds     = 3.0
	DefaultQuantityScaling           = 0.7
	DefaultLevelMultiplier           = 0.1
)

// WeightSumTolerance is how far the weight total may drift from 1.0 before
// the advisory flags it
const WeightSumTolerance = 1e-6
