package crafttime

// Fixed factors of the time model
const (
	// FallbackBaseSeconds is used when a complexity has no configured base time
	FallbackBaseSeconds = 30.0

	// TierTimeStep is the extra share of ingredient time per tier above one
	TierTimeStep = 0.2

	// OffSeasonRecipePenalty multiplies the whole craft of a season-restricted
	// recipe outside its seasons
	OffSeasonRecipePenalty = 1.5

	// OffSeasonIngredientPenalty multiplies the time of a harvest ingredient
	// that does not grow in the current season
	OffSeasonIngredientPenalty = 1.3

	// OffSeasonVariantPenalty multiplies a variant's ingredient time when any
	// of its ingredients was off season
	OffSeasonVariantPenalty = 1.2
)
