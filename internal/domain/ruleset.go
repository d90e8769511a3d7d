package domain

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
)

// Weights scale each raw component score of the valuation formula.
// They conventionally sum to 1.0 but nothing enforces it.
type Weights struct {
	Category        float64 `json:"category" validate:"finite"`
	Tier            float64 `json:"tier" validate:"finite"`
	Mechanic        float64 `json:"mechanic" validate:"finite"`
	Modifier        float64 `json:"modifier" validate:"finite"`
	Location        float64 `json:"location" validate:"finite"`
	Frequency       float64 `json:"frequency" validate:"finite"`
	CraftComplexity float64 `json:"craft_complexity" validate:"finite"`
}

// Sum returns the total of all weights
func (w Weights) Sum() float64 {
	return w.Category + w.Tier + w.Mechanic + w.Modifier + w.Location + w.Frequency + w.CraftComplexity
}

// TimeModel configures crafting duration estimates
type TimeModel struct {
	ComplexityBaseSeconds map[string]float64 `json:"complexity_base_seconds,omitempty" validate:"dive,finite,gte=0"`
	IngredientBaseSeconds float64            `json:"ingredient_base_seconds" validate:"finite,gte=0"`
	QuantityScaling       float64            `json:"quantity_scaling" validate:"finite,gte=0"`
	LevelMultiplier       float64            `json:"level_multiplier" validate:"finite"`
	CategoryMultipliers   map[string]float64 `json:"category_multipliers,omitempty" validate:"dive,finite,gte=0"`

	// ComplexityAliases maps alternative spellings and translations of a
	// complexity name onto the key used in ComplexityBaseSeconds
	ComplexityAliases map[string]string `json:"complexity_aliases,omitempty"`
}

// Ruleset is the tunable configuration every valuation is a pure function of.
// A ruleset is never edited in place: Revise returns a new version so caches
// keyed on Key() can be invalidated.
type Ruleset struct {
	ID        string    `json:"id"`
	Name      string    `json:"name" validate:"required" jsonschema:"required"`
	Version   int       `json:"version"`
	CreatedAt time.Time `json:"created_at"`

	BaseValue      float64 `json:"base_value" validate:"finite,gte=0" jsonschema:"required"`
	Weights        Weights `json:"weights" jsonschema:"required"`
	TierMultiplier float64 `json:"tier_multiplier" validate:"finite"`

	CategoryMultipliers   map[string]float64 `json:"category_multipliers,omitempty" validate:"dive,finite"`
	MechanicMultipliers   map[string]float64 `json:"mechanic_multipliers,omitempty" validate:"dive,finite"`
	ModifierMultipliers   map[string]float64 `json:"modifier_multipliers,omitempty" validate:"dive,finite"`
	LocationMultipliers   map[string]float64 `json:"location_multipliers,omitempty" validate:"dive,finite"`
	FrequencyMultipliers  map[string]float64 `json:"frequency_multipliers,omitempty" validate:"dive,finite"`
	ComplexityMultipliers map[string]float64 `json:"complexity_multipliers,omitempty" validate:"dive,finite"`
	SubtypeMultipliers    map[string]float64 `json:"subtype_multipliers,omitempty" validate:"dive,finite"`

	Seasons                   []string                      `json:"seasons,omitempty"`
	CurrentSeason             string                        `json:"current_season,omitempty"`
	CategorySeasonMultipliers map[string]map[string]float64 `json:"category_season_multipliers,omitempty" validate:"dive,dive,finite"`
	SubtypeSeasonMultipliers  map[string]map[string]float64 `json:"subtype_season_multipliers,omitempty" validate:"dive,dive,finite"`

	GrowthDayMultiplier float64 `json:"growth_day_multiplier" validate:"finite"`
	SellDiscount        float64 `json:"sell_discount" validate:"finite,gte=0,lte=1"`
	BuyMarkup           float64 `json:"buy_markup" validate:"finite,gte=0"`

	CraftBaseMultiplier       float64 `json:"craft_base_multiplier" validate:"finite"`
	CraftComplexityMultiplier float64 `json:"craft_complexity_multiplier" validate:"finite"`

	Time TimeModel `json:"time"`
}

// NewRuleset creates a first-version ruleset with the default tuning
func NewRuleset(name string) *Ruleset {
	return &Ruleset{
		ID:        uuid.NewString(),
		Name:      name,
		Version:   1,
		CreatedAt: time.Now().UTC(),

		BaseValue: DefaultBaseValue,
		Weights: Weights{
			Category:        0.25,
			Tier:            0.25,
			Mechanic:        0.1,
			Modifier:        0.1,
			Location:        0.1,
			Frequency:       0.1,
			CraftComplexity: 0.1,
		},
		TierMultiplier: DefaultTierMultiplier,

		Seasons:       append([]string(nil), DefaultSeasons...),
		CurrentSeason: DefaultSeasons[0],

		GrowthDayMultiplier: DefaultGrowthDayMultiplier,
		SellDiscount:        DefaultSellDiscount,
		BuyMarkup:           DefaultBuyMarkup,

		CraftBaseMultiplier:       DefaultCraftBaseMultiplier,
		CraftComplexityMultiplier: DefaultCraftComplexityMultiplier,

		Time: TimeModel{
			IngredientBaseSeconds: DefaultIngredientBaseSeconds,
			QuantityScaling:       DefaultQuantityScaling,
			LevelMultiplier:       DefaultLevelMultiplier,
		},
	}
}

// Key identifies this exact revision of the ruleset
func (r *Ruleset) Key() string {
	return fmt.Sprintf("%s@%d", r.ID, r.Version)
}

// Revise returns a deep copy with mutate applied, a bumped version and a
// fresh creation timestamp. The receiver is left untouched.
func (r *Ruleset) Revise(mutate func(*Ruleset)) *Ruleset {
	next := r.Clone()
	if mutate != nil {
		mutate(next)
	}
	next.ID = r.ID
	next.Version = r.Version + 1
	next.CreatedAt = time.Now().UTC()
	return next
}

// MergeComplexityAliases adds shared aliases the ruleset does not define
// itself. Entries already present in the ruleset are kept.
func (r *Ruleset) MergeComplexityAliases(shared map[string]string) {
	if len(shared) == 0 {
		return
	}
	if r.Time.ComplexityAliases == nil {
		r.Time.ComplexityAliases = make(map[string]string, len(shared))
	}
	for alias, canonical := range shared {
		if _, ok := r.Time.ComplexityAliases[alias]; !ok {
			r.Time.ComplexityAliases[alias] = canonical
		}
	}
}

// WeightSumAdvisory reports the weight total and whether it is close to 1.0.
// The result is informational only.
func (r *Ruleset) WeightSumAdvisory() (float64, bool) {
	sum := r.Weights.Sum()
	return sum, math.Abs(sum-1.0) <= WeightSumTolerance
}

// Clone deep-copies the ruleset, including every map and slice
func (r *Ruleset) Clone() *Ruleset {
	if r == nil {
		return nil
	}
	c := *r
	c.CategoryMultipliers = cloneFloats(r.CategoryMultipliers)
	c.MechanicMultipliers = cloneFloats(r.MechanicMultipliers)
	c.ModifierMultipliers = cloneFloats(r.ModifierMultipliers)
	c.LocationMultipliers = cloneFloats(r.LocationMultipliers)
	c.FrequencyMultipliers = cloneFloats(r.FrequencyMultipliers)
	c.ComplexityMultipliers = cloneFloats(r.ComplexityMultipliers)
	c.SubtypeMultipliers = cloneFloats(r.SubtypeMultipliers)
	c.Seasons = cloneStrings(r.Seasons)
	c.CategorySeasonMultipliers = cloneNested(r.CategorySeasonMultipliers)
	c.SubtypeSeasonMultipliers = cloneNested(r.SubtypeSeasonMultipliers)

	c.Time.ComplexityBaseSeconds = cloneFloats(r.Time.ComplexityBaseSeconds)
	c.Time.CategoryMultipliers = cloneFloats(r.Time.CategoryMultipliers)
	if r.Time.ComplexityAliases != nil {
		c.Time.ComplexityAliases = make(map[string]string, len(r.Time.ComplexityAliases))
		for k, v := range r.Time.ComplexityAliases {
			c.Time.ComplexityAliases[k] = v
		}
	}
	return &c
}

func cloneFloats(in map[string]float64) map[string]float64 {
	if in == nil {
		return nil
	}
	out := make(map[string]float64, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func cloneNested(in map[string]map[string]float64) map[string]map[string]float64 {
	if in == nil {
		return nil
	}
	out := make(map[string]map[string]float64, len(in))
	for k, v := range in {
		out[k] = cloneFloats(v)
	}
	return out
}
