package domain

// Ingredient is a single material requirement of a variant
type Ingredient struct {
	ItemName string `json:"item" validate:"required" jsonschema:"required"`
	Quantity int    `json:"quantity" validate:"min=1" jsonschema:"required,minimum=1"`
}

// Variant is one alternative production path of a recipe. Fuel is consumed
// by the craft but does not scale into the output.
type Variant struct {
	Name        string       `json:"name,omitempty"`
	Ingredients []Ingredient `json:"ingredients" validate:"dive" jsonschema:"required"`
	Fuel        []Ingredient `json:"fuel,omitempty" validate:"dive"`
}

// Recipe produces ResultQuantity units of ResultItemName
type Recipe struct {
	ResultItemName string    `json:"result_item" validate:"required" jsonschema:"required"`
	ResultQuantity int       `json:"result_quantity,omitempty" validate:"gte=0"`
	Level          int       `json:"level,omitempty" validate:"gte=0"`
	Variants       []Variant `json:"variants" validate:"dive" jsonschema:"required"`

	// Seasons restricts availability; empty means available all year
	Seasons               []string           `json:"seasons,omitempty"`
	SeasonCostMultipliers map[string]float64 `json:"season_cost_multipliers,omitempty" validate:"dive,finite,gte=0"`
}

// ResultAmount returns the output quantity per craft, treating unset as one
func (r *Recipe) ResultAmount() int {
	if r.ResultQuantity <= 0 {
		return 1
	}
	return r.ResultQuantity
}

// EffectiveLevel returns the recipe level, treating unset as level one
func (r *Recipe) EffectiveLevel() int {
	if r.Level <= 0 {
		return 1
	}
	return r.Level
}

// SeasonRestricted reports whether the recipe is only craftable in some seasons
func (r *Recipe) SeasonRestricted() bool {
	return len(r.Seasons) > 0
}

// AvailableIn reports whether the recipe can be crafted in the given season
func (r *Recipe) AvailableIn(season string) bool {
	if !r.SeasonRestricted() {
		return true
	}
	for _, s := range r.Seasons {
		if s == season {
			return true
		}
	}
	return false
}

// FirstVariant returns the designer's primary production path, or nil
func (r *Recipe) FirstVariant() *Variant {
	if len(r.Variants) == 0 {
		return nil
	}
	return &r.Variants[0]
}

// IsMeaningful reports whether the recipe has at least one variant with at
// least one ingredient. Costing an empty recipe yields a zero sentinel.
func (r *Recipe) IsMeaningful() bool {
	for _, v := range r.Variants {
		if len(v.Ingredients) > 0 {
			return true
		}
	}
	return false
}
