package domain

// Item is a priced game entity. Name is the cross-reference key: recipes,
// ingredients and tree nodes all point at items by exact name.
type Item struct {
	Name            string   `json:"name" validate:"required,max=128" jsonschema:"required"`
	Tier            int      `json:"tier" validate:"min=1" jsonschema:"required,minimum=1"`
	Mechanic        string   `json:"mechanic,omitempty"`
	Categories      []string `json:"categories,omitempty"`
	Modifiers       []string `json:"modifiers,omitempty"`
	Locations       []string `json:"locations,omitempty"`
	FrequencyType   string   `json:"frequency_type,omitempty"`
	CraftComplexity string   `json:"craft_complexity,omitempty"`
	Subtype         string   `json:"subtype,omitempty"`

	// Harvest economics replace the multi-factor formula when IsHarvest is set
	IsHarvest        bool     `json:"is_harvest,omitempty"`
	GrowingSeasons   []string `json:"growing_seasons,omitempty"`
	GrowingDays      float64  `json:"growing_days,omitempty" validate:"finite,gte=0"`
	HarvestPerSeason float64  `json:"harvest_per_season,omitempty" validate:"finite,gte=0"`
	SeedCost         float64  `json:"seed_cost,omitempty" validate:"finite,gte=0"`

	// Precomputed by the crafted-value recalculation pass
	HasCraftRecipe bool `json:"has_craft_recipe,omitempty"`
	CraftValue     int  `json:"craft_value,omitempty" validate:"gte=0"`

	ImageRef string `json:"image_ref,omitempty"` // Visual asset shown on tree nodes
}

// GrowsIn reports whether a harvest item is in season. An item without a
// growing-season list grows all year.
func (i *Item) GrowsIn(season string) bool {
	if len(i.GrowingSeasons) == 0 {
		return true
	}
	for _, s := range i.GrowingSeasons {
		if s == season {
			return true
		}
	}
	return false
}

// Clone returns a copy that shares no slices with the original
func (i *Item) Clone() *Item {
	if i == nil {
		return nil
	}
	c := *i
	c.Categories = cloneStrings(i.Categories)
	c.Modifiers = cloneStrings(i.Modifiers)
	c.Locations = cloneStrings(i.Locations)
	c.GrowingSeasons = cloneStrings(i.GrowingSeasons)
	return &c
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
