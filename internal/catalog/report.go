package catalog

import (
	"github.com/osse101/Forgeworks_Go/internal/domain"
	"github.com/osse101/Forgeworks_Go/internal/naming"
)

// UnknownReference is an ingredient or fuel name that no item carries
type UnknownReference struct {
	Recipe      string   `json:"recipe"`
	Variant     int      `json:"variant"`
	ItemName    string   `json:"item"`
	Fuel        bool     `json:"fuel,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"`
}

// Report summarizes a catalog for the authoring UI. Unknown references do not
// block ingestion; they price at zero until fixed.
type Report struct {
	Items        int                `json:"items"`
	Recipes      int                `json:"recipes"`
	Fingerprint  string             `json:"fingerprint"`
	Unknown      []UnknownReference `json:"unknown,omitempty"`
	EmptyRecipes []string           `json:"empty_recipes,omitempty"`
}

// Clean reports whether every reference resolves
func (r Report) Clean() bool {
	return len(r.Unknown) == 0
}

// Report walks every variant and lists references that do not resolve, each
// with close item names
func (c *Catalog) Report() Report {
	report := Report{
		Items:       c.Len(),
		Recipes:     c.RecipeCount(),
		Fingerprint: c.fingerprint,
	}

	names := c.Names()
	for _, recipe := range c.Recipes() {
		if !recipe.IsMeaningful() {
			report.EmptyRecipes = append(report.EmptyRecipes, recipe.ResultItemName)
		}
		for vi := range recipe.Variants {
			variant := &recipe.Variants[vi]
			report.Unknown = c.collectUnknown(report.Unknown, recipe, vi, variant.Ingredients, false, names)
			report.Unknown = c.collectUnknown(report.Unknown, recipe, vi, variant.Fuel, true, names)
		}
	}
	return report
}

func (c *Catalog) collectUnknown(out []UnknownReference, recipe *domain.Recipe, variant int, list []domain.Ingredient, fuel bool, names []string) []UnknownReference {
	for _, ing := range list {
		if _, ok := c.handles[ing.ItemName]; ok {
			continue
		}
		out = append(out, UnknownReference{
			Recipe:      recipe.ResultItemName,
			Variant:     variant,
			ItemName:    ing.ItemName,
			Fuel:        fuel,
			Suggestions: naming.Suggest(ing.ItemName, names),
		})
	}
	return out
}

// Suggest returns the closest item names to a misspelt reference
func (c *Catalog) Suggest(name string) []string {
	return naming.Suggest(name, c.Names())
}
