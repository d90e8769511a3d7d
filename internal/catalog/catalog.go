package catalog

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"slices"
	"sort"

	"github.com/osse101/Forgeworks_Go/internal/domain"
)

// Handle is the interned identity of an item name inside one catalog.
// Handles are dense, start at 1 and follow declaration order.
type Handle uint32

// NoHandle is the zero Handle; it never names an item
const NoHandle Handle = 0

// Document is the JSON exchange format of the design tool
type Document struct {
	Version     string           `json:"version,omitempty"`
	Description string           `json:"description,omitempty"`
	Items       []*domain.Item   `json:"items" validate:"dive" jsonschema:"required"`
	Recipes     []*domain.Recipe `json:"recipes,omitempty" validate:"dive"`
}

// Catalog is an interned, duplicate-free view of a Document. It implements
// domain.Lookup. A Catalog is not safe for concurrent mutation; the engine
// guards it.
type Catalog struct {
	version     string
	items       []*domain.Item
	handles     map[string]Handle
	recipes     map[Handle]*domain.Recipe
	recipeOrder []Handle
	fingerprint string
}

// New interns doc. Item names must be unique, every recipe's result item must
// resolve, every ingredient needs a name and a positive quantity, and no item
// may have two recipes. Ingredient names are not checked
// here: an unknown ingredient prices at zero, see Report.
func New(doc *Document) (*Catalog, error) {
	if doc == nil {
		return nil, fmt.Errorf("%w: catalog document is nil", domain.ErrInvalidInput)
	}

	c := &Catalog{
		version: doc.Version,
		items:   make([]*domain.Item, 0, len(doc.Items)),
		handles: make(map[string]Handle, len(doc.Items)),
		recipes: make(map[Handle]*domain.Recipe, len(doc.Recipes)),
	}

	for i, item := range doc.Items {
		if item == nil {
			return nil, fmt.Errorf("%w: "+ErrMsgNilItem, domain.ErrInvalidInput, i)
		}
		if _, exists := c.handles[item.Name]; exists {
			return nil, fmt.Errorf("%w: '%s'", domain.ErrDuplicateItemName, item.Name)
		}
		c.items = append(c.items, item.Clone())
		c.handles[item.Name] = Handle(len(c.items))
	}

	for i, recipe := range doc.Recipes {
		if recipe == nil {
			return nil, fmt.Errorf("%w: "+ErrMsgNilRecipe, domain.ErrInvalidInput, i)
		}
		if err := checkRecipe(recipe); err != nil {
			return nil, fmt.Errorf("recipe %d: %w", i, err)
		}
		h, ok := c.handles[recipe.ResultItemName]
		if !ok {
			return nil, fmt.Errorf("%w: recipe %d produces '%s'", domain.ErrUnknownResultItem, i, recipe.ResultItemName)
		}
		if _, exists := c.recipes[h]; exists {
			return nil, fmt.Errorf("%w: '%s'", domain.ErrDuplicateRecipe, recipe.ResultItemName)
		}
		c.recipes[h] = recipe
		c.recipeOrder = append(c.recipeOrder, h)
	}

	fp, err := fingerprint(doc)
	if err != nil {
		return nil, err
	}
	c.fingerprint = fp
	return c, nil
}

// checkRecipe rejects shapes that decoding-time validation would have caught
// for documents built in code
func checkRecipe(recipe *domain.Recipe) error {
	if recipe.ResultItemName == "" {
		return fmt.Errorf("%w: result item is empty", domain.ErrInvalidRecipe)
	}
	if recipe.ResultQuantity < 0 {
		return fmt.Errorf("%w: '%s' yields %d", domain.ErrInvalidRecipe, recipe.ResultItemName, recipe.ResultQuantity)
	}
	for _, v := range recipe.Variants {
		for _, ing := range slices.Concat(v.Ingredients, v.Fuel) {
			if ing.ItemName == "" || ing.Quantity < 1 {
				return fmt.Errorf("%w: '%s' needs %d of '%s'",
					domain.ErrInvalidRecipe, recipe.ResultItemName, ing.Quantity, ing.ItemName)
			}
		}
	}
	return nil
}

func fingerprint(doc *Document) (string, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf(ErrMsgFingerprintFailed, err)
	}
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:]), nil
}

// Handle resolves an item name to its handle
func (c *Catalog) Handle(name string) (Handle, bool) {
	h, ok := c.handles[name]
	return h, ok
}

// Item returns the item behind h, or nil for an unknown handle
func (c *Catalog) Item(h Handle) *domain.Item {
	if h == NoHandle || int(h) > len(c.items) {
		return nil
	}
	return c.items[h-1]
}

// Name returns the item name behind h
func (c *Catalog) Name(h Handle) string {
	if item := c.Item(h); item != nil {
		return item.Name
	}
	return ""
}

// ItemByName implements domain.ItemLookup
func (c *Catalog) ItemByName(name string) (*domain.Item, bool) {
	h, ok := c.handles[name]
	if !ok {
		return nil, false
	}
	return c.items[h-1], true
}

// RecipeFor implements domain.RecipeLookup
func (c *Catalog) RecipeFor(resultName string) (*domain.Recipe, bool) {
	h, ok := c.handles[resultName]
	if !ok {
		return nil, false
	}
	r, ok := c.recipes[h]
	return r, ok
}

// RecipeByHandle returns the recipe producing h
func (c *Catalog) RecipeByHandle(h Handle) (*domain.Recipe, bool) {
	r, ok := c.recipes[h]
	return r, ok
}

// Items returns every item in declaration order
func (c *Catalog) Items() []*domain.Item {
	out := make([]*domain.Item, len(c.items))
	copy(out, c.items)
	return out
}

// Recipes returns every recipe in declaration order
func (c *Catalog) Recipes() []*domain.Recipe {
	out := make([]*domain.Recipe, 0, len(c.recipeOrder))
	for _, h := range c.recipeOrder {
		out = append(out, c.recipes[h])
	}
	return out
}

// RecipeHandles returns the result handles of every recipe in declaration order
func (c *Catalog) RecipeHandles() []Handle {
	out := make([]Handle, len(c.recipeOrder))
	copy(out, c.recipeOrder)
	return out
}

// Names returns every item name, sorted
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.items))
	for _, item := range c.items {
		names = append(names, item.Name)
	}
	sort.Strings(names)
	return names
}

// Len is the number of items
func (c *Catalog) Len() int { return len(c.items) }

// RecipeCount is the number of recipes
func (c *Catalog) RecipeCount() int { return len(c.recipeOrder) }

// Version is the document version the catalog was built from
func (c *Catalog) Version() string { return c.version }

// Fingerprint is the sha256 of the normalized source document
func (c *Catalog) Fingerprint() string { return c.fingerprint }

// SetCraftValue stores a precomputed crafted value on the item behind h
func (c *Catalog) SetCraftValue(h Handle, value int) {
	item := c.Item(h)
	if item == nil {
		return
	}
	item.HasCraftRecipe = true
	item.CraftValue = value
}

// ResetCraftValues clears every precomputed crafted value
func (c *Catalog) ResetCraftValues() {
	for _, item := range c.items {
		item.HasCraftRecipe = false
		item.CraftValue = 0
	}
}

// Clone copies the catalog with private item records. Recipes are shared
// because nothing mutates them after ingestion.
func (c *Catalog) Clone() *Catalog {
	out := &Catalog{
		version:     c.version,
		items:       make([]*domain.Item, len(c.items)),
		handles:     c.handles,
		recipes:     c.recipes,
		recipeOrder: c.recipeOrder,
		fingerprint: c.fingerprint,
	}
	for i, item := range c.items {
		out.items[i] = item.Clone()
	}
	return out
}

// Document rebuilds the exchange document, including current crafted values
func (c *Catalog) Document() *Document {
	return &Document{
		Version: c.version,
		Items:   c.Items(),
		Recipes: c.Recipes(),
	}
}
