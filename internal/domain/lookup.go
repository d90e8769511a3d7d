package domain

// ItemLookup finds items by exact name
type ItemLookup interface {
	ItemByName(name string) (*Item, bool)
}

// RecipeLookup finds the recipe producing an item, by exact result name
type RecipeLookup interface {
	RecipeFor(resultName string) (*Recipe, bool)
}

// Lookup is the collaborator the crafting and tree components resolve names through
type Lookup interface {
	ItemLookup
	RecipeLookup
}

// ItemIndex is a name-keyed item table satisfying ItemLookup
type ItemIndex map[string]*Item

// ItemByName implements ItemLookup
func (x ItemIndex) ItemByName(name string) (*Item, bool) {
	item, ok := x[name]
	return item, ok
}

// IndexItems builds an ItemIndex; later duplicates replace earlier ones
func IndexItems(items []*Item) ItemIndex {
	x := make(ItemIndex, len(items))
	for _, item := range items {
		x[item.Name] = item
	}
	return x
}
