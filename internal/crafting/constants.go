package crafting

// NoVariant is returned as the cheapest index of a recipe without variants
const NoVariant = -1
