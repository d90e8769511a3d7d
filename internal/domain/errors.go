package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Item errors
	ErrMsgItemNotFound      = "item not found"
	ErrMsgDuplicateItemName = "duplicate item name"

	// Recipe errors
	ErrMsgRecipeNotFound    = "recipe not found"
	ErrMsgInvalidRecipe     = "invalid recipe"
	ErrMsgDuplicateRecipe   = "duplicate recipe for result item"
	ErrMsgUnknownResultItem = "recipe result item does not resolve"

	// Ruleset errors
	ErrMsgInvalidRuleset = "invalid ruleset"
	ErrMsgNonFinite      = "value is not a finite number"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Item errors
	ErrItemNotFound      = errors.New(ErrMsgItemNotFound)
	ErrDuplicateItemName = errors.New(ErrMsgDuplicateItemName)

	// Recipe errors
	ErrRecipeNotFound    = errors.New(ErrMsgRecipeNotFound)
	ErrInvalidRecipe     = errors.New(ErrMsgInvalidRecipe)
	ErrDuplicateRecipe   = errors.New(ErrMsgDuplicateRecipe)
	ErrUnknownResultItem = errors.New(ErrMsgUnknownResultItem)

	// Ruleset errors
	ErrInvalidRuleset = errors.New(ErrMsgInvalidRuleset)
	ErrNonFinite      = errors.New(ErrMsgNonFinite)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
