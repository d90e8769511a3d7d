package catalog

// Schema names registered with the schema validator
const (
	SchemaCatalog = "catalog"
	SchemaRuleset = "ruleset"
)

// Schema titles and descriptions used for generation
const (
	SchemaCatalogTitle       = "Forgeworks catalog"
	SchemaCatalogDescription = "Items and crafting recipes authored in the design tool"
	SchemaRulesetTitle       = "Forgeworks ruleset"
	SchemaRulesetDescription = "Tunable valuation, crafting and time model configuration"
)

// Error message constants
const (
	ErrMsgNilItem           = "item at index %d is null"
	ErrMsgNilRecipe         = "recipe at index %d is null"
	ErrMsgReadFileFailed    = "failed to read %s: %w"
	ErrMsgParseFailed       = "failed to parse %s document: %w"
	ErrMsgSchemaGenFailed   = "failed to generate %s schema: %w"
	ErrMsgSchemaRegFailed   = "failed to register %s schema: %w"
	ErrMsgFingerprintFailed = "failed to fingerprint catalog: %w"
)
