package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details for security reasons.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgRequestTooLarge       = "Request body too large"

	// Parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgMissingPathParam  = "Missing %s path parameter"
	ErrMsgInvalidQuantity   = "Quantity must be a positive integer"

	// Valuation error messages
	ErrMsgPriceFailed = "Failed to compute price"
	ErrMsgCostFailed  = "Failed to compute crafting cost"
	ErrMsgTimeFailed  = "Failed to estimate crafting time"
	ErrMsgTreeFailed  = "Failed to build dependency tree"

	// Configuration error messages
	ErrMsgRulesetRejected = "Ruleset rejected"
	ErrMsgCatalogRejected = "Catalog rejected"
	ErrMsgRecalcFailed    = "Recalculation failed"
)

// Success messages for API responses
const (
	MsgRecalcScheduled = "Recalculation scheduled"
	MsgRecalcCompleted = "Recalculation completed"
	MsgRecalcFlushed   = "Pending recalculation enqueued"
	MsgRecalcNothing   = "No recalculation pending"
)

// Query and path parameter names
const (
	ParamName     = "name"
	ParamSeason   = "season"
	ParamQuantity = "quantity"
)

// Recalculation modes
const (
	RecalcModeSync  = "sync"
	RecalcModeAsync = "async"
	RecalcModeFlush = "flush"
)

// DefaultMaxBodyBytes caps uploaded catalogs and rulesets when the server
// passes no limit
const DefaultMaxBodyBytes = 8 << 20
