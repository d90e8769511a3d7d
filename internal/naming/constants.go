package naming

// SchemaComplexityAliases is the schema identifier for complexity alias files
const SchemaComplexityAliases = "complexity-aliases"

// Canonical complexity keys understood by the built-in alias table
const (
	ComplexitySimple  = "simple"
	ComplexityMedium  = "medium"
	ComplexityComplex = "complex"
	ComplexityMaster  = "master"
)

// MaxSuggestions bounds how many candidates Suggest returns
const MaxSuggestions = 3

// Error context messages for wrapped errors during configuration loading
const (
	ErrContextFailedToParseConfig = "failed to parse config %s"
	ErrContextFailedToDecodeData  = "failed to decode data for %s"
)

// Configuration validation error messages
const (
	ErrMsgMissingVersionField = "%s missing version field"
	ErrMsgInvalidSchema       = "invalid schema in %s: expected '%s', got '%s'"
)
