package validation

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/invopop/jsonschema"
)

// BuildSchema reflects a JSON schema from the Go type of v. Only fields
// tagged jsonschema:"required" are required; unknown properties are allowed
// so the browser tool can carry its own annotations.
func BuildSchema(v any, title, description string) (*jsonschema.Schema, error) {
	reflector := jsonschema.Reflector{
		RequiredFromJSONSchemaTags: true,
		DoNotReference:             true,
		AllowAdditionalProperties:  true,
	}

	schema := reflector.ReflectFromType(reflect.TypeOf(v))
	if schema == nil {
		return nil, fmt.Errorf("failed to reflect schema for %T", v)
	}
	schema.Version = ""
	schema.Title = title
	schema.Description = description
	return schema, nil
}

// GenerateSchema is BuildSchema marshalled to indented JSON
func GenerateSchema(v any, title, description string) ([]byte, error) {
	schema, err := BuildSchema(v, title, description)
	if err != nil {
		return nil, err
	}
	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}
	return append(data, '\n'), nil
}
