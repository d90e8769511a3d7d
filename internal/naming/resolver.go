package naming

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadComplexityAliases reads a versioned alias file of the form
// {"version": "1", "schema": "complexity-aliases", "aliases": {"leicht": "simple"}}.
// A missing file yields an empty table.
func LoadComplexityAliases(path string) (map[string]string, error) {
	var config struct {
		Aliases map[string]string `json:"aliases"`
	}
	if err := loadVersionedConfig(path, &config, SchemaComplexityAliases); err != nil {
		return nil, err
	}
	if config.Aliases == nil {
		return map[string]string{}, nil
	}
	return config.Aliases, nil
}

func loadVersionedConfig(path string, target interface{}, schema string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	// Wrapper to handle common fields
	var wrapper struct {
		Version string `json:"version"`
		Schema  string `json:"schema"`
	}
	if err := json.Unmarshal(data, &wrapper); err != nil {
		return fmt.Errorf(ErrContextFailedToParseConfig+": %w", path, err)
	}

	if wrapper.Version == "" {
		return fmt.Errorf(ErrMsgMissingVersionField, path)
	}
	if wrapper.Schema != schema {
		return fmt.Errorf(ErrMsgInvalidSchema, path, schema, wrapper.Schema)
	}

	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf(ErrContextFailedToDecodeData+": %w", path, err)
	}

	return nil
}
