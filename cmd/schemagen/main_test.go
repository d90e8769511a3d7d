package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Forgeworks_Go/internal/catalog"
	"github.com/osse101/Forgeworks_Go/internal/validation"
	"github.com/osse101/Forgeworks_Go/mocks"
)

func TestWriteSchemas(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "schemas")

	paths, err := writeSchemas(dir)
	require.NoError(t, err)

	require.Len(t, paths, 2)
	for _, kind := range []string{catalog.SchemaCatalog, catalog.SchemaRuleset} {
		assert.FileExists(t, paths[kind])
		assert.Equal(t, filepath.Join(dir, kind+".schema.json"), paths[kind])
	}
}

func TestValidateDocuments(t *testing.T) {
	paths, err := writeSchemas(t.TempDir())
	require.NoError(t, err)

	badRuleset := filepath.Join(t.TempDir(), "ruleset.json")
	require.NoError(t, os.WriteFile(badRuleset, []byte(`{"name": "broken", "base_value": "high"}`), 0o644))

	tests := []struct {
		name      string
		documents map[string]string
		errorMsg  string
	}{
		{
			name: "shipped configs",
			documents: map[string]string{
				catalog.SchemaCatalog: "../../configs/catalog.json",
				catalog.SchemaRuleset: "../../configs/ruleset.json",
			},
		},
		{
			name:      "type mismatch",
			documents: map[string]string{catalog.SchemaRuleset: badRuleset},
			errorMsg:  "base_value",
		},
		{
			name:      "kind without schema",
			documents: map[string]string{"recipes": "../../configs/catalog.json"},
			errorMsg:  "no schema written for recipes",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateDocuments(validation.NewSchemaValidator(), paths, tt.documents)
			if tt.errorMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorMsg)
		})
	}
}

func TestValidateDocuments_StopsAtFirstFailure(t *testing.T) {
	schemas := map[string]string{
		catalog.SchemaCatalog: "out/catalog.schema.json",
		catalog.SchemaRuleset: "out/ruleset.schema.json",
	}
	documents := map[string]string{
		catalog.SchemaCatalog: "catalog.json",
		catalog.SchemaRuleset: "ruleset.json",
	}

	v := mocks.NewMockSchemaValidator(t)
	v.On("ValidateFile", "catalog.json", "out/catalog.schema.json").Return(errors.New("items: missing")).Once()

	err := validateDocuments(v, schemas, documents)
	assert.EqualError(t, err, "catalog.json: items: missing")
}
