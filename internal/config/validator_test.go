package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateEnv_MissingVersion(t *testing.T) {
	os.Unsetenv("ENV_SCHEMA_VERSION")

	err := ValidateEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ENV_SCHEMA_VERSION is not set")
}

func TestValidateEnv_VersionMismatch(t *testing.T) {
	t.Setenv("ENV_SCHEMA_VERSION", "0.9")

	err := ValidateEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ENV_SCHEMA_VERSION mismatch")
	assert.Contains(t, err.Error(), "expected 1.0, got 0.9")
}

func TestValidateEnv_MissingRequired(t *testing.T) {
	t.Setenv("ENV_SCHEMA_VERSION", ExpectedEnvSchemaVersion)
	t.Setenv("CATALOG_PATH", "")

	err := ValidateEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required environment variables")
	assert.Contains(t, err.Error(), "CATALOG_PATH")
}

func TestValidateEnvWithWarnings(t *testing.T) {
	t.Setenv("ENV_SCHEMA_VERSION", ExpectedEnvSchemaVersion)
	t.Setenv("CATALOG_PATH", "configs/catalog.json")
	t.Setenv("RULESET_PATH", "")
	t.Setenv("ENVIRONMENT", "prod")
	t.Setenv("CORS_ALLOWED_ORIGINS", "*")

	warnings, err := ValidateEnvWithWarnings()
	require.NoError(t, err, "Should not error even with warnings")
	require.Len(t, warnings, 2)
	assert.Contains(t, warnings[0], "RULESET_PATH")
	assert.Contains(t, warnings[1], "CORS_ALLOWED_ORIGINS")
}

func TestValidateEnvWithWarnings_Clean(t *testing.T) {
	t.Setenv("ENV_SCHEMA_VERSION", ExpectedEnvSchemaVersion)
	t.Setenv("CATALOG_PATH", "configs/catalog.json")
	t.Setenv("RULESET_PATH", "configs/ruleset.json")
	t.Setenv("ENVIRONMENT", "dev")

	warnings, err := ValidateEnvWithWarnings()
	require.NoError(t, err)
	assert.Empty(t, warnings)
}
