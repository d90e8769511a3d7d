package naming

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"lower cases", "Medium", "medium"},
		{"trims and collapses", "  Very   Hard ", "very hard"},
		{"separators become spaces", "very-hard_craft", "very hard craft"},
		{"full width compatibility form", "Ｃｏｍｐｌｅｘ", "complex"},
		{"cyrillic folds", "Сложный", "сложный"},
		{"empty", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestCanonicalComplexity(t *testing.T) {
	assert.Equal(t, ComplexitySimple, CanonicalComplexity("Простой", nil))
	assert.Equal(t, ComplexityComplex, CanonicalComplexity("HARD", nil))
	assert.Equal(t, ComplexityMedium, CanonicalComplexity("mittel", nil))
	assert.Equal(t, "arcane", CanonicalComplexity("Arcane", nil), "unknown names stay normalized")
	assert.Equal(t, ComplexityMaster, CanonicalComplexity("Arcane", map[string]string{"arcane": "Master"}),
		"extra aliases win over the built-in table")
}

func TestLookupComplexity(t *testing.T) {
	table := map[string]float64{"Simple": 10, "Medium": 30, "Very Hard": 90}

	tests := []struct {
		name     string
		input    string
		extra    map[string]string
		expected float64
		found    bool
	}{
		{"exact key", "Simple", nil, 10, true},
		{"case and separators", "very-hard", nil, 90, true},
		{"translation", "средний", nil, 30, true},
		{"synonym", "easy", nil, 10, true},
		{"ruleset alias", "brutal", map[string]string{"Brutal": "very hard"}, 90, true},
		{"unknown", "arcane", nil, 0, false},
		{"empty name", "", nil, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, ok := LookupComplexity(table, tt.input, tt.extra)
			assert.Equal(t, tt.found, ok)
			assert.InDelta(t, tt.expected, v, 1e-9)
		})
	}
}

func TestLookupComplexity_SynonymKeysAreDeterministic(t *testing.T) {
	table := map[string]float64{"Simple": 10, "Easy": 20, "basic ": 30}

	for i := 0; i < 100; i++ {
		v, ok := LookupComplexity(table, "low", nil)
		require.True(t, ok)
		require.InDelta(t, 10, v, 1e-9, "the key spelled as the canonical name wins")

		v, ok = LookupComplexity(table, "EASY", nil)
		require.True(t, ok)
		require.InDelta(t, 20, v, 1e-9, "a normalized key match beats the alias")
	}
}

func TestLookupNormalized_PrefersExactThenFirstKey(t *testing.T) {
	table := map[string]float64{"very hard": 1, "Very-Hard": 2, "VERY_HARD": 3}

	for i := 0; i < 100; i++ {
		v, ok := LookupNormalized(table, "Very-Hard")
		require.True(t, ok)
		require.InDelta(t, 2, v, 1e-9)

		v, ok = LookupNormalized(table, "very  hard ")
		require.True(t, ok)
		require.InDelta(t, 3, v, 1e-9, "VERY_HARD sorts first")
	}
}

func TestSuggest(t *testing.T) {
	candidates := []string{"Iron Ingot", "Iron Ore", "Copper Ingot", "Oak Plank", "Coal"}

	assert.Equal(t, []string{"Iron Ingot"}, Suggest("iron ingot", candidates), "exact normalized hit short-circuits")
	assert.Equal(t, []string{"Iron Ingot"}, Suggest("Iron Ingto", candidates))
	assert.Equal(t, []string{"Iron Ingot", "Iron Ore"}, Suggest("iron", candidates), "prefix matches")
	assert.Equal(t, []string{"Coal"}, Suggest("Coall", candidates))
	assert.Empty(t, Suggest("Mithril", candidates))
	assert.Nil(t, Suggest("", candidates))
}

func TestLevenshteinLimit(t *testing.T) {
	assert.Equal(t, 1, levenshteinLimit(4))
	assert.Equal(t, 2, levenshteinLimit(8))
	assert.Equal(t, 3, levenshteinLimit(12))
}

func TestLoadComplexityAliases(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file is empty", func(t *testing.T) {
		aliases, err := LoadComplexityAliases(filepath.Join(dir, "absent.json"))
		require.NoError(t, err)
		assert.Empty(t, aliases)
	})

	t.Run("shipped file", func(t *testing.T) {
		aliases, err := LoadComplexityAliases("../../configs/complexity_aliases.json")
		require.NoError(t, err)
		assert.Equal(t, ComplexitySimple, CanonicalComplexity("Leicht", aliases))
		assert.Equal(t, ComplexityMaster, CanonicalComplexity("grandmaster", aliases))
	})

	t.Run("valid file", func(t *testing.T) {
		path := filepath.Join(dir, "aliases.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"version":"1","schema":"complexity-aliases","aliases":{"leicht":"simple"}}`), 0o600))

		aliases, err := LoadComplexityAliases(path)
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"leicht": "simple"}, aliases)
	})

	t.Run("wrong schema", func(t *testing.T) {
		path := filepath.Join(dir, "wrong.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"version":"1","schema":"item-aliases"}`), 0o600))

		_, err := LoadComplexityAliases(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid schema")
	})

	t.Run("missing version", func(t *testing.T) {
		path := filepath.Join(dir, "noversion.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"schema":"complexity-aliases"}`), 0o600))

		_, err := LoadComplexityAliases(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "missing version field")
	})
}
