package naming

import (
	"maps"
	"slices"
)

// builtinComplexityAliases maps the lexical forms complexity names show up in
// (synonyms, older labels, translations) onto canonical keys. Keys are already
// normalized.
var builtinComplexityAliases = map[string]string{
	"simple":      ComplexitySimple,
	"easy":        ComplexitySimple,
	"basic":       ComplexitySimple,
	"low":         ComplexitySimple,
	"простой":     ComplexitySimple,
	"простая":     ComplexitySimple,
	"einfach":     ComplexitySimple,
	"facile":      ComplexitySimple,
	"medium":      ComplexityMedium,
	"normal":      ComplexityMedium,
	"moderate":    ComplexityMedium,
	"average":     ComplexityMedium,
	"средний":     ComplexityMedium,
	"средняя":     ComplexityMedium,
	"mittel":      ComplexityMedium,
	"moyen":       ComplexityMedium,
	"complex":     ComplexityComplex,
	"hard":        ComplexityComplex,
	"difficult":   ComplexityComplex,
	"high":        ComplexityComplex,
	"сложный":     ComplexityComplex,
	"сложная":     ComplexityComplex,
	"schwierig":   ComplexityComplex,
	"komplex":     ComplexityComplex,
	"master":      ComplexityMaster,
	"masterwork":  ComplexityMaster,
	"expert":      ComplexityMaster,
	"legendary":   ComplexityMaster,
	"мастерский":  ComplexityMaster,
	"meisterhaft": ComplexityMaster,
}

// CanonicalComplexity returns the canonical key for a complexity name, using
// extra aliases before the built-in table. Unknown names come back normalized.
// When several extra aliases normalize alike, the lexically first one wins.
func CanonicalComplexity(name string, extra map[string]string) string {
	key := Normalize(name)
	if canonical, ok := extra[name]; ok {
		return Normalize(canonical)
	}
	for _, alias := range sortedKeys(extra) {
		if Normalize(alias) == key {
			return Normalize(extra[alias])
		}
	}
	if canonical, ok := builtinComplexityAliases[key]; ok {
		return canonical
	}
	return key
}

// LookupNormalized finds a value in a designer-keyed table by comparing
// normalized keys, so "Very-Hard" matches a "very hard" entry. An exact key
// wins; otherwise the lexically first matching key does.
func LookupNormalized(table map[string]float64, name string) (float64, bool) {
	if v, ok := table[name]; ok {
		return v, true
	}
	key := Normalize(name)
	for _, k := range sortedKeys(table) {
		if Normalize(k) == key {
			return table[k], true
		}
	}
	return 0, false
}

// LookupComplexity resolves a complexity name against a table keyed by
// designer names. The raw form is tried first, then its canonical alias, so
// a table keyed "Simple" still answers for "простой". Among synonym keys the
// one spelled as the canonical name wins, then the lexically first.
func LookupComplexity(table map[string]float64, name string, extra map[string]string) (float64, bool) {
	if name == "" || len(table) == 0 {
		return 0, false
	}
	if v, ok := LookupNormalized(table, name); ok {
		return v, true
	}
	canonical := CanonicalComplexity(name, extra)
	keys := sortedKeys(table)
	for _, k := range keys {
		if Normalize(k) == canonical {
			return table[k], true
		}
	}
	for _, k := range keys {
		if CanonicalComplexity(k, extra) == canonical {
			return table[k], true
		}
	}
	return 0, false
}

func sortedKeys[V any](m map[string]V) []string {
	return slices.Sorted(maps.Keys(m))
}
