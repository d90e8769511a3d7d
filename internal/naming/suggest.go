package naming

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

type suggestion struct {
	name string
	dist int
}

// Suggest returns up to MaxSuggestions candidates close to name, nearest
// first. Prefix matches rank ahead of edit-distance matches.
func Suggest(name string, candidates []string) []string {
	target := Normalize(name)
	if target == "" {
		return nil
	}

	var found []suggestion
	for _, cand := range candidates {
		norm := Normalize(cand)
		if norm == target {
			return []string{cand}
		}
		if len(target) >= 2 && strings.HasPrefix(norm, target) {
			found = append(found, suggestion{name: cand, dist: 0})
			continue
		}
		dist := levenshtein.ComputeDistance(target, norm)
		if dist > levenshteinLimit(len([]rune(norm))) {
			continue
		}
		found = append(found, suggestion{name: cand, dist: dist})
	}

	sort.SliceStable(found, func(i, j int) bool {
		if found[i].dist == found[j].dist {
			return found[i].name < found[j].name
		}
		return found[i].dist < found[j].dist
	})

	out := make([]string, 0, MaxSuggestions)
	for _, s := range found {
		out = append(out, s.name)
		if len(out) == MaxSuggestions {
			break
		}
	}
	return out
}

func levenshteinLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
