package naming

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Normalize folds a designer-entered name into its comparison form:
// NFKC-composed, case-folded, with runs of spaces, hyphens and underscores
// collapsed to a single space.
func Normalize(name string) string {
	s := norm.NFKC.String(name)
	s = cases.Fold().String(s)
	s = strings.Map(func(r rune) rune {
		switch r {
		case '-', '_', '.':
			return ' '
		}
		return r
	}, s)
	return strings.Join(strings.Fields(s), " ")
}
