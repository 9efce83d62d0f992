// Package slug derives URL-safe storefront identifiers from display names
// and resolves collisions against the set of slugs already in use.
package slug

import (
	"strconv"
	"strings"
)

// substitutions maps accented characters to their ASCII base. Input is
// lowercased before lookup, so only lowercase forms are listed.
var substitutions = map[rune]rune{
	'á': 'a', 'à': 'a', 'â': 'a', 'ã': 'a', 'ä': 'a', 'å': 'a',
	'é': 'e', 'è': 'e', 'ê': 'e', 'ë': 'e',
	'í': 'i', 'ì': 'i', 'î': 'i', 'ï': 'i',
	'ó': 'o', 'ò': 'o', 'ô': 'o', 'õ': 'o', 'ö': 'o',
	'ú': 'u', 'ù': 'u', 'û': 'u', 'ü': 'u',
	'ç': 'c', 'ñ': 'n', 'ý': 'y',
}

// Slugify normalizes a display name into a lowercase identifier containing
// only [a-z0-9-]: accents are stripped via the substitution table, runs of
// whitespace and underscores become a single hyphen, anything else is
// dropped, and leading/trailing hyphens are trimmed.
func Slugify(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		if sub, ok := substitutions[r]; ok {
			r = sub
		}
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
		case r == ' ' || r == '\t' || r == '\n' || r == '_' || r == '-':
			b.WriteByte('-')
		}
	}
	out := b.String()
	for strings.Contains(out, "--") {
		out = strings.ReplaceAll(out, "--", "-")
	}
	return strings.Trim(out, "-")
}

// DefaultBase is used when a name normalizes to the empty string (all-symbol
// names), so suffix probing always has a non-empty stem.
const DefaultBase = "vitrine"

// Allocate returns base if it is not taken, otherwise base-1, base-2, …
// until a free slug is found. Deterministic given the taken set; no upper
// bound on the suffix.
func Allocate(base string, taken func(string) bool) string {
	if base == "" {
		base = DefaultBase
	}
	if !taken(base) {
		return base
	}
	for i := 1; ; i++ {
		candidate := base + "-" + strconv.Itoa(i)
		if !taken(candidate) {
			return candidate
		}
	}
}
