// Package slug derives URL-safe workspace identifiers from display names.
package slug

import (
	"strings"
	"unicode"
)

// Generate lowercases the name, drops every character outside [a-z0-9] and
// whitespace, then collapses whitespace runs into single hyphens. An empty or
// fully-symbol name yields ""; callers that need a non-empty slug must
// validate the source name upstream.
func Generate(name string) string {
	var b strings.Builder

	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		}
	}

	return strings.Join(strings.Fields(b.String()), "-")
}
