package domain

import (
	"strings"

	"github.com/fatih/camelcase"
)

// Normalize converts a free-form project or remote name into a valid
// module-federation identifier. A dash followed by a lowercase letter
// camel-cases (the dash is dropped, the letter upper-cased); underscores are
// legal identifier characters and survive untouched; every other character
// outside [A-Za-z0-9_] is stripped; a leading digit gets an underscore
// prepended.
//
// Normalize is total, deterministic and idempotent. It never errors: empty
// input (or input with no usable characters) yields an empty string, which
// callers must reject as an invalid name.
func Normalize(raw string) string {
	var b strings.Builder
	rs := []rune(raw)
	for i := 0; i < len(rs); i++ {
		r := rs[i]
		switch {
		case r == '-':
			if i+1 < len(rs) && rs[i+1] >= 'a' && rs[i+1] <= 'z' {
				b.WriteRune(rs[i+1] - 'a' + 'A')
				i++
			}
			// The dash itself never survives.
		case r == '_':
			b.WriteRune(r)
		case isAlnum(r):
			b.WriteRune(r)
		}
	}

	out := b.String()
	if out != "" && out[0] >= '0' && out[0] <= '9' {
		out = "_" + out
	}
	return out
}

// IsValidIdentifier reports whether name satisfies the full identifier
// grammar [A-Za-z_$][A-Za-z0-9_$]*. The grammar is wider than what
// Normalize emits: directly supplied remote names may legitimately use $
// or a leading underscore.
func IsValidIdentifier(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case r == '_' || r == '$':
		case r >= 'A' && r <= 'Z':
		case r >= 'a' && r <= 'z':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// KebabCase converts a normalized identifier into the dash-separated form
// used for package directories and npm manifest names, e.g.
// "myProductsApp" -> "my-products-app" and "user_service" -> "user-service".
func KebabCase(identifier string) string {
	words := camelcase.Split(identifier)
	parts := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.Trim(w, "_$")
		if w == "" {
			continue
		}
		parts = append(parts, strings.ToLower(w))
	}
	return strings.Join(parts, "-")
}

func isAlnum(r rune) bool {
	return (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
}
