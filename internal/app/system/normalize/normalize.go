// Package normalize provides canonical forms for user-supplied fields
// before they are validated or stored.
package normalize

import "strings"

// Email trims surrounding whitespace and lowercases the address.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Name trims surrounding whitespace. Case is preserved; case-insensitive
// comparisons use the stored *_ci fold fields instead.
func Name(s string) string {
	return strings.TrimSpace(s)
}

// Role trims and lowercases a role value.
func Role(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// UserType trims and lowercases a userType value.
func UserType(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// QueryParam trims a free-text query parameter (search terms, filters).
func QueryParam(s string) string {
	return strings.TrimSpace(s)
}

// StringSlice trims every element and drops the ones that end up empty.
// Used for pros/cons and tag lists.
func StringSlice(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if t := strings.TrimSpace(s); t != "" {
			out = append(out, t)
		}
	}
	return out
}
