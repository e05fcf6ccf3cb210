// Package sanitize strips HTML from user-generated review text before it
// is stored. Review content is rendered by a separate SPA; storing markup
// would hand it straight to other users' browsers.
package sanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var policy = bluemonday.StrictPolicy()

// Text removes all HTML from s and trims surrounding whitespace.
func Text(s string) string {
	return strings.TrimSpace(policy.Sanitize(s))
}

// TextSlice applies Text to every element, dropping any that end up empty.
func TextSlice(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if t := Text(s); t != "" {
			out = append(out, t)
		}
	}
	return out
}
