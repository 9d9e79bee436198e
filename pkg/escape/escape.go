// Package escape replaces the characters that are significant in HTML
// before BBCode tags are converted.
package escape

import "strings"

var replacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

// Text escapes & < > and " in s. Brackets are left alone so tags
// survive; single quotes are left alone since generated attributes use
// double quotes.
func Text(s string) string {
	return replacer.Replace(s)
}
