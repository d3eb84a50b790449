// Package sanitize escapes user-supplied text before it is interpolated
// into HTML email bodies.
package sanitize

import "strings"

// htmlEscaper replaces the five HTML-significant characters with their
// entity equivalents. The replacer works in a single pass, so the
// ampersands inside entities it produces are never escaped twice.
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

// EscapeHTML returns text with &, <, >, " and ' replaced by HTML entities.
func EscapeHTML(text string) string {
	return htmlEscaper.Replace(text)
}

// NL2BR escapes text and then converts newlines to <br> tags. Escaping
// happens on the raw text first, so the break tags themselves are the only
// markup in the result.
func NL2BR(text string) string {
	escaped := EscapeHTML(text)
	escaped = strings.ReplaceAll(escaped, "\r\n", "<br>")
	return strings.ReplaceAll(escaped, "\n", "<br>")
}
