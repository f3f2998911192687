package rendering

import (
	"html"
	"regexp"
	"strings"
)

// markupPattern mirrors the single tag-sniffing heuristic every renderer
// shares: at least one angle-bracketed token opening with a letter. Text
// that contains a bare "<" (a price comparison, say) does not match.
var markupPattern = regexp.MustCompile(`(?i)<[a-z][\s\S]*>`)

// LooksLikeMarkup reports whether a description or content string should be
// rendered as raw HTML rather than literal text. Both the visual renderer
// and the code-mode compiler must route through this one predicate so the
// two surfaces never disagree.
func LooksLikeMarkup(text string) bool {
	return markupPattern.MatchString(text)
}

// TextToHTML renders literal text for HTML output: escaped, with line
// breaks preserved.
func TextToHTML(text string) string {
	escaped := html.EscapeString(text)
	return strings.ReplaceAll(escaped, "\n", "<br />")
}

// DescriptionHTML applies the shared markup heuristic: detected markup
// passes through untouched, anything else is escaped with line breaks
// preserved.
func DescriptionHTML(text string) string {
	if LooksLikeMarkup(text) {
		return text
	}
	return TextToHTML(text)
}
