package render

import (
	"strings"

	"golang.org/x/net/html"
)

// Text content goes through html.EscapeString, which covers the five
// characters that matter inside element bodies and quoted values.
func escapeHTML(s string) string {
	return html.EscapeString(s)
}

// attrWhitespace keeps multi-line facet values (a textarea model, say) on
// one line inside the quoted attribute.
var attrWhitespace = strings.NewReplacer(
	"\n", "&#10;",
	"\r", "&#13;",
	"\t", "&#9;",
)

func escapeAttr(s string) string {
	return attrWhitespace.Replace(html.EscapeString(s))
}
