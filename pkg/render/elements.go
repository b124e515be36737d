package render

// isInlineElement reports whether tag is phrasing content. Pretty output
// keeps the children of phrasing elements on the parent's line, so a bound
// <span> inside a <p> does not grow whitespace when its text changes.
func isInlineElement(tag string) bool {
	switch tag {
	case "a", "abbr", "b", "br", "cite", "code", "data", "em", "i", "kbd",
		"label", "mark", "output", "q", "s", "samp", "small", "span",
		"strong", "sub", "sup", "time", "u", "var", "wbr":
		return true
	}
	return false
}

// isBooleanAttr reports whether name is an HTML boolean attribute. A bool
// written into a facet of the same name renders as the bare attribute when
// true and is omitted when false.
func isBooleanAttr(name string) bool {
	switch name {
	case "autofocus", "checked", "disabled", "hidden", "multiple", "open",
		"readonly", "required", "selected":
		return true
	}
	return false
}
