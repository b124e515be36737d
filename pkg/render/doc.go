// Package render serializes a bound vdom tree to HTML.
//
// The output is a snapshot of the tree's live state, not of its template:
//
//   - a written text facet replaces the element's children
//   - written facets such as "value" override static attributes
//   - the visibility facet is appended to the style attribute
//     ("display:block" or "display:none")
//   - text and attribute values are escaped
//   - void elements (input, br, img, ...) have no closing tag
//
// # Basic Usage
//
//	renderer := render.NewRenderer(render.RendererConfig{Pretty: true})
//	html, err := renderer.RenderToString(root)
package render
