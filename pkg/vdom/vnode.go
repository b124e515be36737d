package vdom

import (
	"fmt"
	"strings"

	"github.com/vango-dev/vbind/pkg/reactive"
	"github.com/vango-dev/vbind/pkg/view"
)

// VKind is the node type discriminator.
type VKind uint8

const (
	KindElement VKind = iota // <div>, <button>, etc.
	KindText                 // Plain text node
)

// String returns the string representation of the VKind.
func (k VKind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	default:
		return "Unknown"
	}
}

// VNode is an in-memory view node. Element nodes implement view.Node.
type VNode struct {
	Kind     VKind             // Node type
	Tag      string            // Element tag name (e.g., "div")
	Attrs    map[string]string // Static attributes, annotations included
	Nodes    []*VNode          // Child nodes, text included
	Text     string            // For KindText

	// facets holds values written through SetFacet.
	facets map[string]any

	// display is the visibility facet as a CSS display value; "" until set.
	display string

	// listeners maps event names to callbacks in registration order.
	listeners map[string][]func() error
}

var _ view.Node = (*VNode)(nil)

// String describes the node for logs and error messages, e.g. <span#label>.
func (v *VNode) String() string {
	if v == nil {
		return "<nil>"
	}
	if v.Kind == KindText {
		return fmt.Sprintf("text(%q)", v.Text)
	}
	var b strings.Builder
	b.WriteString("<")
	b.WriteString(v.Tag)
	if id := v.Attrs["id"]; id != "" {
		b.WriteString("#")
		b.WriteString(id)
	}
	b.WriteString(">")
	return b.String()
}

// Children returns the element children in document order.
// Text children are not view nodes and are skipped. A nil node has none.
func (v *VNode) Children() []view.Node {
	if v == nil {
		return nil
	}
	out := make([]view.Node, 0, len(v.Nodes))
	for _, c := range v.Nodes {
		if c != nil && c.Kind == KindElement {
			out = append(out, c)
		}
	}
	return out
}

// HasAttr reports whether the node has the named attribute.
func (v *VNode) HasAttr(name string) bool {
	_, ok := v.Attrs[name]
	return ok
}

// Attr returns the named attribute, or "".
func (v *VNode) Attr(name string) string {
	return v.Attrs[name]
}

// Facet returns the current value of a facet.
//
// A facet that was never set falls back to the static markup: the text
// facet to the node's text content and any other facet to the attribute of
// the same name. Unset facets without markup are nil.
func (v *VNode) Facet(name string) any {
	if val, ok := v.facets[name]; ok {
		return val
	}
	if name == view.FacetText {
		return v.TextContent()
	}
	if a, ok := v.Attrs[name]; ok {
		return a
	}
	return nil
}

// HasFacet reports whether a facet has been written.
func (v *VNode) HasFacet(name string) bool {
	_, ok := v.facets[name]
	return ok
}

// SetFacet writes a facet. Facets hold scalars only.
// Writing the text facet replaces the node's content when rendered.
func (v *VNode) SetFacet(name string, value any) error {
	if !reactive.IsScalar(value) {
		return fmt.Errorf("vdom: %s facet %q cannot hold %T", v, name, value)
	}
	if v.facets == nil {
		v.facets = make(map[string]any)
	}
	v.facets[name] = value
	return nil
}

// Facets returns the names of written facets.
func (v *VNode) Facets() []string {
	names := make([]string, 0, len(v.facets))
	for name := range v.facets {
		names = append(names, name)
	}
	return names
}

// Visibility returns the visibility facet. Nodes start shown.
func (v *VNode) Visibility() view.Visibility {
	if v.display == view.Hidden.String() {
		return view.Hidden
	}
	return view.Shown
}

// SetVisibility sets the visibility facet.
func (v *VNode) SetVisibility(vis view.Visibility) {
	v.display = vis.String()
}

// Display returns the CSS display value written by SetVisibility, or "".
func (v *VNode) Display() string {
	return v.display
}

// On registers a callback for event.
func (v *VNode) On(event string, fn func() error) {
	if v.listeners == nil {
		v.listeners = make(map[string][]func() error)
	}
	v.listeners[event] = append(v.listeners[event], fn)
}

// Listeners returns the number of callbacks registered for event.
func (v *VNode) Listeners(event string) int {
	return len(v.listeners[event])
}

// TextContent returns the concatenated text of the node and its
// descendants, honoring written text facets.
func (v *VNode) TextContent() string {
	if v == nil {
		return ""
	}
	if v.Kind == KindText {
		return v.Text
	}
	if val, ok := v.facets[view.FacetText]; ok {
		return reactive.Format(val)
	}
	var b strings.Builder
	for _, c := range v.Nodes {
		b.WriteString(c.TextContent())
	}
	return b.String()
}
