// Package view defines the view-node capability consumed by the binder.
//
// The binding engine never depends on a concrete tree. Any tree whose nodes
// implement Node can be bound; pkg/vdom provides an in-memory one.
package view

// Annotation names recognized by the binder.
const (
	AttrClick = "click-action"           // method to run on click
	AttrIf    = "conditional-visibility" // boolean field driving visibility
	AttrModel = "two-way-value"          // field bound to the value facet both ways
	AttrText  = "one-way-text"           // field rendered into the text facet
)

// Facet names.
const (
	FacetNone  = ""      // used by visibility-only watchers
	FacetText  = "text"  // text content
	FacetValue = "value" // input value
)

// Event names.
const (
	EventClick = "click"
	EventInput = "input"
)

// Visibility is the state of a node's visibility facet.
type Visibility uint8

const (
	Shown Visibility = iota
	Hidden
)

// String returns the display style for the visibility.
func (v Visibility) String() string {
	switch v {
	case Shown:
		return "block"
	case Hidden:
		return "none"
	default:
		return "unknown"
	}
}

// Node is one node of a bindable view tree.
type Node interface {
	// Children returns the node's element children in document order.
	Children() []Node

	// HasAttr reports whether the node carries the named annotation.
	HasAttr(name string) bool

	// Attr returns the value of the named annotation, or "".
	Attr(name string) string

	// Facet returns the current value of a settable facet.
	Facet(name string) any

	// SetFacet writes a settable facet. Implementations decide which
	// values each facet accepts.
	SetFacet(name string, value any) error

	// Visibility returns the node's visibility facet.
	Visibility() Visibility

	// SetVisibility writes the node's visibility facet.
	SetVisibility(v Visibility)

	// On registers a callback for an event. Callbacks run in registration
	// order when the event is dispatched.
	On(event string, fn func() error)
}
