package vdom

import (
	"strings"

	"github.com/vango-dev/vbind/pkg/view"
)

// Attr represents a single attribute.
type Attr struct {
	Key   string
	Value string
}

// IsEmpty returns true if this is an empty/nil attribute.
func (a Attr) IsEmpty() bool {
	return a.Key == ""
}

// attr creates an Attr with the given key and value.
func attr(key, value string) Attr {
	return Attr{Key: key, Value: value}
}

// Attribute creates an arbitrary attribute.
func Attribute(key, value string) Attr { return attr(key, value) }

// Identity attributes

// ID sets the id attribute.
func ID(id string) Attr { return attr("id", id) }

// Class sets the class attribute, joining multiple classes with spaces.
func Class(classes ...string) Attr { return attr("class", strings.Join(classes, " ")) }

// StyleAttr sets the style attribute.
func StyleAttr(style string) Attr { return attr("style", style) }

// Form attributes

// Type sets the type attribute.
func Type(t string) Attr { return attr("type", t) }

// Value sets the static value attribute.
func Value(v string) Attr { return attr("value", v) }

// Placeholder sets the placeholder attribute.
func Placeholder(p string) Attr { return attr("placeholder", p) }

// Binding annotations

// Action runs the named method on click.
func Action(method string) Attr { return attr(view.AttrClick, method) }

// ShowIf shows or hides the node from a boolean field.
func ShowIf(field string) Attr { return attr(view.AttrIf, field) }

// Model binds the node's value both ways to a field.
func Model(field string) Attr { return attr(view.AttrModel, field) }

// Bind renders a field into the node's text.
func Bind(field string) Attr { return attr(view.AttrText, field) }
