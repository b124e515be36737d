// Package vdom provides the in-memory view tree bound by vbind.
//
// A VNode is an element or text node. Element nodes implement view.Node:
// they expose their annotations as attributes, hold facet values written by
// watchers, track a visibility facet, and run registered event callbacks.
//
// # Core Types
//
// VNode is the fundamental building block. Attr builds attributes, including
// the four binding annotations (Action, ShowIf, Model, Bind).
//
// # Element API
//
// Elements are created using variadic factory functions:
//
//	Div(ID("app"),
//	    Span(Bind("count")),
//	    Button(Action("increment"), "+"),
//	    Input(Model("name")),
//	    P(ShowIf("open"), "Hello"),
//	)
//
// Templates can also be parsed from HTML with ParseHTML.
//
// # Events
//
// Click and Input simulate user activity; Dispatch runs the callbacks of any
// event name.
package vdom
