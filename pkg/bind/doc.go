// Package bind compiles an annotated view tree into live bindings.
//
// Binding is two passes. Discover walks the tree depth-first and returns the
// ordered list of binding requests found in node annotations; it never
// mutates anything. Realize turns each request into a click handler or a
// Watcher registered with the field's subscriber list.
//
// # Annotations
//
//	click-action="save"            run method "save" on click
//	conditional-visibility="open"  show or hide the node from a boolean field
//	two-way-value="name"           sync the value facet with a field both ways
//	one-way-text="count"           render a field into the text facet
//
// # Watchers
//
// A Watcher applies one field to one facet of one node. It applies once when
// it is created and again on every change of its field. Boolean values always
// drive the node's visibility, whatever facet the watcher targets.
package bind
