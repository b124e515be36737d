// Package vbind is a minimal reactive view-binding engine.
//
// An Engine takes a flat data record and a tree of annotated view nodes and
// keeps the view in sync with the data through fine-grained, push-based
// change notification. There is no virtual-tree diff: every field knows the
// exact watchers that depend on it.
//
// Usage:
//
//	root := vdom.Div(
//	    vdom.Span(vdom.Bind("count")),
//	    vdom.Button(vdom.Action("increment"), "+"),
//	)
//
//	engine, err := vbind.New(ctx, vbind.Config{
//	    Root: root,
//	    Data: map[string]any{"count": 0},
//	    Methods: map[string]vbind.Method{
//	        "increment": func(d *vbind.Data) error {
//	            _, err := d.Set("count", d.Value("count").(int)+1)
//	            return err
//	        },
//	    },
//	})
//
// # Annotations
//
//	click-action="method"            call a method on click
//	conditional-visibility="field"   show when true, hide when false
//	two-way-value="field"            sync an input's value with a field
//	one-way-text="field"             render a field as text
//
// # Execution Model
//
// Everything is synchronous and single-threaded. A write returns only after
// every dependent watcher has applied, in registration order. An Engine is
// not safe for concurrent use.
package vbind
