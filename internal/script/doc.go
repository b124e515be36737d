// Package script loads and runs YAML interaction scripts against a bound
// view tree.
//
// A script carries the data record, a method table made of declarative
// operations, and a list of steps that drive the view:
//
//	data:
//	  count: 0
//	  open: false
//	methods:
//	  increment:
//	    - add: {field: count, by: 1}
//	  toggle:
//	    - toggle: open
//	steps:
//	  - click: "#inc"
//	  - input: {target: "#name", value: grace}
//	  - set: {field: open, value: true}
//	  - expect: {target: "#count", text: "1"}
//	  - expect: {target: "#panel", visible: true}
//	  - expect: {field: count, value: 1}
//
// Method operations are set, add and toggle. Steps are set, click, input
// and expect, exactly one per list item.
package script
