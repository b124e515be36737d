// Package vtest provides testing helpers for bound view trees.
//
// A Harness parses a template, binds it against a data record and a method
// table, and then drives it the way a user would: clicking, typing, and
// asserting on what the view shows.
//
// # Quick Start
//
//	func TestCounter(t *testing.T) {
//	    h := vtest.New(t, `<span id="n" one-way-text="count"></span>
//	        <button id="inc" click-action="increment">+</button>`,
//	        map[string]any{"count": 0},
//	        map[string]vbind.Method{"increment": increment})
//
//	    h.Click("#inc")
//	    h.ExpectText("#n", "1")
//	}
//
// # Selectors
//
// Targets use the selectors understood by vdom.Query: "tag", "#id",
// ".class", "tag#id" and "tag.class".
//
// # Render Assertions
//
// Assert on rendered HTML output:
//
//	vtest.ExpectContains(t, h.Root, "display:none")
//	vtest.ExpectNotContains(t, h.Root, "Error")
package vtest
