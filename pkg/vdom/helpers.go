package vdom

import (
	"strings"
)

// Walk calls fn for node and every element descendant in depth-first
// pre-order. Returning false from fn skips the node's subtree.
func Walk(node *VNode, fn func(*VNode) bool) {
	if node == nil || node.Kind != KindElement {
		return
	}
	if !fn(node) {
		return
	}
	for _, c := range node.Nodes {
		Walk(c, fn)
	}
}

// Query returns the first element under root (root included) matching a
// simple selector, or nil.
//
// Supported selectors are "tag", "#id", ".class", and "tag#id" / "tag.class"
// combinations of one tag with one id or class.
func Query(root *VNode, selector string) *VNode {
	var found *VNode
	match := compileSelector(selector)
	Walk(root, func(n *VNode) bool {
		if found != nil {
			return false
		}
		if match(n) {
			found = n
			return false
		}
		return true
	})
	return found
}

// QueryAll returns every element under root matching selector, in document
// order.
func QueryAll(root *VNode, selector string) []*VNode {
	var out []*VNode
	match := compileSelector(selector)
	Walk(root, func(n *VNode) bool {
		if match(n) {
			out = append(out, n)
		}
		return true
	})
	return out
}

// ByID returns the element with the given id, or nil.
func ByID(root *VNode, id string) *VNode {
	return Query(root, "#"+id)
}

func compileSelector(selector string) func(*VNode) bool {
	selector = strings.TrimSpace(selector)
	if selector == "" {
		return func(*VNode) bool { return false }
	}

	tag, id, class := selector, "", ""
	if i := strings.IndexAny(selector, "#."); i >= 0 {
		tag = selector[:i]
		if selector[i] == '#' {
			id = selector[i+1:]
		} else {
			class = selector[i+1:]
		}
	}

	return func(n *VNode) bool {
		if tag != "" && !strings.EqualFold(n.Tag, tag) {
			return false
		}
		if id != "" && n.Attrs["id"] != id {
			return false
		}
		if class != "" && !hasClass(n, class) {
			return false
		}
		return true
	}
}

func hasClass(n *VNode, class string) bool {
	for _, c := range strings.Fields(n.Attrs["class"]) {
		if c == class {
			return true
		}
	}
	return false
}
