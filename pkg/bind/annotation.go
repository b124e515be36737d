package bind

import (
	"fmt"

	"github.com/vango-dev/vbind/pkg/view"
)

// Kind is the binding request discriminator.
type Kind uint8

const (
	KindClick Kind = iota // click-action
	KindIf                // conditional-visibility
	KindModel             // two-way-value
	KindText              // one-way-text
)

// kinds lists every annotation in the order a node's annotations are read.
var kinds = []struct {
	kind Kind
	attr string
}{
	{KindClick, view.AttrClick},
	{KindIf, view.AttrIf},
	{KindModel, view.AttrModel},
	{KindText, view.AttrText},
}

// String returns the annotation name for the kind.
func (k Kind) String() string {
	switch k {
	case KindClick:
		return view.AttrClick
	case KindIf:
		return view.AttrIf
	case KindModel:
		return view.AttrModel
	case KindText:
		return view.AttrText
	default:
		return "unknown"
	}
}

// Request is one binding found on a node.
type Request struct {
	Node view.Node
	Kind Kind
	// Name is a method name for KindClick and a field name otherwise.
	Name string
}

// String renders the request the way it appears in a template.
func (r Request) String() string {
	return fmt.Sprintf("%s=%q on %s", r.Kind, r.Name, describe(r.Node))
}

// Discover returns the binding requests of root and its descendants.
//
// The walk is depth-first and post-order: a node's subtree is discovered
// before the node's own annotations, and siblings follow document order. A
// node's annotations are returned in the fixed order click, if, model, text.
func Discover(root view.Node) []Request {
	if root == nil {
		return nil
	}
	var reqs []Request
	discover(root, &reqs)
	return reqs
}

func discover(node view.Node, reqs *[]Request) {
	for _, child := range node.Children() {
		discover(child, reqs)
	}
	*reqs = append(*reqs, parseAnnotations(node)...)
}

// parseAnnotations reads every recognized annotation of a single node.
func parseAnnotations(node view.Node) []Request {
	var out []Request
	for _, k := range kinds {
		if !node.HasAttr(k.attr) {
			continue
		}
		out = append(out, Request{Node: node, Kind: k.kind, Name: node.Attr(k.attr)})
	}
	return out
}

// describe names a node for error messages.
func describe(n view.Node) string {
	if s, ok := n.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", n)
}
