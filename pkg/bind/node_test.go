package bind

import (
	"github.com/vango-dev/vbind/pkg/view"
)

// fakeNode is a minimal view.Node that records every facet write.
type fakeNode struct {
	name       string
	attrs      map[string]string
	children   []*fakeNode
	facets     map[string]any
	visibility view.Visibility
	handlers   map[string][]func() error

	// log, when set, receives "name.facet" for every write.
	log *[]string
}

func newFakeNode(name string, attrs map[string]string, children ...*fakeNode) *fakeNode {
	if attrs == nil {
		attrs = map[string]string{}
	}
	return &fakeNode{
		name:     name,
		attrs:    attrs,
		children: children,
		facets:   map[string]any{},
		handlers: map[string][]func() error{},
	}
}

// withLog sets the write log on n and all its descendants.
func (n *fakeNode) withLog(log *[]string) *fakeNode {
	n.log = log
	for _, c := range n.children {
		c.withLog(log)
	}
	return n
}

func (n *fakeNode) String() string { return n.name }

func (n *fakeNode) Children() []view.Node {
	out := make([]view.Node, len(n.children))
	for i, c := range n.children {
		out[i] = c
	}
	return out
}

func (n *fakeNode) HasAttr(name string) bool {
	_, ok := n.attrs[name]
	return ok
}

func (n *fakeNode) Attr(name string) string { return n.attrs[name] }

func (n *fakeNode) Facet(name string) any { return n.facets[name] }

func (n *fakeNode) SetFacet(name string, value any) error {
	n.facets[name] = value
	if n.log != nil {
		*n.log = append(*n.log, n.name+"."+name)
	}
	return nil
}

func (n *fakeNode) Visibility() view.Visibility { return n.visibility }

func (n *fakeNode) SetVisibility(v view.Visibility) {
	n.visibility = v
	if n.log != nil {
		*n.log = append(*n.log, n.name+".visibility")
	}
}

func (n *fakeNode) On(event string, fn func() error) {
	n.handlers[event] = append(n.handlers[event], fn)
}

// fire runs every handler registered for event.
func (n *fakeNode) fire(event string) error {
	for _, fn := range n.handlers[event] {
		if err := fn(); err != nil {
			return err
		}
	}
	return nil
}
