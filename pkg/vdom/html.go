package vdom

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// ParseHTML parses an HTML document into a VNode tree rooted at <html>.
//
// Comments and doctype nodes are dropped, as are text nodes holding only
// whitespace. Attribute names are lower-cased by the parser; annotation
// values are kept verbatim.
func ParseHTML(r io.Reader) (*VNode, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("vdom: parse html: %w", err)
	}

	for c := doc.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			return convert(c), nil
		}
	}
	return nil, fmt.Errorf("vdom: parse html: no root element")
}

// ParseHTMLString is ParseHTML over a string.
func ParseHTMLString(s string) (*VNode, error) {
	return ParseHTML(strings.NewReader(s))
}

// convert maps an html.Node element and its subtree to a VNode.
func convert(n *html.Node) *VNode {
	node := &VNode{
		Kind:     KindElement,
		Tag:      n.Data,
		Attrs:    make(map[string]string, len(n.Attr)),
		Nodes:    make([]*VNode, 0),
	}
	for _, a := range n.Attr {
		key := a.Key
		if a.Namespace != "" {
			key = a.Namespace + ":" + key
		}
		node.Attrs[key] = a.Val
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.ElementNode:
			node.Nodes = append(node.Nodes, convert(c))
		case html.TextNode:
			if strings.TrimSpace(c.Data) == "" {
				continue
			}
			node.Nodes = append(node.Nodes, Text(c.Data))
		}
	}
	return node
}
