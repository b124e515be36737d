package vdom

// voidElements are elements that cannot have children.
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// IsVoidElement returns true if the tag is a void element.
func IsVoidElement(tag string) bool {
	return voidElements[tag]
}

// Text creates a text node.
func Text(content string) *VNode {
	return &VNode{
		Kind: KindText,
		Text: content,
	}
}

// El creates an element with the given tag.
// Arguments can be: nil, Attr, []Attr, *VNode, []*VNode, string.
// Strings become text children.
func El(tag string, args ...any) *VNode {
	node := &VNode{
		Kind:     KindElement,
		Tag:      tag,
		Attrs:    make(map[string]string),
		Nodes:    make([]*VNode, 0),
	}

	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
			// Ignore nil (allows conditional attributes)
			continue

		case Attr:
			if !v.IsEmpty() {
				node.Attrs[v.Key] = v.Value
			}

		case []Attr:
			for _, a := range v {
				if !a.IsEmpty() {
					node.Attrs[a.Key] = a.Value
				}
			}

		case *VNode:
			if v != nil {
				node.Nodes = append(node.Nodes, v)
			}

		case []*VNode:
			for _, c := range v {
				if c != nil {
					node.Nodes = append(node.Nodes, c)
				}
			}

		case string:
			node.Nodes = append(node.Nodes, Text(v))
		}
	}

	if IsVoidElement(tag) {
		node.Nodes = node.Nodes[:0]
	}
	return node
}

// Div creates a <div> element.
func Div(args ...any) *VNode { return El("div", args...) }

// Span creates a <span> element.
func Span(args ...any) *VNode { return El("span", args...) }

// P creates a <p> element.
func P(args ...any) *VNode { return El("p", args...) }

// H1 creates an <h1> element.
func H1(args ...any) *VNode { return El("h1", args...) }

// Button creates a <button> element.
func Button(args ...any) *VNode { return El("button", args...) }

// Input creates an <input> element.
func Input(args ...any) *VNode { return El("input", args...) }

// Label creates a <label> element.
func Label(args ...any) *VNode { return El("label", args...) }

// Section creates a <section> element.
func Section(args ...any) *VNode { return El("section", args...) }
