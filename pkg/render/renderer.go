package render

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/vango-dev/vbind/pkg/reactive"
	"github.com/vango-dev/vbind/pkg/vdom"
	"github.com/vango-dev/vbind/pkg/view"
)

// RendererConfig configures the HTML renderer.
type RendererConfig struct {
	// Pretty enables pretty-printed HTML output with indentation.
	Pretty bool

	// Indent is the string used for each indentation level in pretty mode.
	// Defaults to two spaces if not specified.
	Indent string

	// StripAnnotations omits binding annotations from the output.
	StripAnnotations bool
}

// Renderer serializes a live VNode tree to HTML.
//
// The output reflects the tree's current state: a written text facet
// replaces the element's content, other written facets override the
// attribute of the same name, and the visibility facet is appended to the
// style attribute as a display declaration.
type Renderer struct {
	config RendererConfig
}

// NewRenderer creates a new Renderer with the given configuration.
func NewRenderer(config RendererConfig) *Renderer {
	if config.Indent == "" {
		config.Indent = "  "
	}
	return &Renderer{config: config}
}

// RenderToString renders a VNode tree to an HTML string.
func (r *Renderer) RenderToString(node *vdom.VNode) (string, error) {
	var buf bytes.Buffer
	if err := r.RenderToWriter(&buf, node); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderToWriter streams a VNode tree to the given writer.
func (r *Renderer) RenderToWriter(w io.Writer, node *vdom.VNode) error {
	return r.renderNode(w, node, 0)
}

// renderNode dispatches rendering based on node kind.
func (r *Renderer) renderNode(w io.Writer, node *vdom.VNode, depth int) error {
	if node == nil {
		return nil
	}

	switch node.Kind {
	case vdom.KindElement:
		return r.renderElement(w, node, depth)
	case vdom.KindText:
		return r.renderText(w, node.Text)
	default:
		return fmt.Errorf("unknown node kind: %d", node.Kind)
	}
}

// renderElement renders an HTML element with its attributes and children.
func (r *Renderer) renderElement(w io.Writer, node *vdom.VNode, depth int) error {
	tag := node.Tag

	if r.config.Pretty && depth > 0 {
		r.writeIndent(w, depth)
	}

	if _, err := fmt.Fprintf(w, "<%s", tag); err != nil {
		return err
	}
	if err := r.renderAttributes(w, node); err != nil {
		return err
	}
	if _, err := w.Write([]byte{'>'}); err != nil {
		return err
	}

	if vdom.IsVoidElement(tag) {
		if r.config.Pretty {
			w.Write([]byte{'\n'})
		}
		return nil
	}

	if node.HasFacet(view.FacetText) {
		// A written text facet replaces the children.
		if err := r.renderText(w, reactive.Format(node.Facet(view.FacetText))); err != nil {
			return err
		}
	} else {
		hasBlockChildren := hasElementChild(node) && !isInlineElement(tag)
		if r.config.Pretty && hasBlockChildren {
			w.Write([]byte{'\n'})
		}

		for _, child := range node.Nodes {
			if err := r.renderNode(w, child, depth+1); err != nil {
				return err
			}
		}

		if r.config.Pretty && hasBlockChildren {
			r.writeIndent(w, depth)
		}
	}

	if _, err := fmt.Fprintf(w, "</%s>", tag); err != nil {
		return err
	}
	if r.config.Pretty {
		w.Write([]byte{'\n'})
	}
	return nil
}

// renderText renders text with HTML escaping.
func (r *Renderer) renderText(w io.Writer, text string) error {
	_, err := io.WriteString(w, escapeHTML(text))
	return err
}

// renderAttributes renders the effective attributes of an element in
// sorted order.
func (r *Renderer) renderAttributes(w io.Writer, node *vdom.VNode) error {
	attrs := effectiveAttrs(node, r.config.StripAnnotations)

	keys := make([]string, 0, len(attrs))
	for key := range attrs {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := attrs[key]

		if isBooleanAttr(key) && (value == "" || value == key || value == "true") {
			if _, err := fmt.Fprintf(w, " %s", key); err != nil {
				return err
			}
			continue
		}
		if isBooleanAttr(key) && value == "false" {
			continue
		}

		if _, err := fmt.Fprintf(w, ` %s="%s"`, key, escapeAttr(value)); err != nil {
			return err
		}
	}
	return nil
}

// effectiveAttrs merges static attributes with written facets and the
// visibility facet.
func effectiveAttrs(node *vdom.VNode, stripAnnotations bool) map[string]string {
	out := make(map[string]string, len(node.Attrs)+2)
	for k, v := range node.Attrs {
		if stripAnnotations && isAnnotation(k) {
			continue
		}
		out[k] = v
	}

	for _, name := range node.Facets() {
		if name == view.FacetNone || name == view.FacetText {
			continue
		}
		out[name] = reactive.Format(node.Facet(name))
	}

	if display := node.Display(); display != "" {
		style := strings.TrimRight(strings.TrimSpace(out["style"]), ";")
		if style != "" {
			style += "; "
		}
		out["style"] = style + "display:" + display
	}
	return out
}

func hasElementChild(node *vdom.VNode) bool {
	for _, c := range node.Nodes {
		if c != nil && c.Kind == vdom.KindElement {
			return true
		}
	}
	return false
}

func isAnnotation(name string) bool {
	switch name {
	case view.AttrClick, view.AttrIf, view.AttrModel, view.AttrText:
		return true
	}
	return false
}

// writeIndent writes indentation for pretty printing.
func (r *Renderer) writeIndent(w io.Writer, depth int) {
	for i := 0; i < depth; i++ {
		w.Write([]byte(r.config.Indent))
	}
}
