package vtest

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/vango-dev/vbind"
	"github.com/vango-dev/vbind/pkg/reactive"
	"github.com/vango-dev/vbind/pkg/render"
	"github.com/vango-dev/vbind/pkg/vdom"
	"github.com/vango-dev/vbind/pkg/view"
)

// Harness is a bound view tree under test.
type Harness struct {
	t      testing.TB
	Engine *vbind.Engine
	Root   *vdom.VNode
}

// New parses markup, binds it, and fails the test on any error.
func New(t testing.TB, markup string, data map[string]any, methods map[string]vbind.Method) *Harness {
	t.Helper()
	root, err := vdom.ParseHTMLString(markup)
	if err != nil {
		t.Fatalf("vtest: parse template: %v", err)
	}
	return Mount(t, root, data, methods)
}

// Mount binds an already built tree and fails the test on any error.
func Mount(t testing.TB, root *vdom.VNode, data map[string]any, methods map[string]vbind.Method) *Harness {
	t.Helper()
	e, err := vbind.New(context.Background(), vbind.Config{
		Root:    root,
		Data:    data,
		Methods: methods,
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	if err != nil {
		t.Fatalf("vtest: bind: %v", err)
	}
	return &Harness{t: t, Engine: e, Root: root}
}

// Find returns the first node matching selector, failing the test if none does.
func (h *Harness) Find(selector string) *vdom.VNode {
	h.t.Helper()
	n := vdom.Query(h.Root, selector)
	if n == nil {
		h.t.Fatalf("vtest: no node matches %q", selector)
	}
	return n
}

// Click dispatches a click on the node matching selector.
func (h *Harness) Click(selector string) {
	h.t.Helper()
	n := h.Find(selector)
	if err := h.Engine.Dispatch(context.Background(), n, view.EventClick); err != nil {
		h.t.Fatalf("vtest: click %s: %v", selector, err)
	}
}

// Input types value into the node matching selector.
func (h *Harness) Input(selector, value string) {
	h.t.Helper()
	n := h.Find(selector)
	if err := n.SetFacet(view.FacetValue, value); err != nil {
		h.t.Fatalf("vtest: input %s: %v", selector, err)
	}
	if err := h.Engine.Dispatch(context.Background(), n, view.EventInput); err != nil {
		h.t.Fatalf("vtest: input %s: %v", selector, err)
	}
}

// Set writes a data field.
func (h *Harness) Set(field string, value any) {
	h.t.Helper()
	if err := h.Engine.Set(field, value); err != nil {
		h.t.Fatalf("vtest: set %s: %v", field, err)
	}
}

// ExpectField asserts the current value of a data field.
func (h *Harness) ExpectField(field string, want any) {
	h.t.Helper()
	got, ok := h.Engine.Get(field)
	if !ok {
		h.t.Errorf("field %q does not exist", field)
		return
	}
	if !reactive.Equal(got, want) {
		h.t.Errorf("field %q: expected %v, got %v", field, want, got)
	}
}

// ExpectText asserts the text content of the node matching selector.
func (h *Harness) ExpectText(selector, want string) {
	h.t.Helper()
	if got := h.Find(selector).TextContent(); got != want {
		h.t.Errorf("%s text: expected %q, got %q", selector, want, got)
	}
}

// ExpectValue asserts the value facet of the node matching selector.
func (h *Harness) ExpectValue(selector string, want any) {
	h.t.Helper()
	got := h.Find(selector).Facet(view.FacetValue)
	if !reactive.Equal(got, want) {
		h.t.Errorf("%s value: expected %v, got %v", selector, want, got)
	}
}

// ExpectVisible asserts the visibility of the node matching selector.
func (h *Harness) ExpectVisible(selector string, visible bool) {
	h.t.Helper()
	want := view.Hidden
	if visible {
		want = view.Shown
	}
	if got := h.Find(selector).Visibility(); got != want {
		h.t.Errorf("%s visibility: expected %s, got %s", selector, want, got)
	}
}

// HTML renders the bound tree.
func (h *Harness) HTML() string {
	return RenderToString(h.Root)
}

// RenderToString renders a VNode and returns the HTML string.
// This is useful for asserting on rendered output.
func RenderToString(node *vdom.VNode) string {
	r := render.NewRenderer(render.RendererConfig{})
	html, err := r.RenderToString(node)
	if err != nil {
		return ""
	}
	return html
}

// ExpectContains asserts that rendered output contains expected substring.
func ExpectContains(t testing.TB, node *vdom.VNode, expected string) {
	t.Helper()
	html := RenderToString(node)
	if !strings.Contains(html, expected) {
		t.Errorf("expected rendered output to contain %q, got:\n%s", expected, truncate(html, 500))
	}
}

// ExpectNotContains asserts that rendered output does not contain substring.
func ExpectNotContains(t testing.TB, node *vdom.VNode, unexpected string) {
	t.Helper()
	html := RenderToString(node)
	if strings.Contains(html, unexpected) {
		t.Errorf("expected rendered output to NOT contain %q, got:\n%s", unexpected, truncate(html, 500))
	}
}

// truncate truncates a string to max length with ellipsis.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
