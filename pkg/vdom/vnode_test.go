package vdom

import (
	"testing"

	"github.com/vango-dev/vbind/pkg/view"
)

func TestVKindString(t *testing.T) {
	tests := []struct {
		kind VKind
		want string
	}{
		{KindElement, "Element"},
		{KindText, "Text"},
		{VKind(255), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.want {
				t.Errorf("VKind.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVNodeString(t *testing.T) {
	if got := Span(ID("label")).String(); got != "<span#label>" {
		t.Errorf("String() = %q", got)
	}
	if got := Div().String(); got != "<div>" {
		t.Errorf("String() = %q", got)
	}
	if got := Text("hi").String(); got != `text("hi")` {
		t.Errorf("String() = %q", got)
	}
}

func TestVNodeChildrenSkipsText(t *testing.T) {
	node := Div("hello", Span(), "world", P())

	children := node.Children()
	if len(children) != 2 {
		t.Fatalf("expected 2 element children, got %d", len(children))
	}
	if children[0].(*VNode).Tag != "span" || children[1].(*VNode).Tag != "p" {
		t.Error("children out of document order")
	}
}

func TestVNodeChildrenNil(t *testing.T) {
	var node *VNode
	if children := node.Children(); children != nil {
		t.Errorf("expected no children, got %v", children)
	}
}

func TestVNodeAttrs(t *testing.T) {
	node := Span(Bind("count"), Class("a", "b"))

	if !node.HasAttr(view.AttrText) {
		t.Error("expected one-way-text annotation")
	}
	if node.Attr(view.AttrText) != "count" {
		t.Errorf("Attr = %q, want count", node.Attr(view.AttrText))
	}
	if node.HasAttr(view.AttrModel) {
		t.Error("unexpected two-way-value annotation")
	}
	if node.Attr("class") != "a b" {
		t.Errorf("class = %q", node.Attr("class"))
	}
}

func TestVNodeFacets(t *testing.T) {
	node := Input(Value("initial"))

	if node.Facet(view.FacetValue) != "initial" {
		t.Errorf("unset value facet should fall back to the attribute, got %v", node.Facet(view.FacetValue))
	}

	if err := node.SetFacet(view.FacetValue, "typed"); err != nil {
		t.Fatalf("SetFacet: %v", err)
	}
	if node.Facet(view.FacetValue) != "typed" {
		t.Errorf("Facet = %v, want typed", node.Facet(view.FacetValue))
	}
	if !node.HasFacet(view.FacetValue) {
		t.Error("HasFacet should report written facets")
	}

	if err := node.SetFacet(view.FacetValue, []string{"x"}); err == nil {
		t.Error("non-scalar facet values should be rejected")
	}
	if node.Facet("missing") != nil {
		t.Error("unset facet without markup should be nil")
	}
}

func TestVNodeTextFacet(t *testing.T) {
	node := P("static ", Span("text"))

	if node.Facet(view.FacetText) != "static text" {
		t.Errorf("text facet should default to text content, got %v", node.Facet(view.FacetText))
	}

	node.SetFacet(view.FacetText, 42)
	if node.TextContent() != "42" {
		t.Errorf("TextContent = %q, want 42", node.TextContent())
	}
}

func TestVNodeVisibility(t *testing.T) {
	node := Div()

	if node.Visibility() != view.Shown {
		t.Error("nodes start shown")
	}
	if node.Display() != "" {
		t.Errorf("display should be unset, got %q", node.Display())
	}

	node.SetVisibility(view.Hidden)
	if node.Visibility() != view.Hidden || node.Display() != "none" {
		t.Errorf("expected hidden/none, got %s/%s", node.Visibility(), node.Display())
	}

	node.SetVisibility(view.Shown)
	if node.Display() != "block" {
		t.Errorf("expected block, got %s", node.Display())
	}
}
