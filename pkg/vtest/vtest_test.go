package vtest_test

import (
	"strings"
	"testing"

	"github.com/vango-dev/vbind"
	"github.com/vango-dev/vbind/pkg/vdom"
	"github.com/vango-dev/vbind/pkg/vtest"
)

const page = `<body>
  <h1 id="greeting" one-way-text="name">placeholder</h1>
  <input id="name" two-way-value="name">
  <span id="count" one-way-text="count"></span>
  <button id="inc" click-action="increment">+</button>
  <button id="toggle" click-action="toggle">details</button>
  <section id="details" conditional-visibility="open">more</section>
</body>`

func methods() map[string]vbind.Method {
	return map[string]vbind.Method{
		"increment": func(data *vbind.Data) error {
			n, _ := data.Value("count").(int)
			_, err := data.Set("count", n+1)
			return err
		},
		"toggle": func(data *vbind.Data) error {
			open, _ := data.Value("open").(bool)
			_, err := data.Set("open", !open)
			return err
		},
	}
}

func newPage(t *testing.T) *vtest.Harness {
	return vtest.New(t, page, map[string]any{"name": "ada", "count": 0, "open": false}, methods())
}

func TestHarnessInitialState(t *testing.T) {
	h := newPage(t)

	h.ExpectText("#greeting", "ada")
	h.ExpectValue("#name", "ada")
	h.ExpectText("#count", "0")
	h.ExpectVisible("#details", false)
}

func TestHarnessClick(t *testing.T) {
	h := newPage(t)

	h.Click("#inc")
	h.Click("#inc")
	h.ExpectField("count", 2)
	h.ExpectText("#count", "2")

	h.Click("#toggle")
	h.ExpectVisible("#details", true)
	h.Click("#toggle")
	h.ExpectVisible("#details", false)
}

func TestHarnessInput(t *testing.T) {
	h := newPage(t)

	h.Input("#name", "grace")
	h.ExpectField("name", "grace")
	h.ExpectText("#greeting", "grace")
	h.ExpectValue("#name", "grace")
}

func TestHarnessSet(t *testing.T) {
	h := newPage(t)

	h.Set("name", "linus")
	h.ExpectText("#greeting", "linus")
	h.ExpectValue("#name", "linus")
}

func TestHarnessHTML(t *testing.T) {
	h := newPage(t)

	html := h.HTML()
	if !strings.Contains(html, `<h1 id="greeting" one-way-text="name">ada</h1>`) {
		t.Errorf("unexpected html:\n%s", html)
	}
	vtest.ExpectContains(t, h.Root, "display:none")
	h.Click("#toggle")
	vtest.ExpectNotContains(t, h.Root, "display:none")
}

func TestMount(t *testing.T) {
	label := vdom.Span(vdom.ID("l"), vdom.Bind("x"))
	h := vtest.Mount(t, vdom.Div(label), map[string]any{"x": 1.5}, nil)

	h.ExpectText("#l", "1.5")
}

func TestRenderToString(t *testing.T) {
	html := vtest.RenderToString(vdom.Div(vdom.Class("test"), "Hello"))

	if html != `<div class="test">Hello</div>` {
		t.Errorf("got %q", html)
	}
}
