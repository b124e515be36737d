package script

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vango-dev/vbind"
	vberrors "github.com/vango-dev/vbind/internal/errors"
	"github.com/vango-dev/vbind/pkg/vdom"
)

const counterPage = `<body>
  <span id="count" one-way-text="count"></span>
  <button id="inc" click-action="increment">+</button>
  <button id="toggle" click-action="toggle">details</button>
  <section id="panel" conditional-visibility="open">more</section>
  <input id="name" two-way-value="name">
  <p id="greeting" one-way-text="name"></p>
</body>`

const counterScript = `data:
  count: 0
  open: false
  name: ada
methods:
  increment:
    - add: {field: count, by: 1}
  toggle:
    - toggle: open
  reset:
    - set: {field: count, value: 0}
    - set: {field: open, value: false}
steps:
  - click: "#inc"
  - click: "#inc"
  - expect: {target: "#count", text: "2"}
  - expect: {field: count, value: 2}
  - click: "#toggle"
  - expect: {target: "#panel", visible: true}
  - input: {target: "#name", value: grace}
  - expect: {target: "#greeting", text: grace}
  - expect: {target: "#name", value: grace}
  - set: {field: count, value: 10}
  - expect: {target: "#count", text: "10"}
`

func bindScript(t *testing.T, s *Script, page string) (*vbind.Engine, *vdom.VNode) {
	t.Helper()
	root, err := vdom.ParseHTMLString(page)
	require.NoError(t, err)

	e, err := vbind.New(context.Background(), vbind.Config{
		Root:    root,
		Data:    s.Data,
		Methods: s.BuildMethods(),
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)
	return e, root
}

func code(err error) string {
	var ve *vberrors.Error
	if errors.As(err, &ve) {
		return ve.Code
	}
	return ""
}

func TestParse(t *testing.T) {
	s, err := Parse(strings.NewReader(counterScript), "counter.yaml")
	require.NoError(t, err)

	assert.Equal(t, "counter.yaml", s.Name())
	assert.Equal(t, map[string]any{"count": 0, "open": false, "name": "ada"}, s.Data)
	assert.Len(t, s.Methods, 3)
	assert.Len(t, s.Steps, 11)
	assert.Equal(t, "click", s.Steps[0].Kind())
	assert.Equal(t, "expect", s.Steps[2].Kind())
	assert.Equal(t, "input", s.Steps[6].Kind())
	assert.Equal(t, "set", s.Steps[9].Kind())
	assert.Equal(t, "add", s.Methods["increment"][0].Kind())
	assert.Equal(t, 14, s.line(0), "first step line")
}

func TestParseEmpty(t *testing.T) {
	s, err := Parse(strings.NewReader(""), "empty.yaml")
	require.NoError(t, err)
	assert.Empty(t, s.Steps)
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	_, err := Parse(strings.NewReader("data: {}\nstep: []\n"), "typo.yaml")
	require.Error(t, err)
	assert.Equal(t, "S001", code(err))
}

func TestParseInvalidSteps(t *testing.T) {
	tests := []struct {
		name string
		step string
	}{
		{"empty", "{}"},
		{"two actions", `{click: "#a", set: {field: x, value: 1}}`},
		{"input without target", "{input: {value: x}}"},
		{"expect without subject", "{expect: {text: x}}"},
		{"expect both subjects", `{expect: {target: "#a", field: x, value: 1}}`},
		{"expect nothing", `{expect: {target: "#a"}}`},
		{"field with text", "{expect: {field: x, text: y}}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader("steps:\n  - "+tt.step+"\n"), "bad.yaml")
			require.Error(t, err)
			assert.Equal(t, "S001", code(err))

			var ve *vberrors.Error
			require.True(t, errors.As(err, &ve))
			require.NotNil(t, ve.Location)
			assert.Equal(t, 2, ve.Location.Line)
		})
	}
}

func TestParseInvalidMethods(t *testing.T) {
	tests := []string{
		"{}",
		"{toggle: a, set: {field: b, value: 1}}",
		"{add: {by: 1}}",
		"{add: {field: n, by: one}}",
	}

	for _, op := range tests {
		_, err := Parse(strings.NewReader("methods:\n  m:\n    - "+op+"\n"), "bad.yaml")
		assert.Equal(t, "S004", code(err), op)
	}
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte(counterScript), 0644))

	s, err := ParseFile(path)
	require.NoError(t, err)
	assert.Equal(t, path, s.Name())

	_, err = ParseFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Equal(t, "S001", code(err))
}

func TestRun(t *testing.T) {
	s, err := Parse(strings.NewReader(counterScript), "counter.yaml")
	require.NoError(t, err)
	e, root := bindScript(t, s, counterPage)

	n, err := NewRunner(e, root, nil).Run(context.Background(), s)
	require.NoError(t, err)
	assert.Equal(t, len(s.Steps), n)

	v, _ := e.Get("name")
	assert.Equal(t, "grace", v)
	assert.Equal(t, "10", vdom.ByID(root, "count").TextContent())
}

func TestRunExpectationFailure(t *testing.T) {
	src := `data: {count: 0}
steps:
  - set: {field: count, value: 1}
  - expect: {target: "#count", text: "2"}
  - set: {field: count, value: 3}
`
	s, err := Parse(strings.NewReader(src), "fail.yaml")
	require.NoError(t, err)
	e, root := bindScript(t, s, `<span id="count" one-way-text="count"></span>`)

	n, err := NewRunner(e, root, nil).Run(context.Background(), s)
	require.Error(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, "S002", code(err))
	assert.Contains(t, err.Error(), "Expectation failed")

	v, _ := e.Get("count")
	assert.Equal(t, 1, v, "steps after a failure must not run")
}

func TestRunTargetNotFound(t *testing.T) {
	s, err := Parse(strings.NewReader("data: {}\nsteps:\n  - click: \"#nope\"\n"), "missing.yaml")
	require.NoError(t, err)
	e, root := bindScript(t, s, `<div></div>`)

	_, err = NewRunner(e, root, nil).Run(context.Background(), s)
	assert.Equal(t, "S003", code(err))
}

func TestRunMethodTypeMismatch(t *testing.T) {
	src := `data: {label: hi}
methods:
  bump:
    - add: {field: label}
steps:
  - click: "#b"
`
	s, err := Parse(strings.NewReader(src), "mismatch.yaml")
	require.NoError(t, err)
	e, root := bindScript(t, s, `<button id="b" click-action="bump"></button>`)

	_, err = NewRunner(e, root, nil).Run(context.Background(), s)
	require.Error(t, err)

	var ve *vberrors.Error
	found := false
	for cur := error(err); errors.As(cur, &ve); cur = ve.Wrapped {
		if ve.Code == "S004" {
			found = true
			break
		}
	}
	assert.True(t, found, "expected an S004 in the chain: %v", err)
}

func TestRunCanceled(t *testing.T) {
	s, err := Parse(strings.NewReader(counterScript), "counter.yaml")
	require.NoError(t, err)
	e, root := bindScript(t, s, counterPage)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	n, err := NewRunner(e, root, nil).Run(ctx, s)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, n)
}

func TestAddNumbers(t *testing.T) {
	assert.Equal(t, 3, addNumbers(1, 2))
	assert.Equal(t, 3.5, addNumbers(1, 2.5))
	assert.Equal(t, 1.5, addNumbers(0.5, 1))
	assert.Equal(t, 4.0, addNumbers(uint(2), 2))
}

func TestBuildMethods(t *testing.T) {
	src := `data: {n: 1, flag: true, s: a}
methods:
  all:
    - add: {field: n, by: 2}
    - toggle: flag
    - set: {field: s, value: b}
`
	s, err := Parse(strings.NewReader(src), "m.yaml")
	require.NoError(t, err)
	e, _ := bindScript(t, s, `<div></div>`)

	require.NoError(t, s.BuildMethods()["all"](e.Data()))
	assert.Equal(t, map[string]any{"n": 3, "flag": false, "s": "b"}, e.Data().Snapshot())
}
