package vbind

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	vberrors "github.com/vango-dev/vbind/internal/errors"
	"github.com/vango-dev/vbind/pkg/bind"
	"github.com/vango-dev/vbind/pkg/reactive"
	"github.com/vango-dev/vbind/pkg/vdom"
	"github.com/vango-dev/vbind/pkg/view"
)

type recordingTracer struct {
	trace.Tracer
	spans []string
}

func (r *recordingTracer) Start(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	r.spans = append(r.spans, name)
	return r.Tracer.Start(ctx, name, opts...)
}

func newRecordingTracer() *recordingTracer {
	return &recordingTracer{Tracer: noop.NewTracerProvider().Tracer("test")}
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
}

// counterTree is a small counter page: a label bound to count, a button
// that increments it, a panel shown while open, and a name input echoed
// into a greeting.
func counterTree() (root, label, button, panel, input, greeting *vdom.VNode) {
	label = vdom.Span(vdom.ID("label"), vdom.Bind("count"), "0")
	button = vdom.Button(vdom.ID("inc"), vdom.Action("increment"), "+")
	panel = vdom.Section(vdom.ID("panel"), vdom.ShowIf("open"), "details")
	input = vdom.Input(vdom.ID("name"), vdom.Model("name"))
	greeting = vdom.P(vdom.ID("greeting"), vdom.Bind("name"))
	root = vdom.Div(label, button, panel, input, greeting)
	return
}

func counterMethods() map[string]Method {
	return map[string]Method{
		"increment": func(data *Data) error {
			n, _ := data.Value("count").(int)
			_, err := data.Set("count", n+1)
			return err
		},
	}
}

func newCounterEngine(t *testing.T, cfg Config) *Engine {
	t.Helper()
	if cfg.Logger == nil {
		cfg.Logger = quietLogger()
	}
	e, err := New(context.Background(), cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return e
}

func TestNewBindsTree(t *testing.T) {
	root, label, _, panel, input, greeting := counterTree()
	e := newCounterEngine(t, Config{
		Root:    root,
		Data:    map[string]any{"count": 3, "open": false, "name": "ada"},
		Methods: counterMethods(),
	})

	if e.State() != StateBound {
		t.Errorf("expected bound, got %s", e.State())
	}
	if e.ID() == "" {
		t.Error("expected engine ID")
	}
	if got := label.TextContent(); got != "3" {
		t.Errorf("label: expected 3, got %q", got)
	}
	if panel.Visibility() != view.Hidden {
		t.Error("panel should start hidden")
	}
	if input.Facet(view.FacetValue) != "ada" {
		t.Errorf("input: expected ada, got %v", input.Facet(view.FacetValue))
	}
	if got := greeting.TextContent(); got != "ada" {
		t.Errorf("greeting: expected ada, got %q", got)
	}
	if n := len(e.Bindings()); n != 5 {
		t.Errorf("expected 5 bindings, got %d", n)
	}
}

func TestEngineSetPropagates(t *testing.T) {
	root, label, _, panel, _, _ := counterTree()
	e := newCounterEngine(t, Config{
		Root:    root,
		Data:    map[string]any{"count": 0, "open": false, "name": ""},
		Methods: counterMethods(),
	})

	if err := e.Set("count", 41); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if label.TextContent() != "41" {
		t.Errorf("expected 41, got %q", label.TextContent())
	}
	if err := e.Set("open", true); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if panel.Display() != "block" {
		t.Errorf("expected display block, got %q", panel.Display())
	}
	if v, ok := e.Get("count"); !ok || v != 41 {
		t.Errorf("Get: got %v, %v", v, ok)
	}
}

func TestEngineSetUnknownField(t *testing.T) {
	root, _, _, _, _, _ := counterTree()
	e := newCounterEngine(t, Config{
		Root:    root,
		Data:    map[string]any{"count": 0, "open": false, "name": ""},
		Methods: counterMethods(),
	})

	err := e.Set("cuont", 1)
	if !errors.Is(err, reactive.ErrUnknownField) {
		t.Fatalf("expected ErrUnknownField, got %v", err)
	}
	var ve *vberrors.Error
	if !errors.As(err, &ve) || ve.Suggestion != `did you mean "count"?` {
		t.Errorf("expected suggestion for count, got %v", err)
	}
}

func TestEngineSetUnsupportedValue(t *testing.T) {
	root, _, _, _, _, _ := counterTree()
	e := newCounterEngine(t, Config{
		Root:    root,
		Data:    map[string]any{"count": 0, "open": false, "name": ""},
		Methods: counterMethods(),
	})

	err := e.Set("count", []int{1})
	if !errors.Is(err, reactive.ErrUnsupportedValue) {
		t.Fatalf("expected ErrUnsupportedValue, got %v", err)
	}
}

func TestEngineDispatchClick(t *testing.T) {
	root, label, button, _, _, _ := counterTree()
	tracer := newRecordingTracer()
	e := newCounterEngine(t, Config{
		Root:    root,
		Data:    map[string]any{"count": 0, "open": false, "name": ""},
		Methods: counterMethods(),
		Tracer:  tracer,
	})

	for i := 0; i < 3; i++ {
		if err := e.Dispatch(context.Background(), button, view.EventClick); err != nil {
			t.Fatalf("Dispatch: %v", err)
		}
	}
	if label.TextContent() != "3" {
		t.Errorf("expected 3, got %q", label.TextContent())
	}

	want := "vbind.Bind,vbind.Dispatch,vbind.Dispatch,vbind.Dispatch"
	if got := strings.Join(tracer.spans, ","); got != want {
		t.Errorf("spans: expected %s, got %s", want, got)
	}
}

func TestEngineDispatchInput(t *testing.T) {
	root, _, _, _, input, greeting := counterTree()
	e := newCounterEngine(t, Config{
		Root:    root,
		Data:    map[string]any{"count": 0, "open": false, "name": ""},
		Methods: counterMethods(),
	})

	input.SetFacet(view.FacetValue, "grace")
	if err := e.Dispatch(context.Background(), input, view.EventInput); err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if e.Data().Value("name") != "grace" {
		t.Errorf("expected name=grace, got %v", e.Data().Value("name"))
	}
	if greeting.TextContent() != "grace" {
		t.Errorf("expected greeting grace, got %q", greeting.TextContent())
	}
	if n := len(e.Watchers("name")); n != 2 {
		t.Errorf("expected 2 watchers on name, got %d", n)
	}
}

func TestEngineDispatchError(t *testing.T) {
	button := vdom.Button(vdom.Action("fail"))
	boom := errors.New("boom")
	e := newCounterEngine(t, Config{
		Root:    vdom.Div(button),
		Data:    map[string]any{},
		Methods: map[string]Method{"fail": func(*Data) error { return boom }},
	})

	err := e.Dispatch(context.Background(), button, view.EventClick)
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	var ve *vberrors.Error
	if !errors.As(err, &ve) || ve.Code != "R002" {
		t.Errorf("expected R002, got %v", err)
	}
}

type plainNode struct{ view.Node }

func TestEngineDispatchRequiresDispatcher(t *testing.T) {
	e := newCounterEngine(t, Config{Root: vdom.Div(), Data: map[string]any{}})

	err := e.Dispatch(context.Background(), plainNode{}, view.EventClick)
	var ve *vberrors.Error
	if !errors.As(err, &ve) || ve.Code != "R002" {
		t.Errorf("expected R002 for node without Dispatch, got %v", err)
	}
}

func TestNewMissingRoot(t *testing.T) {
	_, err := New(context.Background(), Config{Data: map[string]any{}, Logger: quietLogger()})

	var ve *vberrors.Error
	if !errors.As(err, &ve) || ve.Code != "B004" {
		t.Fatalf("expected B004, got %v", err)
	}
}

func TestNewTypedNilRoot(t *testing.T) {
	_, err := New(context.Background(), Config{
		Root:   (*vdom.VNode)(nil),
		Data:   map[string]any{},
		Logger: quietLogger(),
	})

	var ve *vberrors.Error
	if !errors.As(err, &ve) || ve.Code != "B004" {
		t.Fatalf("expected B004, got %v", err)
	}
}

func TestNewUnsupportedValue(t *testing.T) {
	_, err := New(context.Background(), Config{
		Root:   vdom.Div(),
		Data:   map[string]any{"items": []string{"a"}},
		Logger: quietLogger(),
	})

	if !errors.Is(err, reactive.ErrUnsupportedValue) {
		t.Fatalf("expected ErrUnsupportedValue, got %v", err)
	}
	var ve *vberrors.Error
	if !errors.As(err, &ve) || ve.Code != "B003" {
		t.Errorf("expected B003, got %v", err)
	}
}

func TestNewUnknownField(t *testing.T) {
	root := vdom.Div(vdom.P(vdom.Bind("missing")))
	_, err := New(context.Background(), Config{
		Root:   root,
		Data:   map[string]any{"present": 1},
		Logger: quietLogger(),
	})

	if !errors.Is(err, reactive.ErrUnknownField) {
		t.Fatalf("expected ErrUnknownField, got %v", err)
	}
}

func TestNewUnknownMethod(t *testing.T) {
	root := vdom.Div(vdom.Button(vdom.Action("missing")))
	_, err := New(context.Background(), Config{
		Root:   root,
		Data:   map[string]any{},
		Logger: quietLogger(),
	})

	if !errors.Is(err, bind.ErrUnknownMethod) {
		t.Fatalf("expected ErrUnknownMethod, got %v", err)
	}
}

func TestNewLogsBinding(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	root, _, _, _, _, _ := counterTree()
	e := newCounterEngine(t, Config{
		Root:    root,
		Data:    map[string]any{"count": 0, "open": false, "name": ""},
		Methods: counterMethods(),
		Logger:  logger,
	})
	if err := e.Set("count", 1); err != nil {
		t.Fatalf("Set: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"engine bound", "engine_id=" + e.ID(), "field changed", "field=count"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestStateString(t *testing.T) {
	if StateUninitialized.String() != "uninitialized" || StateBound.String() != "bound" {
		t.Error("unexpected state names")
	}
	if State(9).String() != "unknown" {
		t.Error("expected unknown")
	}
}
