package vbind

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"reflect"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	vberrors "github.com/vango-dev/vbind/internal/errors"
	"github.com/vango-dev/vbind/pkg/bind"
	"github.com/vango-dev/vbind/pkg/reactive"
	"github.com/vango-dev/vbind/pkg/view"
)

// State is the lifecycle state of an Engine.
type State uint8

const (
	StateUninitialized State = iota
	StateBound
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateBound:
		return "bound"
	default:
		return "unknown"
	}
}

// Dispatcher is implemented by view nodes that can run their own event
// callbacks, such as *vdom.VNode.
type Dispatcher interface {
	Dispatch(event string) error
}

// Engine owns a data record, its subscriber registry, the method table and
// the bound view tree. Binding happens once, in New, and is permanent.
type Engine struct {
	id    string
	state State

	root     view.Node
	data     *reactive.Store
	registry *reactive.Registry
	methods  map[string]Method
	bindings []bind.Binding

	logger  *slog.Logger
	metrics *Metrics
	tracer  trace.Tracer
}

// New makes cfg.Data reactive and binds every annotation under cfg.Root.
//
// Binding stops at the first template fault (an unknown field or method)
// and New returns that error; no engine is returned in that case.
func New(ctx context.Context, cfg Config) (*Engine, error) {
	e := &Engine{
		id:      uuid.NewString(),
		state:   StateUninitialized,
		root:    cfg.Root,
		methods: cfg.Methods,
		logger:  cfg.Logger,
		metrics: cfg.Metrics,
		tracer:  cfg.Tracer,
	}
	if e.logger == nil {
		e.logger = slog.Default()
	}
	if e.tracer == nil {
		e.tracer = defaultTracer()
	}
	e.logger = e.logger.With("engine_id", e.id)

	_, span := e.tracer.Start(ctx, "vbind.Bind", trace.WithAttributes(
		attribute.String("vbind.engine_id", e.id),
	))

	err := e.bind(cfg.Data)
	e.metrics.recordBound(err)
	endSpan(span, err,
		attribute.Int("vbind.fields", e.fieldCount()),
		attribute.Int("vbind.bindings", len(e.bindings)))
	if err != nil {
		e.logger.Error("bind failed", "error", err)
		return nil, err
	}

	e.state = StateBound
	e.logger.Info("engine bound",
		"fields", e.fieldCount(),
		"bindings", len(e.bindings),
		"watchers", e.registry.Len())
	return e, nil
}

// bind runs store setup and one full binder pass.
func (e *Engine) bind(record map[string]any) error {
	if isNilNode(e.root) {
		return vberrors.New("B004")
	}

	data, err := reactive.NewStore(record, reactive.WithWriteHook(e.onWrite))
	if err != nil {
		return vberrors.FromError(err, "B003")
	}
	e.data = data

	e.registry = reactive.NewRegistry(data.Fields(), reactive.WithApplyHook(e.metrics.recordApply))
	data.Attach(e.registry)

	binder := bind.NewBinder(data, e.registry, e.methods,
		bind.WithLogger(e.logger),
		bind.WithBindHook(func(b bind.Binding) {
			e.metrics.recordBinding(b.Kind.String())
		}))

	e.bindings, err = binder.Compile(e.root)
	return err
}

// isNilNode also catches a typed nil pointer stored in the interface.
func isNilNode(n view.Node) bool {
	if n == nil {
		return true
	}
	v := reflect.ValueOf(n)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

func (e *Engine) onWrite(field string, changed bool) {
	e.metrics.recordWrite(field, changed)
	if changed {
		e.logger.Debug("field changed", "field", field)
	}
}

func (e *Engine) fieldCount() int {
	if e.data == nil {
		return 0
	}
	return len(e.data.Fields())
}

// ID returns the engine's unique instance ID.
func (e *Engine) ID() string { return e.id }

// State returns the engine's lifecycle state.
func (e *Engine) State() State { return e.state }

// Root returns the bound root node.
func (e *Engine) Root() view.Node { return e.root }

// Data returns the reactive data record.
func (e *Engine) Data() *Data { return e.data }

// Registry returns the subscriber registry.
func (e *Engine) Registry() *reactive.Registry { return e.registry }

// Get returns the current value of a field.
func (e *Engine) Get(field string) (any, bool) {
	return e.data.Get(field)
}

// Set writes a field and synchronously applies every dependent watcher.
// A failure inside the notification chain is reported as R001; the value
// stays written.
func (e *Engine) Set(field string, value any) error {
	changed, err := e.data.Set(field, value)
	if err == nil {
		return nil
	}
	if changed {
		return vberrors.New("R001").Wrap(err)
	}
	if errors.Is(err, reactive.ErrUnknownField) {
		return vberrors.New("B001").Wrap(err).
			WithSuggestion(vberrors.DidYouMean(field, e.data.Fields()))
	}
	return vberrors.FromError(err, "B003")
}

// Bindings returns the realized bindings in registration order.
func (e *Engine) Bindings() []bind.Binding {
	out := make([]bind.Binding, len(e.bindings))
	copy(out, e.bindings)
	return out
}

// Watchers returns the watchers registered for field in notification order.
func (e *Engine) Watchers(field string) []*bind.Watcher {
	subs := e.registry.Subscribers(field)
	out := make([]*bind.Watcher, 0, len(subs))
	for _, s := range subs {
		if w, ok := s.(*bind.Watcher); ok {
			out = append(out, w)
		}
	}
	return out
}

// Dispatch runs node's callbacks for event inside a span. The node must
// implement Dispatcher.
func (e *Engine) Dispatch(ctx context.Context, node view.Node, event string) error {
	d, ok := node.(Dispatcher)
	if !ok {
		return vberrors.New("R002").Wrap(fmt.Errorf("vbind: %T cannot dispatch events", node))
	}

	_, span := e.tracer.Start(ctx, "vbind.Dispatch", trace.WithAttributes(
		attribute.String("vbind.engine_id", e.id),
		attribute.String("vbind.event", event),
	))

	err := d.Dispatch(event)
	if err != nil {
		e.metrics.recordDispatchError(event)
		err = vberrors.New("R002").Wrap(err)
	}
	endSpan(span, err)
	return err
}
