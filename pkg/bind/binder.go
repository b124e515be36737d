package bind

import (
	"fmt"
	"log/slog"

	vberrors "github.com/vango-dev/vbind/internal/errors"
	"github.com/vango-dev/vbind/pkg/reactive"
	"github.com/vango-dev/vbind/pkg/view"
)

// Method is a click handler from the method table. It receives the data
// record explicitly instead of through an implicit receiver.
type Method func(data *reactive.Store) error

// Binding is a realized request.
type Binding struct {
	Request

	// Watcher is the registered watcher, nil for click bindings.
	Watcher *Watcher
}

// Option configures a Binder.
type Option func(*Binder)

// WithLogger sets the logger used for per-binding debug records.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Binder) {
		b.logger = logger
	}
}

// WithBindHook registers a function called after each binding is realized.
func WithBindHook(fn func(Binding)) Option {
	return func(b *Binder) {
		b.onBind = fn
	}
}

// Binder realizes binding requests against a store and its registry.
type Binder struct {
	store    *reactive.Store
	registry *reactive.Registry
	methods  map[string]Method
	logger   *slog.Logger
	onBind   func(Binding)
}

// NewBinder creates a binder. methods may be nil if the tree has no
// click-action annotations.
func NewBinder(store *reactive.Store, registry *reactive.Registry, methods map[string]Method, opts ...Option) *Binder {
	b := &Binder{
		store:    store,
		registry: registry,
		methods:  methods,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Compile discovers and realizes every binding under root.
func (b *Binder) Compile(root view.Node) ([]Binding, error) {
	return b.Realize(Discover(root))
}

// Realize turns requests into bindings in order. The first failure stops
// realization; bindings realized before it stay in place.
func (b *Binder) Realize(reqs []Request) ([]Binding, error) {
	bindings := make([]Binding, 0, len(reqs))
	for _, req := range reqs {
		binding, err := b.realize(req)
		if err != nil {
			return bindings, err
		}
		bindings = append(bindings, binding)

		b.logger.Debug("binding realized",
			"kind", req.Kind.String(),
			"name", req.Name,
			"node", describe(req.Node))
		if b.onBind != nil {
			b.onBind(binding)
		}
	}
	return bindings, nil
}

func (b *Binder) realize(req Request) (Binding, error) {
	switch req.Kind {
	case KindClick:
		return b.bindClick(req)
	case KindIf:
		return b.bindWatcher(req, view.FacetNone)
	case KindModel:
		binding, err := b.bindWatcher(req, view.FacetValue)
		if err != nil {
			return binding, err
		}
		b.bindInput(req)
		return binding, nil
	case KindText:
		return b.bindWatcher(req, view.FacetText)
	default:
		return Binding{}, fmt.Errorf("vbind: unknown binding kind %d", req.Kind)
	}
}

// bindClick attaches the named method as the node's click handler.
func (b *Binder) bindClick(req Request) (Binding, error) {
	method, ok := b.methods[req.Name]
	if !ok || method == nil {
		return Binding{}, vberrors.New("B002").
			Wrap(fmt.Errorf("%w: %s", ErrUnknownMethod, req)).
			WithSuggestion(vberrors.DidYouMean(req.Name, b.methodNames()))
	}

	store := b.store
	req.Node.On(view.EventClick, func() error {
		return method(store)
	})
	return Binding{Request: req}, nil
}

// bindWatcher creates a watcher for req and registers it under its field.
// The field is checked first so a bad template leaves the node untouched.
func (b *Binder) bindWatcher(req Request, facet string) (Binding, error) {
	if !b.registry.Has(req.Name) {
		return Binding{}, b.unknownField(req)
	}

	w, err := NewWatcher(b.store, req.Node, facet, req.Name)
	if err != nil {
		return Binding{}, err
	}
	if err := b.registry.Register(req.Name, w); err != nil {
		return Binding{}, b.unknownField(req)
	}
	return Binding{Request: req, Watcher: w}, nil
}

// bindInput writes the node's value facet back into the field on every
// input event. The write goes through the store, so an unchanged value is a
// no-op and a changed one notifies every watcher of the field.
func (b *Binder) bindInput(req Request) {
	store, node, field := b.store, req.Node, req.Name
	node.On(view.EventInput, func() error {
		_, err := store.Set(field, node.Facet(view.FacetValue))
		return err
	})
}

func (b *Binder) unknownField(req Request) error {
	return vberrors.New("B001").
		Wrap(fmt.Errorf("%w: %s", reactive.ErrUnknownField, req)).
		WithSuggestion(vberrors.DidYouMean(req.Name, b.store.Fields()))
}

func (b *Binder) methodNames() []string {
	names := make([]string, 0, len(b.methods))
	for name := range b.methods {
		names = append(names, name)
	}
	return names
}
