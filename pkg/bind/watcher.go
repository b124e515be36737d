package bind

import (
	"fmt"

	"github.com/vango-dev/vbind/pkg/reactive"
	"github.com/vango-dev/vbind/pkg/view"
)

// Watcher applies one field of a store to one facet of a node.
type Watcher struct {
	store *reactive.Store
	node  view.Node
	facet string
	field string
}

// NewWatcher creates a watcher and applies the field's current value.
// The returned error is the error of that first apply; the watcher is
// returned in either case.
func NewWatcher(store *reactive.Store, node view.Node, facet, field string) (*Watcher, error) {
	w := &Watcher{
		store: store,
		node:  node,
		facet: facet,
		field: field,
	}
	return w, w.Apply()
}

// Apply reads the field and writes it to the node.
//
// true shows the node and false hides it, regardless of the watcher's facet.
// Any other value is written into the facet.
func (w *Watcher) Apply() error {
	value, ok := w.store.Get(w.field)
	if !ok {
		return fmt.Errorf("%w: %q", reactive.ErrUnknownField, w.field)
	}

	if b, isBool := value.(bool); isBool {
		if b {
			w.node.SetVisibility(view.Shown)
		} else {
			w.node.SetVisibility(view.Hidden)
		}
		return nil
	}

	if err := w.node.SetFacet(w.facet, value); err != nil {
		return fmt.Errorf("set %s facet %q from %q: %w", describe(w.node), w.facet, w.field, err)
	}
	return nil
}

// Field returns the observed field name.
func (w *Watcher) Field() string { return w.field }

// Facet returns the facet the watcher writes non-boolean values into.
func (w *Watcher) Facet() string { return w.facet }

// Node returns the node the watcher controls.
func (w *Watcher) Node() view.Node { return w.node }
