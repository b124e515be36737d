package vdom

import (
	"fmt"

	"github.com/vango-dev/vbind/pkg/view"
)

// Dispatch runs every callback registered for event in registration order.
// The first error stops dispatch and is returned.
func (v *VNode) Dispatch(event string) error {
	for i, fn := range v.listeners[event] {
		if err := fn(); err != nil {
			return fmt.Errorf("%s %s handler %d: %w", v, event, i, err)
		}
	}
	return nil
}

// Click simulates a primary activation of the node.
func (v *VNode) Click() error {
	return v.Dispatch(view.EventClick)
}

// Input simulates the user typing value into the node: the value facet is
// written first and the input event dispatched after.
func (v *VNode) Input(value string) error {
	if err := v.SetFacet(view.FacetValue, value); err != nil {
		return err
	}
	return v.Dispatch(view.EventInput)
}
