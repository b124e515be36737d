package reactive

import "fmt"

// Subscriber is anything that reacts to a field change.
// This interface is implemented by watchers.
type Subscriber interface {
	// Apply re-reads the field and applies its effect.
	Apply() error
}

// SubscriberFunc adapts a function to the Subscriber interface.
type SubscriberFunc func() error

// Apply implements Subscriber.
func (f SubscriberFunc) Apply() error {
	return f()
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithApplyHook registers a function called before each subscriber is
// applied during notification.
func WithApplyHook(fn func(field string)) RegistryOption {
	return func(r *Registry) {
		r.onApply = fn
	}
}

// Registry maps each field to its subscribers in registration order.
// Entries are never removed.
type Registry struct {
	subs map[string][]Subscriber

	onApply func(field string)
}

// NewRegistry creates a registry with one empty slot per field.
func NewRegistry(fields []string, opts ...RegistryOption) *Registry {
	r := &Registry{
		subs: make(map[string][]Subscriber, len(fields)),
	}
	for _, f := range fields {
		r.subs[f] = []Subscriber{}
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Has reports whether the registry has a slot for field.
func (r *Registry) Has(field string) bool {
	_, ok := r.subs[field]
	return ok
}

// Register appends a subscriber to a field's list.
// A field without a slot is a lookup failure, never a no-op.
func (r *Registry) Register(field string, sub Subscriber) error {
	list, ok := r.subs[field]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	r.subs[field] = append(list, sub)
	return nil
}

// Subscribers returns a copy of a field's subscriber list.
func (r *Registry) Subscribers(field string) []Subscriber {
	list := r.subs[field]
	out := make([]Subscriber, len(list))
	copy(out, list)
	return out
}

// Len returns the total number of registered subscribers.
func (r *Registry) Len() int {
	n := 0
	for _, list := range r.subs {
		n += len(list)
	}
	return n
}

// Notify applies every subscriber of field in registration order.
// The first error stops the chain.
func (r *Registry) Notify(field string) error {
	list, ok := r.subs[field]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}

	// Copy so subscribers registered while notifying wait for the next change.
	subs := make([]Subscriber, len(list))
	copy(subs, list)

	for i, sub := range subs {
		if r.onApply != nil {
			r.onApply(field)
		}
		if err := sub.Apply(); err != nil {
			return fmt.Errorf("notify %q subscriber %d: %w", field, i, err)
		}
	}
	return nil
}
