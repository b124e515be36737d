package reactive

import (
	"fmt"
	"sort"
)

// Notifier receives change notifications from a Store.
// Registry is the standard implementation.
type Notifier interface {
	// Notify is called after a field's value changed.
	Notify(field string) error
}

// slot is the storage cell behind one field accessor.
type slot struct {
	value any
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithWriteHook registers a function called on every successful write
// attempt, after the equality check and before any notification.
// changed is false for writes that were dropped as no-ops.
func WithWriteHook(fn func(field string, changed bool)) StoreOption {
	return func(s *Store) {
		s.onWrite = fn
	}
}

// Store is the observable data record.
//
// The set of fields is fixed at construction. Reads return the latest
// written value; writes that change a value store it before notifying.
type Store struct {
	// slots holds one cell per field.
	slots map[string]*slot

	// names is the field order, sorted at construction.
	names []string

	// notifier receives change notifications. May be nil.
	notifier Notifier

	onWrite func(field string, changed bool)
}

// NewStore creates a store over the fields of record.
// The record map itself is not retained.
func NewStore(record map[string]any, opts ...StoreOption) (*Store, error) {
	s := &Store{
		slots: make(map[string]*slot, len(record)),
		names: make([]string, 0, len(record)),
	}

	for name, value := range record {
		if !IsScalar(value) {
			return nil, fmt.Errorf("%w: field %q holds %T", ErrUnsupportedValue, name, value)
		}
		s.slots[name] = &slot{value: value}
		s.names = append(s.names, name)
	}
	sort.Strings(s.names)

	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Attach sets the notifier that receives change notifications.
func (s *Store) Attach(n Notifier) {
	s.notifier = n
}

// Fields returns the field names in store order.
func (s *Store) Fields() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Has reports whether name is a field of the record.
func (s *Store) Has(name string) bool {
	_, ok := s.slots[name]
	return ok
}

// Get returns the current value of a field.
func (s *Store) Get(name string) (any, bool) {
	sl, ok := s.slots[name]
	if !ok {
		return nil, false
	}
	return sl.value, true
}

// Value returns the current value of a field, or nil if it does not exist.
func (s *Store) Value(name string) any {
	v, _ := s.Get(name)
	return v
}

// Set writes a field.
//
// Writing a value strictly equal to the current one is a no-op and returns
// false. Otherwise the value is stored, the notifier is called, and Set
// returns true along with any error raised while notifying.
func (s *Store) Set(name string, value any) (bool, error) {
	sl, ok := s.slots[name]
	if !ok {
		return false, fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	if !IsScalar(value) {
		return false, fmt.Errorf("%w: field %q given %T", ErrUnsupportedValue, name, value)
	}

	if Equal(sl.value, value) {
		if s.onWrite != nil {
			s.onWrite(name, false)
		}
		return false, nil
	}

	sl.value = value
	if s.onWrite != nil {
		s.onWrite(name, true)
	}

	if s.notifier != nil {
		if err := s.notifier.Notify(name); err != nil {
			return true, err
		}
	}
	return true, nil
}

// Snapshot returns a copy of the record.
func (s *Store) Snapshot() map[string]any {
	out := make(map[string]any, len(s.slots))
	for name, sl := range s.slots {
		out[name] = sl.value
	}
	return out
}
