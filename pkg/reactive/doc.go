// Package reactive provides the observable data record behind a bound view.
//
// A Store holds one slot per field of a flat record. Every read and write
// goes through the store's accessors; a write that changes a field's value
// stores the new value and then pushes a notification to the attached
// Notifier, which is normally a Registry.
//
// # Core Types
//
// Store is the field arena:
//
//	store, err := reactive.NewStore(map[string]any{"count": 0})
//	store.Set("count", 1)   // stores 1, then notifies "count" subscribers
//	store.Set("count", 1)   // equal value: no-op
//
// Registry maps each field to its ordered subscribers:
//
//	reg := reactive.NewRegistry(store.Fields())
//	store.Attach(reg)
//	reg.Register("count", sub)
//
// # Equality
//
// Writes are compared with strict scalar equality: strings and booleans by
// value, numbers numerically across Go numeric kinds, and values of
// different categories are never equal.
//
// # Thread Safety
//
// Stores and registries are single-threaded. Notification is synchronous and
// re-entrant; no locks are held while subscribers run.
package reactive
