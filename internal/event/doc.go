// Package event provides the priority-ordered callback registries used by the
// document model and the link feature.
//
// Callbacks are registered with an explicit Priority and receive a Handle
// that unregisters them. Registries hand out ordered snapshots, so a callback
// may unregister itself (or others) while a snapshot is being iterated.
//
// # Priority Ordering
//
// Lower values run first; callbacks with the same priority run in
// registration order:
//
//   - Critical (0): model invariants
//   - High (100): caret handling
//   - Normal (200): derived state such as highlight markers - default
//   - Low (300): command refresh, logging
//
// The highlight maintainer relies on this order: it reads the selection
// attributes the caret has already settled for the same transaction.
//
// # Basic Usage
//
//	reg := event.NewRegistry[func(string)]()
//	h := reg.Add(func(s string) { fmt.Println("low", s) }, event.PriorityLow)
//	reg.Add(func(s string) { fmt.Println("high", s) }, event.PriorityHigh)
//
//	for _, fn := range reg.Snapshot() {
//	    fn("x") // prints "high x" then "low x"
//	}
//
//	h.Unregister()
package event
