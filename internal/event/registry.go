package event

import (
	"sort"
	"sync"
)

// Registry holds callbacks of type T ordered by priority.
// It is safe for concurrent use.
type Registry[T any] struct {
	mu      sync.Mutex
	entries []entry[T]
	nextID  uint64
}

type entry[T any] struct {
	id       uint64
	priority Priority
	value    T
}

// NewRegistry creates an empty registry.
func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{}
}

// Add registers value at the given priority and returns its handle.
// The entry is placed after every existing entry with a priority lower than
// or equal to priority.
func (r *Registry[T]) Add(value T, priority Priority) Handle {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	id := r.nextID
	r.entries = append(r.entries, entry[T]{id: id, priority: priority, value: value})

	// Stable sort keeps registration order among equal priorities.
	sort.SliceStable(r.entries, func(i, j int) bool {
		return r.entries[i].priority < r.entries[j].priority
	})

	return Handle{id: id, remove: r.remove}
}

// remove deletes the entry with the given id.
func (r *Registry[T]) remove(id uint64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, e := range r.entries {
		if e.id == id {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			return true
		}
	}
	return false
}

// Snapshot returns the registered values in execution order.
// The returned slice is a copy.
func (r *Registry[T]) Snapshot() []T {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.entries) == 0 {
		return nil
	}
	result := make([]T, len(r.entries))
	for i, e := range r.entries {
		result[i] = e.value
	}
	return result
}

// Len returns the number of registered callbacks.
func (r *Registry[T]) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// Clear removes all callbacks.
func (r *Registry[T]) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = nil
}

// Handle identifies a registered callback.
// The zero Handle is valid and unregisters nothing.
type Handle struct {
	id     uint64
	remove func(uint64) bool
}

// ID returns the registration ID. IDs are unique per registry.
func (h Handle) ID() uint64 {
	return h.id
}

// Unregister removes the callback. It reports whether the callback was still
// registered; calling it more than once is safe.
func (h Handle) Unregister() bool {
	if h.remove == nil {
		return false
	}
	return h.remove(h.id)
}

// Group collects handles so they can be unregistered together.
type Group struct {
	mu      sync.Mutex
	handles []Handle
}

// Add appends handles to the group.
func (g *Group) Add(handles ...Handle) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.handles = append(g.handles, handles...)
}

// Unregister removes every handle in the group and empties it.
func (g *Group) Unregister() {
	g.mu.Lock()
	handles := g.handles
	g.handles = nil
	g.mu.Unlock()

	for _, h := range handles {
		h.Unregister()
	}
}
