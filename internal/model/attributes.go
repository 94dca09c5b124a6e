package model

import (
	"fmt"
	"sort"
	"strings"
)

// Attributes maps attribute keys to scalar values.
// An absent key means the attribute is not set. Attributes values held by
// runs are never mutated in place; use With and Without to derive new maps.
type Attributes map[string]any

// Get returns the value for key.
func (a Attributes) Get(key string) (any, bool) {
	v, ok := a[key]
	return v, ok
}

// Has reports whether key is set.
func (a Attributes) Has(key string) bool {
	_, ok := a[key]
	return ok
}

// Clone returns a copy of the map. Cloning nil or an empty map returns nil.
func (a Attributes) Clone() Attributes {
	if len(a) == 0 {
		return nil
	}
	out := make(Attributes, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// With returns a copy with key set to value.
func (a Attributes) With(key string, value any) Attributes {
	out := make(Attributes, len(a)+1)
	for k, v := range a {
		out[k] = v
	}
	out[key] = value
	return out
}

// Without returns a copy with the given keys removed.
func (a Attributes) Without(keys ...string) Attributes {
	out := a.Clone()
	for _, k := range keys {
		delete(out, k)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// Equal reports whether both maps hold the same keys with strictly equal values.
func (a Attributes) Equal(b Attributes) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		bv, ok := b[k]
		if !ok || bv != v {
			return false
		}
	}
	return true
}

// Keys returns the attribute keys in sorted order.
func (a Attributes) Keys() []string {
	keys := make([]string, 0, len(a))
	for k := range a {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// String returns a stable representation, e.g. {bold=true linkHref="x"}.
func (a Attributes) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, k := range a.Keys() {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%s=%#v", k, a[k])
	}
	b.WriteByte('}')
	return b.String()
}

// Validate checks that every value is a supported scalar.
func (a Attributes) Validate() error {
	for k, v := range a {
		if !IsScalar(v) {
			return fmt.Errorf("attribute %q: %w (got %T)", k, ErrInvalidValue, v)
		}
	}
	return nil
}

// IsScalar reports whether v can be stored as an attribute value.
// Scalars compare with ==, which the range resolver relies on.
func IsScalar(v any) bool {
	switch v.(type) {
	case string, bool, int, int64, float64:
		return true
	default:
		return false
	}
}
