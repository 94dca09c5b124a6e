package decorator

import (
	"errors"
	"fmt"
	"io"
	"sort"
)

// ExternalLinksID is the ID of the decorator added by AddTargetToExternalLinks.
const ExternalLinksID = "isExternal"

// Registry holds decorators in registration order.
// It is not safe for concurrent mutation.
type Registry struct {
	entries []*Entry
	byID    map[string]*Entry
	byAttr  map[string]*Entry
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byID:   make(map[string]*Entry),
		byAttr: make(map[string]*Entry),
	}
}

// Add registers d and returns its entry.
func (r *Registry) Add(d Decorator) (*Entry, error) {
	if err := d.validate(); err != nil {
		return nil, err
	}
	if _, exists := r.byID[d.ID]; exists {
		return nil, fmt.Errorf("decorator %q: %w", d.ID, ErrDuplicateID)
	}
	attr := AttributeName(d.ID)
	if attr == HrefAttribute {
		return nil, fmt.Errorf("decorator %q: %w %s", d.ID, ErrDuplicateAttribute, attr)
	}
	if other, exists := r.byAttr[attr]; exists {
		return nil, fmt.Errorf("decorator %q: %w %s (used by %q)", d.ID, ErrDuplicateAttribute, attr, other.ID)
	}

	attrs := make(map[string]string, len(d.Attributes))
	for k, v := range d.Attributes {
		attrs[k] = v
	}
	d.Attributes = attrs

	e := &Entry{Decorator: d, Attribute: attr}
	r.entries = append(r.entries, e)
	r.byID[d.ID] = e
	r.byAttr[e.Attribute] = e
	return e, nil
}

// AddTargetToExternalLinks registers the automatic decorator opening
// absolute links in a new tab.
func (r *Registry) AddTargetToExternalLinks() error {
	_, err := r.Add(Decorator{
		ID:   ExternalLinksID,
		Mode: Automatic,
		Attributes: map[string]string{
			"target": "_blank",
			"rel":    "noopener noreferrer",
		},
		Match: externalLink,
	})
	return err
}

// Get returns the decorator registered under id.
func (r *Registry) Get(id string) (*Entry, bool) {
	e, ok := r.byID[id]
	return e, ok
}

// ByAttribute returns the manual decorator stored under a model attribute.
func (r *Registry) ByAttribute(attr string) (*Entry, bool) {
	e, ok := r.byAttr[attr]
	if !ok || e.Mode != Manual {
		return nil, false
	}
	return e, true
}

// Len returns the number of registered decorators.
func (r *Registry) Len() int {
	return len(r.entries)
}

// All returns every entry in registration order.
func (r *Registry) All() []*Entry {
	out := make([]*Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Manual returns the manual decorators in registration order.
func (r *Registry) Manual() []*Entry {
	return r.filter(Manual)
}

// Automatic returns the automatic decorators in registration order.
func (r *Registry) Automatic() []*Entry {
	return r.filter(Automatic)
}

func (r *Registry) filter(mode Mode) []*Entry {
	var out []*Entry
	for _, e := range r.entries {
		if e.Mode == mode {
			out = append(out, e)
		}
	}
	return out
}

// ManualAttributes returns the model attribute names of the manual
// decorators.
func (r *Registry) ManualAttributes() []string {
	var out []string
	for _, e := range r.entries {
		if e.Mode == Manual {
			out = append(out, e.Attribute)
		}
	}
	return out
}

// Defaults returns the initial manual decorator states keyed by ID.
func (r *Registry) Defaults() map[string]bool {
	out := make(map[string]bool)
	for _, e := range r.entries {
		if e.Mode == Manual {
			out[e.ID] = e.Default
		}
	}
	return out
}

// HTMLAttributes returns the attributes to put on a link to url. enabled
// reports whether a manual decorator's model attribute is set on the link.
// Later decorators override attributes set by earlier ones.
func (r *Registry) HTMLAttributes(url string, enabled func(attr string) bool) map[string]string {
	out := make(map[string]string)
	for _, e := range r.entries {
		switch e.Mode {
		case Automatic:
			if !e.Match.Match(url) {
				continue
			}
		case Manual:
			if enabled == nil || !enabled(e.Attribute) {
				continue
			}
		}
		for k, v := range e.Attributes {
			out[k] = v
		}
	}
	return out
}

// MatchManual returns the attributes of manual decorators whose every HTML
// attribute is present with the same value in attrs.
func (r *Registry) MatchManual(attrs map[string]string) []string {
	var out []string
	for _, e := range r.entries {
		if e.Mode != Manual || len(e.Attributes) == 0 {
			continue
		}
		if containsAll(attrs, e.Attributes) {
			out = append(out, e.Attribute)
		}
	}
	return out
}

func containsAll(have, want map[string]string) bool {
	for k, v := range want {
		if hv, ok := have[k]; !ok || hv != v {
			return false
		}
	}
	return true
}

// Close releases matchers that hold resources, such as Lua states.
func (r *Registry) Close() error {
	var errs []error
	for _, e := range r.entries {
		if c, ok := e.Match.(io.Closer); ok {
			if err := c.Close(); err != nil {
				errs = append(errs, fmt.Errorf("close decorator %q: %w", e.ID, err))
			}
		}
	}
	return errors.Join(errs...)
}

// SortedKeys returns the keys of m in sorted order.
func SortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
