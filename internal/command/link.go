package command

import (
	"fmt"

	"github.com/dshills/keylink/internal/decorator"
	"github.com/dshills/keylink/internal/model"
)

// Link sets linkHref on the selection, or inserts a linked URL at a caret.
type Link struct {
	base
	decorators *decorator.Registry
}

// NewLink creates the link command. decorators may be nil.
func NewLink(host Host, decorators *decorator.Registry) *Link {
	if decorators == nil {
		decorators = decorator.NewRegistry()
	}
	c := &Link{base: base{host: host}, decorators: decorators}
	c.listen(c.Refresh)
	return c
}

// Name returns "link".
func (c *Link) Name() string {
	return "link"
}

// Execute expects the href and optionally a map of manual decorator IDs to
// their states.
func (c *Link) Execute(args ...any) error {
	if len(args) == 0 || len(args) > 2 {
		return fmt.Errorf("%w: link expects href and optional decorators", ErrInvalidArgs)
	}
	href, ok := args[0].(string)
	if !ok {
		return fmt.Errorf("%w: href must be a string, got %T", ErrInvalidArgs, args[0])
	}
	var manual map[string]bool
	if len(args) == 2 {
		manual, ok = args[1].(map[string]bool)
		if !ok {
			return fmt.Errorf("%w: decorators must be map[string]bool, got %T", ErrInvalidArgs, args[1])
		}
	}
	return c.Apply(href, manual)
}

// Apply links the selection to href. Manual decorators listed in manual are
// switched on or off; unlisted ones are left as they are on an expanded
// selection and off on inserted text.
func (c *Link) Apply(href string, manual map[string]bool) error {
	if !c.enabled {
		return ErrDisabled
	}
	if href == "" {
		return fmt.Errorf("%w: empty href", ErrDisabled)
	}
	for id := range manual {
		if e, ok := c.decorators.Get(id); !ok || e.Mode != decorator.Manual {
			return fmt.Errorf("%w: unknown manual decorator %q", ErrInvalidArgs, id)
		}
	}

	return c.host.Change(func(w *model.Writer) error {
		sel := c.host.Selection()
		if sel.IsCollapsed() {
			return c.insert(w, sel.Head, href, manual)
		}
		return c.apply(w, sel.Range(), href, manual)
	})
}

func (c *Link) insert(w *model.Writer, at int, href string, manual map[string]bool) error {
	attrs := w.Document().SelectionAttributes().With(LinkKey, href)
	for _, e := range c.decorators.Manual() {
		if manual[e.ID] {
			attrs = attrs.With(e.Attribute, true)
		} else {
			attrs = attrs.Without(e.Attribute)
		}
	}

	r, err := w.Insert(at, href, attrs)
	if err != nil {
		return err
	}
	return w.SetSelection(model.Select(r.Start, r.End))
}

func (c *Link) apply(w *model.Writer, r model.Range, href string, manual map[string]bool) error {
	if err := w.SetAttribute(r, LinkKey, href); err != nil {
		return err
	}
	for _, e := range c.decorators.Manual() {
		on, listed := manual[e.ID]
		switch {
		case !listed:
			continue
		case on:
			if err := w.SetAttribute(r, e.Attribute, true); err != nil {
				return err
			}
		default:
			if err := w.RemoveAttribute(r, e.Attribute); err != nil {
				return err
			}
		}
	}
	return nil
}

// Refresh recomputes the enabled state and the current href.
func (c *Link) Refresh() {
	c.enabled = !c.host.IsReadOnly()
	c.value = c.currentHref()
}

func (c *Link) currentHref() any {
	sel := c.host.Selection()
	if sel.IsCollapsed() {
		v, _ := c.host.SelectionAttribute(LinkKey)
		return v
	}

	// An expanded selection has a value only when every run carries the
	// same href.
	var value any
	for _, i := range selectedRuns(c.host, sel.Range()) {
		v, ok := c.host.Run(i).Attr(LinkKey)
		if !ok {
			return nil
		}
		if value == nil {
			value = v
		} else if v != value {
			return nil
		}
	}
	return value
}

// DecoratorValue reports whether the manual decorator id is set on the
// selection.
func (c *Link) DecoratorValue(id string) bool {
	e, ok := c.decorators.Get(id)
	if !ok || e.Mode != decorator.Manual {
		return false
	}
	v, ok := c.host.SelectionAttribute(e.Attribute)
	return ok && v == true
}
