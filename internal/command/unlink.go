package command

import (
	"github.com/dshills/keylink/internal/decorator"
	"github.com/dshills/keylink/internal/linkrange"
	"github.com/dshills/keylink/internal/model"
)

// Unlink removes linkHref and the manual decorator attributes from the link
// at the caret or from the selected text.
type Unlink struct {
	base
	decorators *decorator.Registry
}

// NewUnlink creates the unlink command. decorators may be nil.
func NewUnlink(host Host, decorators *decorator.Registry) *Unlink {
	if decorators == nil {
		decorators = decorator.NewRegistry()
	}
	c := &Unlink{base: base{host: host}, decorators: decorators}
	c.listen(c.Refresh)
	return c
}

// Name returns "unlink".
func (c *Unlink) Name() string {
	return "unlink"
}

// Execute takes no arguments.
func (c *Unlink) Execute(args ...any) error {
	if len(args) != 0 {
		return ErrInvalidArgs
	}
	if !c.enabled {
		return ErrDisabled
	}

	return c.host.Change(func(w *model.Writer) error {
		sel := c.host.Selection()
		r := sel.Range()
		if sel.IsCollapsed() {
			value, _ := c.host.SelectionAttribute(LinkKey)
			found, ok, err := linkrange.ResolveValue(c.host, sel.FirstPosition(), LinkKey, value)
			if err != nil {
				return err
			}
			if !ok {
				return nil
			}
			r = found.Range
		}

		if err := w.RemoveAttribute(r, LinkKey); err != nil {
			return err
		}
		for _, attr := range c.decorators.ManualAttributes() {
			if err := w.RemoveAttribute(r, attr); err != nil {
				return err
			}
		}
		return nil
	})
}

// Refresh enables the command when the selection carries a link.
func (c *Unlink) Refresh() {
	v, ok := c.host.SelectionAttribute(LinkKey)
	c.enabled = ok && !c.host.IsReadOnly()
	if ok {
		c.value = v
	} else {
		c.value = nil
	}
}
