package config

import (
	"errors"
	"fmt"

	"github.com/dshills/keylink/internal/decorator"
)

// Registry builds a decorator registry from the link configuration. The
// isExternal decorator comes first when enabled, then the configured
// decorators in file order. The caller closes the registry.
func (c *Config) Registry(opts ...decorator.LuaOption) (*decorator.Registry, error) {
	reg := decorator.NewRegistry()
	if c.Link.AddTargetToExternalLinks {
		if err := reg.AddTargetToExternalLinks(); err != nil {
			return nil, err
		}
	}

	for _, dc := range c.Link.Decorators {
		d, err := dc.build(opts)
		if err == nil {
			_, err = reg.Add(d)
			if err != nil {
				closeMatcher(d.Match)
			}
		}
		if err != nil {
			return nil, errors.Join(err, reg.Close())
		}
	}
	return reg, nil
}

func (dc DecoratorConfig) build(opts []decorator.LuaOption) (decorator.Decorator, error) {
	mode, ok := decorator.ParseMode(dc.Mode)
	if !ok {
		return decorator.Decorator{}, fmt.Errorf("decorator %q: %w: %q", dc.ID, ErrInvalidMode, dc.Mode)
	}
	d := decorator.Decorator{
		ID:         dc.ID,
		Mode:       mode,
		Label:      dc.Label,
		Default:    dc.Default,
		Attributes: dc.Attributes,
	}

	switch {
	case mode == decorator.Manual && (dc.Pattern != "" || dc.Lua != ""):
		return d, fmt.Errorf("decorator %q: %w: manual decorators take no matcher", dc.ID, ErrInvalidDecorator)
	case mode == decorator.Manual:
		return d, nil
	case dc.Pattern != "" && dc.Lua != "":
		return d, fmt.Errorf("decorator %q: %w: pattern and lua are exclusive", dc.ID, ErrInvalidDecorator)
	case dc.Pattern != "":
		m, err := decorator.Regexp(dc.Pattern)
		if err != nil {
			return d, fmt.Errorf("decorator %q: %w", dc.ID, err)
		}
		d.Match = m
	case dc.Lua != "":
		m, err := decorator.Lua(dc.Lua, opts...)
		if err != nil {
			return d, fmt.Errorf("decorator %q: %w", dc.ID, err)
		}
		d.Match = m
	}
	return d, nil
}

func closeMatcher(m decorator.Matcher) {
	if c, ok := m.(interface{ Close() error }); ok {
		_ = c.Close()
	}
}
