package convert

import (
	"log/slog"

	"github.com/microcosm-cc/bluemonday"
	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/html"

	"github.com/dshills/keylink/internal/decorator"
)

// Model attributes for inline styles.
const (
	BoldAttribute   = "bold"
	ItalicAttribute = "italic"
)

// Converter renders and parses link markup for one decorator registry.
type Converter struct {
	decorators *decorator.Registry
	policy     *bluemonday.Policy
	safeURLs   bool
	minifier   *minify.M
	logger     *slog.Logger
}

// htmlMediaType is the minifier media type for rendered output.
const htmlMediaType = "text/html"

func newMinifier() *minify.M {
	m := minify.New()
	m.AddFunc(htmlMediaType, html.Minify)
	return m
}

// New creates a converter. reg may be nil.
func New(reg *decorator.Registry, opts ...Option) *Converter {
	if reg == nil {
		reg = decorator.NewRegistry()
	}
	c := &Converter{
		decorators: reg,
		safeURLs:   true,
		logger:     slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.policy == nil {
		c.policy = NewPolicy(reg)
	}
	c.logger = c.logger.With("component", "convert")
	return c
}

// Decorators returns the registry the converter renders with.
func (c *Converter) Decorators() *decorator.Registry {
	return c.decorators
}
