package convert

import (
	"log/slog"

	"github.com/microcosm-cc/bluemonday"
)

// Option configures a Converter.
type Option func(*Converter)

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Converter) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithPolicy replaces the sanitising policy used by Parse.
func WithPolicy(p *bluemonday.Policy) Option {
	return func(c *Converter) {
		c.policy = p
	}
}

// WithSafeURLs toggles href filtering in Render. Default: enabled.
func WithSafeURLs(enabled bool) Option {
	return func(c *Converter) {
		c.safeURLs = enabled
	}
}

// WithMinify minifies Render output.
func WithMinify(enabled bool) Option {
	return func(c *Converter) {
		c.minifier = nil
		if enabled {
			c.minifier = newMinifier()
		}
	}
}
