package model

import "log/slog"

// Option configures a Document during creation.
type Option func(*Document)

// WithLogger sets the logger used for post-fixer failures.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Document) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// WithReadOnly creates a read-only document.
// Selection changes are allowed; content and attribute writes return ErrReadOnly.
func WithReadOnly() Option {
	return func(d *Document) {
		d.readOnly = true
	}
}

// WithSelection sets the initial selection.
// An out-of-range selection is clamped to the document.
func WithSelection(sel Selection) Option {
	return func(d *Document) {
		d.selection = sel
	}
}
