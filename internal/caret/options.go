package caret

import (
	"log/slog"

	"github.com/dshills/keylink/internal/event"
)

// Option configures a TwoStep.
type Option func(*TwoStep)

// WithLogger sets the logger for state transitions.
func WithLogger(l *slog.Logger) Option {
	return func(t *TwoStep) {
		if l != nil {
			t.logger = l
		}
	}
}

// WithPriority sets the post-fixer and hook priority.
// Default: event.PriorityHigh.
func WithPriority(p event.Priority) Option {
	return func(t *TwoStep) {
		t.priority = p
	}
}

// WithStateListener registers fn to be called after every state change.
func WithStateListener(fn func(from, to State)) Option {
	return func(t *TwoStep) {
		t.onState = fn
	}
}
