package decorator

import "errors"

var (
	// ErrDuplicateID is returned when a decorator ID is registered twice.
	ErrDuplicateID = errors.New("duplicate decorator id")

	// ErrDuplicateAttribute is returned when a decorator ID maps to a model
	// attribute already taken by another decorator or by the link itself.
	ErrDuplicateAttribute = errors.New("duplicate decorator attribute")

	// ErrEmptyID is returned for a decorator without an ID.
	ErrEmptyID = errors.New("decorator id is empty")

	// ErrNoMatcher is returned for an automatic decorator without a matcher.
	ErrNoMatcher = errors.New("automatic decorator has no matcher")

	// ErrMatcherClosed is returned when evaluating a closed Lua matcher.
	ErrMatcherClosed = errors.New("lua matcher is closed")
)
