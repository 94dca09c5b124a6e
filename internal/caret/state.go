package caret

// State is the caret position relative to a tracked attribute range.
type State int

const (
	// Outside is the zero state.
	Outside State = iota

	// Inside means typed text inherits the attribute.
	Inside

	// AtTrailingBoundary means the caret stopped at the range end after
	// moving right from inside.
	AtTrailingBoundary
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Outside:
		return "outside"
	case Inside:
		return "inside"
	case AtTrailingBoundary:
		return "at-trailing-boundary"
	default:
		return "unknown"
	}
}

// Inherits reports whether a caret in state s hands the attribute to
// typed text through the selection override.
func (s State) Inherits() bool {
	return s == Inside || s == AtTrailingBoundary
}
