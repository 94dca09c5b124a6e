package model

import "fmt"

// Gravity decides which neighbouring run a boundary position belongs to.
type Gravity int

const (
	// Backward favours the run before the position.
	Backward Gravity = iota

	// Forward favours the run after the position.
	Forward
)

// String returns the gravity name.
func (g Gravity) String() string {
	switch g {
	case Backward:
		return "backward"
	case Forward:
		return "forward"
	default:
		return "unknown"
	}
}

// Position is a rune offset with gravity.
type Position struct {
	Offset  int
	Gravity Gravity
}

// At returns a position at offset with backward gravity.
func At(offset int) Position {
	return Position{Offset: offset}
}

// WithGravity returns a copy of p with the given gravity.
func (p Position) WithGravity(g Gravity) Position {
	p.Gravity = g
	return p
}

// String returns a human-readable representation of the position.
func (p Position) String() string {
	if p.Gravity == Forward {
		return fmt.Sprintf("%d>", p.Offset)
	}
	return fmt.Sprintf("<%d", p.Offset)
}

// Direction is a caret step direction.
type Direction int

const (
	// Left moves towards the start of the document.
	Left Direction = -1

	// Right moves towards the end of the document.
	Right Direction = 1
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "none"
	}
}
