package model

import "fmt"

// Selection uses an anchor/head model. When Anchor == Head the selection is
// a caret; Gravity then applies to the caret position.
type Selection struct {
	Anchor  int
	Head    int
	Gravity Gravity
}

// Collapsed returns a caret selection at offset with backward gravity.
func Collapsed(offset int) Selection {
	return Selection{Anchor: offset, Head: offset}
}

// Select returns a selection from anchor to head.
func Select(anchor, head int) Selection {
	return Selection{Anchor: anchor, Head: head}
}

// IsCollapsed returns true if the selection is a caret.
func (s Selection) IsCollapsed() bool {
	return s.Anchor == s.Head
}

// Range returns the selected range with Start <= End.
func (s Selection) Range() Range {
	if s.Head < s.Anchor {
		return Range{Start: s.Head, End: s.Anchor}
	}
	return Range{Start: s.Anchor, End: s.Head}
}

// HeadPosition returns the head as a position carrying the selection gravity.
func (s Selection) HeadPosition() Position {
	return Position{Offset: s.Head, Gravity: s.Gravity}
}

// FirstPosition returns the position where attribute lookups for the
// selection start: the head for a caret, otherwise the range start looking
// into the selection.
func (s Selection) FirstPosition() Position {
	if s.IsCollapsed() {
		return s.HeadPosition()
	}
	return Position{Offset: s.Range().Start, Gravity: Forward}
}

// String returns a human-readable representation of the selection.
func (s Selection) String() string {
	if s.IsCollapsed() {
		return fmt.Sprintf("Caret(%s)", s.HeadPosition())
	}
	return fmt.Sprintf("Selection(%d->%d)", s.Anchor, s.Head)
}

func (s Selection) clamp(size int) Selection {
	s.Anchor = min(max(s.Anchor, 0), size)
	s.Head = min(max(s.Head, 0), size)
	return s
}
