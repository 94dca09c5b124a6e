package model

import "fmt"

// Range represents a rune range in the document.
// Start is inclusive, End is exclusive: [Start, End).
type Range struct {
	Start int
	End   int
}

// NewRange creates a new Range from start and end offsets.
func NewRange(start, end int) Range {
	return Range{Start: start, End: end}
}

// String returns a human-readable representation of the range.
func (r Range) String() string {
	return fmt.Sprintf("[%d:%d)", r.Start, r.End)
}

// Len returns the length of the range in runes.
func (r Range) Len() int {
	return r.End - r.Start
}

// IsCollapsed returns true if the range has zero length.
func (r Range) IsCollapsed() bool {
	return r.Start == r.End
}

// IsValid returns true if the range is valid (0 <= Start <= End).
func (r Range) IsValid() bool {
	return r.Start >= 0 && r.Start <= r.End
}

// Equal reports boundary equality.
func (r Range) Equal(other Range) bool {
	return r.Start == other.Start && r.End == other.End
}

// Contains returns true if the given offset is within the range.
func (r Range) Contains(offset int) bool {
	return offset >= r.Start && offset < r.End
}

// Overlaps returns true if this range overlaps with another range.
func (r Range) Overlaps(other Range) bool {
	return r.Start < other.End && other.Start < r.End
}

// Intersect returns the intersection of two ranges, or a collapsed range if they don't overlap.
func (r Range) Intersect(other Range) Range {
	start := max(r.Start, other.Start)
	end := min(r.End, other.End)
	if start >= end {
		return Range{Start: start, End: start}
	}
	return Range{Start: start, End: end}
}
