package model

// edit describes a content change for position transformation:
// the runes in Range were replaced by NewLen runes.
type edit struct {
	Range  Range
	NewLen int
}

// transformOffset updates an offset after an edit.
//
// Transformation rules:
//   - If edit is entirely before offset: adjust offset by the edit's delta
//   - If edit starts at or after offset: offset unchanged
//   - If edit spans offset: move offset to end of new text
//
// An insertion exactly at offset counts as "entirely before", so a caret at
// the insertion point ends up after the inserted text.
func transformOffset(offset int, e edit) int {
	if e.Range.End <= offset {
		return offset - e.Range.Len() + e.NewLen
	}
	if e.Range.Start >= offset {
		return offset
	}
	return e.Range.Start + e.NewLen
}

// transformOffsetSticky is like transformOffset but an insertion exactly at
// offset leaves the offset in place.
func transformOffsetSticky(offset int, e edit) int {
	if e.Range.IsCollapsed() && e.Range.Start == offset {
		return offset
	}
	return transformOffset(offset, e)
}

// transformRange updates a marker range after an edit. Text inserted at
// the start moves the range; text inserted at the end stays outside it.
func transformRange(r Range, e edit) Range {
	start := transformOffset(r.Start, e)
	end := transformOffsetSticky(r.End, e)
	if end < start {
		end = start
	}
	return Range{Start: start, End: end}
}

// transformSelection updates both ends of a selection after an edit.
func transformSelection(sel Selection, e edit) Selection {
	sel.Anchor = transformOffset(sel.Anchor, e)
	sel.Head = transformOffset(sel.Head, e)
	return sel
}
