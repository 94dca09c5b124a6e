package model

import (
	"fmt"
	"unicode/utf8"
)

// Writer performs writes inside a transaction. It is only valid while the
// Change call that created it is running.
type Writer struct {
	doc *Document
	tx  *transaction
}

// Document returns the document being written.
func (w *Writer) Document() *Document {
	return w.doc
}

// Batch returns the batch recorded so far.
func (w *Writer) Batch() *Batch {
	return w.tx.batch
}

func (w *Writer) check(content bool) error {
	if w.doc.tx != w.tx {
		return ErrNoTransaction
	}
	if content && w.doc.readOnly {
		return ErrReadOnly
	}
	return nil
}

func (w *Writer) record(c Change) {
	w.tx.batch.Changes = append(w.tx.batch.Changes, c)
}

// Insert inserts text carrying attrs at offset and returns the inserted range.
// The selection and markers are transformed; a caret at offset moves after
// the text.
func (w *Writer) Insert(offset int, text string, attrs Attributes) (Range, error) {
	return w.insert(offset, text, attrs, false)
}

func (w *Writer) insert(offset int, text string, attrs Attributes, typed bool) (Range, error) {
	if err := w.check(true); err != nil {
		return Range{}, err
	}
	d := w.doc
	if err := d.checkOffset(offset); err != nil {
		return Range{}, err
	}
	if err := attrs.Validate(); err != nil {
		return Range{}, err
	}
	if text == "" {
		return Range{Start: offset, End: offset}, nil
	}

	idx := d.splitAt(offset)
	d.runs = append(d.runs, Run{})
	copy(d.runs[idx+1:], d.runs[idx:])
	d.runs[idx] = NewRun(text, attrs)
	d.normalize()

	n := utf8.RuneCountInString(text)
	e := edit{Range: Range{Start: offset, End: offset}, NewLen: n}
	w.transform(e)

	r := Range{Start: offset, End: offset + n}
	w.record(Change{Op: OpInsert, Range: r, Typed: typed})
	return r, nil
}

// Remove deletes the runes in r.
func (w *Writer) Remove(r Range) error {
	if err := w.check(true); err != nil {
		return err
	}
	d := w.doc
	if err := d.checkRange(r); err != nil {
		return err
	}
	if r.IsCollapsed() {
		return nil
	}

	first := d.splitAt(r.Start)
	last := d.splitAt(r.End)
	d.runs = append(d.runs[:first], d.runs[last:]...)
	d.normalize()

	w.transform(edit{Range: r, NewLen: 0})
	w.record(Change{Op: OpRemove, Range: Range{Start: r.Start, End: r.Start}})
	return nil
}

// SetAttribute sets key to value on every run in r.
func (w *Writer) SetAttribute(r Range, key string, value any) error {
	if !IsScalar(value) {
		return fmt.Errorf("attribute %q: %w (got %T)", key, ErrInvalidValue, value)
	}
	return w.updateAttributes(r, key, func(a Attributes) Attributes {
		return a.With(key, value)
	})
}

// RemoveAttribute removes key from every run in r.
func (w *Writer) RemoveAttribute(r Range, key string) error {
	return w.updateAttributes(r, key, func(a Attributes) Attributes {
		return a.Without(key)
	})
}

func (w *Writer) updateAttributes(r Range, key string, fn func(Attributes) Attributes) error {
	if err := w.check(true); err != nil {
		return err
	}
	d := w.doc
	if err := d.checkRange(r); err != nil {
		return err
	}
	if r.IsCollapsed() {
		return nil
	}

	first := d.splitAt(r.Start)
	last := d.splitAt(r.End)
	for i := first; i < last; i++ {
		d.runs[i] = Run{Text: d.runs[i].Text, Attrs: fn(d.runs[i].Attrs)}
	}
	d.normalize()

	w.record(Change{Op: OpAttribute, Range: r, Key: key})
	return nil
}

// SetSelection replaces the selection.
func (w *Writer) SetSelection(sel Selection) error {
	if err := w.check(false); err != nil {
		return err
	}
	d := w.doc
	if err := d.checkOffset(sel.Anchor); err != nil {
		return err
	}
	if err := d.checkOffset(sel.Head); err != nil {
		return err
	}
	if sel == d.selection {
		return nil
	}
	d.selection = sel
	w.record(Change{Op: OpSelection, Range: sel.Range()})
	return nil
}

// OverrideSelectionAttribute forces key into (inherit) or out of the
// attributes a caret hands to typed text. Nothing is recorded when the
// override already has that value.
func (w *Writer) OverrideSelectionAttribute(key string, inherit bool) error {
	if err := w.check(false); err != nil {
		return err
	}
	if cur, ok := w.doc.overrides[key]; ok && cur == inherit {
		return nil
	}
	w.doc.overrides[key] = inherit
	w.record(Change{Op: OpOverride, Key: key})
	return nil
}

// ClearSelectionOverride removes the override for key.
func (w *Writer) ClearSelectionOverride(key string) error {
	if err := w.check(false); err != nil {
		return err
	}
	if _, ok := w.doc.overrides[key]; !ok {
		return nil
	}
	delete(w.doc.overrides, key)
	w.record(Change{Op: OpOverride, Key: key, Removed: true})
	return nil
}

// SetMarker creates or moves the named marker.
func (w *Writer) SetMarker(name string, r Range) error {
	if err := w.check(false); err != nil {
		return err
	}
	if err := w.doc.checkRange(r); err != nil {
		return err
	}
	w.doc.markers[name] = r
	w.record(Change{Op: OpMarker, Range: r, Key: name})
	return nil
}

// RemoveMarker deletes the named marker and reports whether it existed.
func (w *Writer) RemoveMarker(name string) (bool, error) {
	if err := w.check(false); err != nil {
		return false, err
	}
	r, ok := w.doc.markers[name]
	if !ok {
		return false, nil
	}
	delete(w.doc.markers, name)
	w.record(Change{Op: OpMarker, Range: r, Key: name, Removed: true})
	return true, nil
}

// InsertText inserts text at the selection as typed input. An expanded
// selection is removed first. The text carries the selection attributes
// after insert hooks have run, and the caret ends after it.
func (w *Writer) InsertText(text string) (Range, error) {
	if err := w.check(true); err != nil {
		return Range{}, err
	}
	d := w.doc

	if !d.selection.IsCollapsed() {
		attrs := d.SelectionAttributes()
		r := d.selection.Range()
		if err := w.Remove(r); err != nil {
			return Range{}, err
		}
		if err := w.SetSelection(Collapsed(r.Start)); err != nil {
			return Range{}, err
		}
		return w.typeAt(r.Start, text, attrs)
	}

	return w.typeAt(d.selection.Head, text, d.SelectionAttributes())
}

func (w *Writer) typeAt(offset int, text string, attrs Attributes) (Range, error) {
	ev := &InsertEvent{Offset: offset, Text: text, Attrs: attrs}
	for _, hook := range w.doc.insertHooks.Snapshot() {
		hook(ev)
	}

	r, err := w.insert(offset, ev.Text, ev.Attrs, true)
	if err != nil {
		return Range{}, err
	}
	head := w.doc.selection
	if head.IsCollapsed() && head.Head != r.End {
		if err := w.SetSelection(Selection{Anchor: r.End, Head: r.End, Gravity: head.Gravity}); err != nil {
			return Range{}, err
		}
	}
	return r, nil
}

// Step moves the caret one character in dir after step hooks have run.
// An expanded selection collapses to its edge in dir. It reports whether the
// selection changed.
func (w *Writer) Step(dir Direction) (bool, error) {
	if err := w.check(false); err != nil {
		return false, err
	}
	d := w.doc
	sel := d.selection

	ev := &StepEvent{Direction: dir, Selection: sel}
	for _, hook := range d.stepHooks.Snapshot() {
		hook(ev)
		if ev.consumed {
			break
		}
	}

	at := Range{Start: sel.Head, End: sel.Head}
	if ev.consumed {
		w.record(Change{Op: OpStep, Range: at, Direction: dir, Consumed: true})
		return false, nil
	}

	var target int
	switch {
	case !sel.IsCollapsed() && dir == Left:
		target = sel.Range().Start
	case !sel.IsCollapsed():
		target = sel.Range().End
	default:
		target = min(max(sel.Head+int(dir), 0), d.size)
	}

	w.record(Change{Op: OpStep, Range: Range{Start: target, End: target}, Direction: dir})

	next := Selection{Anchor: target, Head: target, Gravity: sel.Gravity}
	if next == sel {
		return false, nil
	}
	if err := w.SetSelection(next); err != nil {
		return false, err
	}
	return true, nil
}

// transform updates the selection and markers after an edit.
func (w *Writer) transform(e edit) {
	d := w.doc
	d.selection = transformSelection(d.selection, e)
	for name, r := range d.markers {
		d.markers[name] = transformRange(r, e)
	}
}
