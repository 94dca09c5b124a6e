package model

// Operation identifies the kind of a recorded change.
type Operation int

const (
	OpInsert Operation = iota
	OpRemove
	OpAttribute
	OpSelection
	OpOverride
	OpMarker
	OpStep
)

// String returns the operation name.
func (op Operation) String() string {
	switch op {
	case OpInsert:
		return "insert"
	case OpRemove:
		return "remove"
	case OpAttribute:
		return "attribute"
	case OpSelection:
		return "selection"
	case OpOverride:
		return "override"
	case OpMarker:
		return "marker"
	case OpStep:
		return "step"
	default:
		return "unknown"
	}
}

// Change is one recorded write.
//
// Range is in document coordinates right after the write: the inserted text
// for OpInsert, the collapsed removal point for OpRemove, the affected span
// for OpAttribute and OpMarker. Key names the attribute, override or marker.
type Change struct {
	Op        Operation
	Range     Range
	Key       string
	Direction Direction

	// Consumed marks a step a hook prevented.
	Consumed bool

	// Typed marks an insert made through InsertText.
	Typed bool

	// Removed marks a marker or override deletion.
	Removed bool
}

// Batch is the finished record of one transaction.
type Batch struct {
	// Before is the selection at transaction start.
	Before Selection

	// After is the selection at transaction end. It is set when change
	// listeners run; post-fixers should read the document instead.
	After Selection

	// Changes lists every write in order, including post-fixer writes.
	Changes []Change
}

// Has reports whether the batch contains an operation of kind op.
func (b *Batch) Has(op Operation) bool {
	for _, c := range b.Changes {
		if c.Op == op {
			return true
		}
	}
	return false
}

// ContentChanged reports whether text or attributes changed.
func (b *Batch) ContentChanged() bool {
	for _, c := range b.Changes {
		switch c.Op {
		case OpInsert, OpRemove, OpAttribute:
			return true
		}
	}
	return false
}

// Steps returns the caret steps recorded in the batch.
func (b *Batch) Steps() []Change {
	var steps []Change
	for _, c := range b.Changes {
		if c.Op == OpStep {
			steps = append(steps, c)
		}
	}
	return steps
}

// MarkerChanges returns the marker writes for name.
func (b *Batch) MarkerChanges(name string) []Change {
	var out []Change
	for _, c := range b.Changes {
		if c.Op == OpMarker && c.Key == name {
			out = append(out, c)
		}
	}
	return out
}

// IsEmpty reports whether nothing was written.
func (b *Batch) IsEmpty() bool {
	return len(b.Changes) == 0
}

// ChangeListener receives the batch of a committed transaction.
type ChangeListener func(b *Batch)

// PostFixer runs at the end of a transaction, before it commits, and may
// write through w. Returned errors are logged; they do not abort the batch.
type PostFixer func(w *Writer, b *Batch) error

// StepEvent is passed to step hooks before the caret moves.
type StepEvent struct {
	Direction Direction
	Selection Selection
	consumed  bool
}

// Consume prevents the caret from moving. The step is still recorded.
func (e *StepEvent) Consume() {
	e.consumed = true
}

// Consumed reports whether a hook consumed the step.
func (e *StepEvent) Consumed() bool {
	return e.consumed
}

// StepHook intercepts caret steps.
type StepHook func(e *StepEvent)

// InsertEvent is passed to insert hooks before typed text is inserted.
// Hooks may replace Attrs; they must not mutate the map in place.
type InsertEvent struct {
	Offset int
	Text   string
	Attrs  Attributes
}

// InsertHook intercepts typed text.
type InsertHook func(e *InsertEvent)
