package caret

import (
	"log/slog"

	"github.com/dshills/keylink/internal/event"
	"github.com/dshills/keylink/internal/linkrange"
	"github.com/dshills/keylink/internal/model"
)

// Host is the document surface a TwoStep needs. *model.Document satisfies it.
type Host interface {
	linkrange.Sequence

	Size() int
	Selection() model.Selection
	Change(fn func(w *model.Writer) error) error
	RegisterPostFixer(fn model.PostFixer, priority event.Priority) event.Handle
	OnStep(fn model.StepHook, priority event.Priority) event.Handle
	OnInsert(fn model.InsertHook, priority event.Priority) event.Handle
}

// TwoStep tracks the caret state for one attribute key.
type TwoStep struct {
	host     Host
	key      string
	logger   *slog.Logger
	priority event.Priority
	onState  func(from, to State)

	state State
	// boundary is the trailing boundary offset while in AtTrailingBoundary.
	boundary int

	handles  event.Group
	disposed bool
}

// Attach starts two-step handling of key on host and evaluates the current
// selection. The returned function detaches it.
func Attach(host Host, key string, opts ...Option) (*TwoStep, func()) {
	t := &TwoStep{
		host:     host,
		key:      key,
		logger:   slog.New(slog.DiscardHandler),
		priority: event.PriorityHigh,
	}
	for _, opt := range opts {
		opt(t)
	}
	t.logger = t.logger.With("component", "caret", "key", key)

	t.handles.Add(
		host.RegisterPostFixer(t.fix, t.priority),
		host.OnStep(t.onStep, t.priority),
		host.OnInsert(t.onInsert, t.priority),
	)

	if err := host.Change(func(w *model.Writer) error {
		return t.fix(w, w.Batch())
	}); err != nil {
		t.logger.Warn("initial caret evaluation failed", "error", err)
	}

	return t, t.dispose
}

// State returns the current state.
func (t *TwoStep) State() State {
	return t.state
}

// Key returns the tracked attribute key.
func (t *TwoStep) Key() string {
	return t.key
}

func (t *TwoStep) dispose() {
	if t.disposed {
		return
	}
	t.disposed = true
	t.handles.Unregister()

	if err := t.host.Change(func(w *model.Writer) error {
		return w.ClearSelectionOverride(t.key)
	}); err != nil {
		t.logger.Warn("clearing selection override failed", "error", err)
	}
	t.setState(Outside, 0)
}

func (t *TwoStep) onStep(ev *model.StepEvent) {
	if t.state != AtTrailingBoundary || ev.Direction != model.Right {
		return
	}
	if ev.Selection.IsCollapsed() && ev.Selection.Head == t.boundary {
		ev.Consume()
	}
}

func (t *TwoStep) onInsert(ev *model.InsertEvent) {
	if t.state == AtTrailingBoundary && ev.Offset == t.boundary {
		ev.Attrs = ev.Attrs.Without(t.key)
	}
}

// fix recomputes the state for the finished batch and writes the override.
func (t *TwoStep) fix(w *model.Writer, b *model.Batch) error {
	next, at := t.evaluate(b)
	t.setState(next, at)

	if !t.host.Selection().IsCollapsed() {
		return nil
	}
	return w.OverrideSelectionAttribute(t.key, next.Inherits())
}

func (t *TwoStep) setState(next State, at int) {
	prev := t.state
	t.state = next
	t.boundary = at
	if prev == next {
		return
	}
	t.logger.Debug("caret state changed", "from", prev, "to", next)
	if t.onState != nil {
		t.onState(prev, next)
	}
}

// evaluate returns the state after b and, for AtTrailingBoundary, the
// boundary offset. The previous state is the one committed before b.
func (t *TwoStep) evaluate(b *model.Batch) (State, int) {
	sel := t.host.Selection()
	if !sel.IsCollapsed() || t.host.Size() == 0 {
		return Outside, 0
	}

	head := sel.Head
	before, after, err := t.host.Locate(head)
	if err != nil {
		return Outside, 0
	}
	bv, bok := t.attr(before)
	av, aok := t.attr(after)

	switch {
	case before == after && bok:
		return Inside, 0
	case bok && aok && bv == av:
		return Inside, 0
	case !bok:
		// Leading boundary or plain text.
		return Outside, 0
	}

	// Trailing boundary of the range ending at head.
	switch {
	case t.state == AtTrailingBoundary && consumedRight(b):
		return Outside, 0
	case t.state == AtTrailingBoundary && typedAt(b, t.boundary):
		return Outside, 0
	case t.state == AtTrailingBoundary && head == b.Before.Head:
		return AtTrailingBoundary, head
	case t.state == Inside && t.arrivedFromInside(b, head, bv):
		return AtTrailingBoundary, head
	}
	return Outside, 0
}

// arrivedFromInside reports whether the caret moved right onto head from a
// position inside the same range.
func (t *TwoStep) arrivedFromInside(b *model.Batch, head int, value any) bool {
	from := b.Before
	if b.ContentChanged() || !from.IsCollapsed() || from.Head >= head {
		return false
	}
	r, ok, err := linkrange.ResolveValue(t.host, model.At(head), t.key, value)
	if err != nil || !ok {
		return false
	}
	return r.Start < from.Head && from.Head < r.End
}

func (t *TwoStep) attr(i int) (any, bool) {
	if i < 0 {
		return nil, false
	}
	return t.host.Run(i).Attr(t.key)
}

// typedAt reports whether b typed text at offset.
func typedAt(b *model.Batch, offset int) bool {
	for _, c := range b.Changes {
		if c.Op == model.OpInsert && c.Typed && c.Range.Start == offset {
			return true
		}
	}
	return false
}

func consumedRight(b *model.Batch) bool {
	for _, c := range b.Steps() {
		if c.Consumed && c.Direction == model.Right {
			return true
		}
	}
	return false
}
