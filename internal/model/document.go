package model

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/dshills/keylink/internal/event"
)

// Document is an ordered run sequence with a selection and named markers.
type Document struct {
	runs   []Run
	starts []int // starts[i] is the offset where runs[i] begins
	size   int

	selection Selection
	overrides map[string]bool
	markers   map[string]Range

	readOnly bool
	logger   *slog.Logger

	listeners   *event.Registry[ChangeListener]
	postFixers  *event.Registry[PostFixer]
	stepHooks   *event.Registry[StepHook]
	insertHooks *event.Registry[InsertHook]

	tx *transaction
}

// transaction is the state of an open Change call.
type transaction struct {
	batch  *Batch
	writer *Writer
}

// snapshot captures document state for rollback.
type snapshot struct {
	runs      []Run
	selection Selection
	overrides map[string]bool
	markers   map[string]Range
}

// NewDocument creates a document from runs.
// Attribute maps are copied; empty runs are dropped and equal neighbours merged.
func NewDocument(runs []Run, opts ...Option) *Document {
	d := &Document{
		overrides:   make(map[string]bool),
		markers:     make(map[string]Range),
		logger:      slog.New(slog.DiscardHandler),
		listeners:   event.NewRegistry[ChangeListener](),
		postFixers:  event.NewRegistry[PostFixer](),
		stepHooks:   event.NewRegistry[StepHook](),
		insertHooks: event.NewRegistry[InsertHook](),
	}

	d.runs = make([]Run, 0, len(runs))
	for _, r := range runs {
		d.runs = append(d.runs, NewRun(r.Text, r.Attrs))
	}
	d.normalize()

	for _, opt := range opts {
		opt(d)
	}
	d.selection = d.selection.clamp(d.size)

	return d
}

// NewDocumentFromText creates a document holding a single plain run.
func NewDocumentFromText(text string, opts ...Option) *Document {
	return NewDocument([]Run{Plain(text)}, opts...)
}

// Len returns the number of runs.
func (d *Document) Len() int {
	return len(d.runs)
}

// Run returns the run at index i.
func (d *Document) Run(i int) Run {
	return d.runs[i]
}

// Runs returns a copy of the run sequence.
func (d *Document) Runs() []Run {
	out := make([]Run, len(d.runs))
	copy(out, d.runs)
	return out
}

// Start returns the offset at which run i begins.
func (d *Document) Start(i int) int {
	return d.starts[i]
}

// End returns the offset at which run i ends.
func (d *Document) End(i int) int {
	if i+1 < len(d.starts) {
		return d.starts[i+1]
	}
	return d.size
}

// Size returns the document length in runes.
func (d *Document) Size() int {
	return d.size
}

// IsEmpty reports whether the document holds no text.
func (d *Document) IsEmpty() bool {
	return d.size == 0
}

// IsReadOnly reports whether content writes are rejected.
func (d *Document) IsReadOnly() bool {
	return d.readOnly
}

// Text returns the document text.
func (d *Document) Text() string {
	var b strings.Builder
	for _, r := range d.runs {
		b.WriteString(r.Text)
	}
	return b.String()
}

// TextIn returns the text covered by r.
func (d *Document) TextIn(r Range) (string, error) {
	if err := d.checkRange(r); err != nil {
		return "", err
	}
	runes := []rune(d.Text())
	return string(runes[r.Start:r.End]), nil
}

// Locate returns the indexes of the runs before and after offset.
// Inside a run both indexes are equal. A missing neighbour is -1.
func (d *Document) Locate(offset int) (before, after int, err error) {
	if offset < 0 || offset > d.size {
		return -1, -1, fmt.Errorf("offset %d (size %d): %w", offset, d.size, ErrInvalidPosition)
	}
	if len(d.runs) == 0 {
		return -1, -1, nil
	}

	// First run whose end is strictly after offset.
	i := sort.Search(len(d.runs), func(i int) bool {
		return d.End(i) > offset
	})
	if i == len(d.runs) {
		return len(d.runs) - 1, -1, nil
	}
	if d.starts[i] == offset {
		return i - 1, i, nil
	}
	return i, i, nil
}

// Selection returns the current selection.
func (d *Document) Selection() Selection {
	return d.selection
}

// Override returns the inheritance override for key, if any.
func (d *Document) Override(key string) (inherit bool, ok bool) {
	inherit, ok = d.overrides[key]
	return inherit, ok
}

// SelectionAttribute returns the value of key that typed text would carry.
//
// For a caret the run on the gravity side is used, falling back to the
// other side; an override then forces the key in or out. For an expanded
// selection the first selected run is used and overrides do not apply.
func (d *Document) SelectionAttribute(key string) (any, bool) {
	v, ok := d.SelectionAttributes()[key]
	return v, ok
}

// SelectionAttributes returns the attributes typed text would carry.
func (d *Document) SelectionAttributes() Attributes {
	sel := d.selection
	if !sel.IsCollapsed() {
		r := sel.Range()
		_, after, err := d.Locate(r.Start)
		if err != nil || after < 0 {
			return nil
		}
		return d.runs[after].Attrs.Clone()
	}

	primary, secondary := d.neighbours(sel.HeadPosition())
	var attrs Attributes
	if primary >= 0 {
		attrs = d.runs[primary].Attrs.Clone()
	}

	for _, key := range sortedKeys(d.overrides) {
		if !d.overrides[key] {
			attrs = attrs.Without(key)
			continue
		}
		if attrs.Has(key) || secondary < 0 {
			continue
		}
		if v, ok := d.runs[secondary].Attr(key); ok {
			attrs = attrs.With(key, v)
		}
	}
	return attrs
}

// neighbours returns the gravity-side run and the other adjacent run for
// pos. Inside a run both are the same index.
func (d *Document) neighbours(pos Position) (primary, secondary int) {
	before, after, err := d.Locate(pos.Offset)
	if err != nil {
		return -1, -1
	}
	primary, secondary = before, after
	if pos.Gravity == Forward {
		primary, secondary = after, before
	}
	if primary < 0 {
		primary, secondary = secondary, -1
	}
	return primary, secondary
}

// Marker returns the range of the named marker.
func (d *Document) Marker(name string) (Range, bool) {
	r, ok := d.markers[name]
	return r, ok
}

// Markers returns the marker names in sorted order.
func (d *Document) Markers() []string {
	names := make([]string, 0, len(d.markers))
	for name := range d.markers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// InTransaction reports whether a Change call is open.
func (d *Document) InTransaction() bool {
	return d.tx != nil
}

// OnChange registers a listener for committed batches.
func (d *Document) OnChange(fn ChangeListener, priority event.Priority) event.Handle {
	return d.listeners.Add(fn, priority)
}

// RegisterPostFixer registers a post-fixer.
func (d *Document) RegisterPostFixer(fn PostFixer, priority event.Priority) event.Handle {
	return d.postFixers.Add(fn, priority)
}

// OnStep registers a caret step hook.
func (d *Document) OnStep(fn StepHook, priority event.Priority) event.Handle {
	return d.stepHooks.Add(fn, priority)
}

// OnInsert registers a typed-text hook.
func (d *Document) OnInsert(fn InsertHook, priority event.Priority) event.Handle {
	return d.insertHooks.Add(fn, priority)
}

// Change runs fn inside a transaction.
//
// Nested calls join the enclosing transaction and return fn's error
// directly. For the outermost call, an error rolls the document back and
// no post-fixer or listener runs. Otherwise post-fixers run once in
// priority order and listeners receive the batch.
func (d *Document) Change(fn func(w *Writer) error) error {
	if d.tx != nil {
		return fn(d.tx.writer)
	}

	saved := d.snapshot()
	tx := &transaction{batch: &Batch{Before: d.selection}}
	tx.writer = &Writer{doc: d, tx: tx}
	d.tx = tx

	if err := fn(tx.writer); err != nil {
		d.tx = nil
		d.restore(saved)
		return err
	}

	if !tx.batch.IsEmpty() {
		for _, fix := range d.postFixers.Snapshot() {
			if err := fix(tx.writer, tx.batch); err != nil {
				d.logger.Warn("post-fixer failed", "error", err)
			}
		}
	}

	d.tx = nil
	tx.batch.After = d.selection

	if tx.batch.IsEmpty() {
		return nil
	}
	for _, l := range d.listeners.Snapshot() {
		l(tx.batch)
	}
	return nil
}

// SetSelection replaces the selection in its own transaction.
func (d *Document) SetSelection(sel Selection) error {
	return d.Change(func(w *Writer) error {
		return w.SetSelection(sel)
	})
}

// Type inserts text at the selection as if typed.
func (d *Document) Type(text string) error {
	return d.Change(func(w *Writer) error {
		_, err := w.InsertText(text)
		return err
	})
}

// Step moves the caret one character in dir. It reports whether the caret
// moved; a consumed step returns false.
func (d *Document) Step(dir Direction) (bool, error) {
	var moved bool
	err := d.Change(func(w *Writer) error {
		var err error
		moved, err = w.Step(dir)
		return err
	})
	return moved, err
}

// String returns a debug representation such as "foo"{linkHref="x"} [2].
func (d *Document) String() string {
	var b strings.Builder
	for i, r := range d.runs {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(r.String())
	}
	b.WriteByte(' ')
	b.WriteString(d.selection.String())
	return b.String()
}

func (d *Document) checkOffset(offset int) error {
	if offset < 0 || offset > d.size {
		return fmt.Errorf("offset %d (size %d): %w", offset, d.size, ErrInvalidPosition)
	}
	return nil
}

func (d *Document) checkRange(r Range) error {
	if !r.IsValid() || r.End > d.size {
		return fmt.Errorf("range %s (size %d): %w", r, d.size, ErrInvalidRange)
	}
	return nil
}

// normalize drops empty runs, merges neighbours with equal attributes and
// rebuilds the offset index.
func (d *Document) normalize() {
	out := d.runs[:0]
	for _, r := range d.runs {
		if r.Text == "" {
			continue
		}
		if n := len(out); n > 0 && out[n-1].Attrs.Equal(r.Attrs) {
			out[n-1] = Run{Text: out[n-1].Text + r.Text, Attrs: out[n-1].Attrs}
			continue
		}
		out = append(out, r)
	}
	d.runs = out

	d.starts = make([]int, len(d.runs))
	offset := 0
	for i, r := range d.runs {
		d.starts[i] = offset
		offset += r.Len()
	}
	d.size = offset
}

// splitAt ensures a run boundary at offset and returns the index of the run
// starting there (len(runs) at the end of the document).
func (d *Document) splitAt(offset int) int {
	before, after, _ := d.Locate(offset)
	if after < 0 {
		return len(d.runs)
	}
	if before != after {
		return after
	}
	left, right := d.runs[after].split(offset - d.starts[after])
	d.runs = append(d.runs[:after+1], d.runs[after:]...)
	d.runs[after] = left
	d.runs[after+1] = right
	d.starts = append(d.starts[:after+1], d.starts[after:]...)
	d.starts[after+1] = offset
	return after + 1
}

func (d *Document) snapshot() snapshot {
	s := snapshot{
		runs:      make([]Run, len(d.runs)),
		selection: d.selection,
		overrides: make(map[string]bool, len(d.overrides)),
		markers:   make(map[string]Range, len(d.markers)),
	}
	copy(s.runs, d.runs)
	for k, v := range d.overrides {
		s.overrides[k] = v
	}
	for k, v := range d.markers {
		s.markers[k] = v
	}
	return s
}

func (d *Document) restore(s snapshot) {
	d.runs = s.runs
	d.selection = s.selection
	d.overrides = s.overrides
	d.markers = s.markers
	d.normalize()
}

func sortedKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
