package command

import (
	"github.com/dshills/keylink/internal/decorator"
	"github.com/dshills/keylink/internal/event"
	"github.com/dshills/keylink/internal/linkrange"
	"github.com/dshills/keylink/internal/model"
)

// LinkKey is the model attribute holding a link URL.
const LinkKey = decorator.HrefAttribute

// Command is an editor operation whose state follows the selection.
type Command interface {
	// Name returns the registry name.
	Name() string

	// Execute runs the command.
	Execute(args ...any) error

	// IsEnabled reports whether Execute may run.
	IsEnabled() bool

	// Value returns the command value for the current selection, or nil.
	Value() any

	// Refresh recomputes IsEnabled and Value.
	Refresh()
}

// Host is the document surface commands need.
// *model.Document satisfies it.
type Host interface {
	linkrange.Sequence

	IsReadOnly() bool
	Selection() model.Selection
	SelectionAttribute(key string) (any, bool)
	Change(fn func(w *model.Writer) error) error
	OnChange(fn model.ChangeListener, priority event.Priority) event.Handle
}

// base holds the state shared by the link commands.
type base struct {
	host    Host
	enabled bool
	value   any
	handle  event.Handle
}

// IsEnabled reports whether the command may run.
func (b *base) IsEnabled() bool {
	return b.enabled
}

// Value returns the value computed by the last refresh.
func (b *base) Value() any {
	return b.value
}

// Destroy stops refreshing on document changes.
func (b *base) Destroy() {
	b.handle.Unregister()
}

func (b *base) listen(refresh func()) {
	b.handle = b.host.OnChange(func(*model.Batch) { refresh() }, event.PriorityLow)
	refresh()
}

// selectedRuns returns the indexes of runs overlapping r.
func selectedRuns(seq linkrange.Sequence, r model.Range) []int {
	var out []int
	for i := 0; i < seq.Len(); i++ {
		start := seq.Start(i)
		run := model.NewRange(start, start+seq.Run(i).Len())
		if start >= r.End {
			break
		}
		if run.Overlaps(r) {
			out = append(out, i)
		}
	}
	return out
}
